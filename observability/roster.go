package observability

import (
	"io"
	"strconv"

	"presence-lab/domain"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// WriteRoster renders the connected set as a compact table, in join order.
func WriteRoster(w io.Writer, players []*domain.Player) {
	header := "CONNECTED PLAYERS (" + strconv.Itoa(len(players)) + ")"
	if color.SupportColor() {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	_, _ = io.WriteString(w, header+"\n")

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Display Name", "Handle"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.AppendBulk(lo.Map(players, func(p *domain.Player, _ int) []string {
		return []string{
			strconv.FormatInt(int64(p.ID), 10),
			p.DisplayName,
			p.Handle.String(),
		}
	}))
	table.Render()
}
