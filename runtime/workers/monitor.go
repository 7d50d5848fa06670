package workers

import (
	"context"
	"log/slog"
	"time"

	"presence-lab/observability"
)

// MonitorWorker periodically reports session stats through the monitor.
type MonitorWorker struct {
	log      *slog.Logger
	monitor  *observability.Monitor
	counter  func() int
	interval time.Duration
}

func NewMonitorWorker(log *slog.Logger, monitor *observability.Monitor,
	counter func() int, interval time.Duration) *MonitorWorker {
	return &MonitorWorker{log: log, monitor: monitor, counter: counter, interval: interval}
}

func (w *MonitorWorker) Run(ctx context.Context) error {
	w.log.Info("Starting session monitor worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.monitor.Report(w.counter())
		}
	}
}
