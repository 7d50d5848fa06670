package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/shirou/gopsutil/process"
)

// Stats aggregates the presence and cache counters for one report.
type Stats struct {
	Connected      int    `json:"connected"`
	Joins          uint64 `json:"joins"`
	Leaves         uint64 `json:"leaves"`
	ProfileHits    uint64 `json:"profile_hits"`
	ProfileFetches uint64 `json:"profile_fetches"`
	AvatarHits     uint64 `json:"avatar_hits"`
	AvatarFetches  uint64 `json:"avatar_fetches"`
	FetchFailures  uint64 `json:"fetch_failures"`
	AllocMemMb     uint64 `json:"alloc_mem_mb"`
	NumGC          uint32 `json:"num_gc"`
	RssMb          uint64 `json:"rss_mb"`
	CPUPercent     float64 `json:"cpu_percent"`
}

// Monitor collects real-time telemetry from the registry and cache.
// All Incr methods are nil-safe so instrumented components can run
// without a monitor attached (tests, library embedding).
type Monitor struct {
	log *slog.Logger

	joins          uint64
	leaves         uint64
	profileHits    uint64
	profileFetches uint64
	avatarHits     uint64
	avatarFetches  uint64
	fetchFailures  uint64

	self *process.Process
}

func NewMonitor(log *slog.Logger) *Monitor {
	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Self process stats unavailable", "error", err)
		self = nil
	}
	return &Monitor{log: log, self: self}
}

func (m *Monitor) IncrJoin() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.joins, 1)
}

func (m *Monitor) IncrLeave() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.leaves, 1)
}

func (m *Monitor) IncrProfileHit() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.profileHits, 1)
}

func (m *Monitor) IncrProfileFetch() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.profileFetches, 1)
}

func (m *Monitor) IncrAvatarHit() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.avatarHits, 1)
}

func (m *Monitor) IncrAvatarFetch() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.avatarFetches, 1)
}

func (m *Monitor) IncrFetchFailure() {
	if m == nil {
		return
	}
	atomic.AddUint64(&m.fetchFailures, 1)
}

// Snapshot loads the cumulative counters plus Go and OS process metrics.
// connected is supplied by the caller (registry gauge).
func (m *Monitor) Snapshot(connected int) Stats {
	stats := Stats{
		Connected:      connected,
		Joins:          atomic.LoadUint64(&m.joins),
		Leaves:         atomic.LoadUint64(&m.leaves),
		ProfileHits:    atomic.LoadUint64(&m.profileHits),
		ProfileFetches: atomic.LoadUint64(&m.profileFetches),
		AvatarHits:     atomic.LoadUint64(&m.avatarHits),
		AvatarFetches:  atomic.LoadUint64(&m.avatarFetches),
		FetchFailures:  atomic.LoadUint64(&m.fetchFailures),
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats.AllocMemMb = mem.Alloc / 1024 / 1024
	stats.NumGC = mem.NumGC

	if m.self != nil {
		if info, err := m.self.MemoryInfo(); err == nil {
			stats.RssMb = info.RSS / 1024 / 1024
		}
		if cpu, err := m.self.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		}
	}
	return stats
}

// Report logs one snapshot at Info level.
func (m *Monitor) Report(connected int) {
	stats := m.Snapshot(connected)
	m.log.Info("Session stats",
		"connected", stats.Connected,
		"joins", stats.Joins,
		"leaves", stats.Leaves,
		"profile_hits", stats.ProfileHits,
		"profile_fetches", stats.ProfileFetches,
		"avatar_hits", stats.AvatarHits,
		"avatar_fetches", stats.AvatarFetches,
		"fetch_failures", stats.FetchFailures,
		"mem_mb", stats.AllocMemMb,
		"rss_mb", stats.RssMb,
	)
}
