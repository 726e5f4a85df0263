// Package worker runs the background connectivity monitor. Probes are
// best-effort: an unreachable service is recorded and logged, never fatal.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Prober is a backing service the monitor can health check.
type Prober interface {
	Name() string
	Health(ctx context.Context) error
}

// Status is one service's most recent probe outcome.
type Status struct {
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

// Monitor probes the backing services on a fixed interval and keeps the
// latest snapshot for the health endpoint.
type Monitor struct {
	probers  []Prober
	interval time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	statuses map[string]Status
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// NewMonitor constructs the monitor. A non-positive interval falls back to
// thirty seconds.
func NewMonitor(probers []Prober, interval time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Monitor{
		probers:  probers,
		interval: interval,
		logger:   logger,
		statuses: make(map[string]Status),
	}
}

// Start probes once immediately, then keeps probing in the background.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mu.Unlock()

	m.probeAll(runCtx)

	m.wg.Add(1)
	go m.loop(runCtx)
}

// Stop halts probing and waits for the loop to exit.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *Monitor) loop(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probeAll(ctx)
		}
	}
}

func (m *Monitor) probeAll(ctx context.Context) {
	for _, p := range m.probers {
		status := Status{Name: p.Name(), Healthy: true, CheckedAt: time.Now()}
		if err := p.Health(ctx); err != nil {
			status.Healthy = false
			status.Error = err.Error()
			m.logger.Warn("service unreachable",
				slog.String("service", p.Name()),
				slog.String("error", err.Error()),
			)
		}
		m.mu.Lock()
		m.statuses[status.Name] = status
		m.mu.Unlock()
	}
}

// Snapshot returns the latest probe outcome per service, in prober order.
func (m *Monitor) Snapshot() []Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make([]Status, 0, len(m.probers))
	for _, p := range m.probers {
		if status, ok := m.statuses[p.Name()]; ok {
			snapshot = append(snapshot, status)
		}
	}
	return snapshot
}
