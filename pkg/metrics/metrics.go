// Package metrics exposes enumeration statistics as Prometheus collectors.
package metrics

import (
	"context"
	"sync"

	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector groups the engine metrics.
type Collector struct {
	Expanded   prometheus.Counter
	Branches   *prometheus.CounterVec
	Terminals  prometheus.Counter
	MaxElapsed prometheus.Gauge

	mu  sync.Mutex
	max int
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		Expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "macexpect_states_expanded_total",
			Help: "Total number of non-terminal states expanded",
		}),
		Branches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "macexpect_branches_total",
				Help: "Total number of child states produced, by branch kind",
			},
			[]string{"kind"},
		),
		Terminals: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "macexpect_terminal_states_total",
			Help: "Total number of terminal states folded into the expectations",
		}),
		MaxElapsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "macexpect_max_elapsed_slots",
			Help: "Latest completion slot seen in any enumeration",
		}),
	}
	reg.MustRegister(c.Expanded, c.Branches, c.Terminals, c.MaxElapsed)
	return c
}

// Hooks returns lifecycle hooks that feed the collectors.
func (c *Collector) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnExpand: func(_ context.Context, _ *domain.ExpandEvent) {
			c.Expanded.Inc()
		},
		OnBranch: func(_ context.Context, e *domain.BranchEvent) {
			c.Branches.WithLabelValues(string(e.Kind)).Inc()
		},
		OnTerminal: func(_ context.Context, e *domain.TerminalEvent) {
			c.Terminals.Inc()
			c.observeElapsed(e.State.Elapsed)
		},
	}
}

func (c *Collector) observeElapsed(slot int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if slot > c.max {
		c.max = slot
		c.MaxElapsed.Set(float64(slot))
	}
}
