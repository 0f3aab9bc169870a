package macexpect

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aretw0/macexpect/internal/logging"
	"github.com/aretw0/macexpect/internal/runtime"
	"github.com/aretw0/macexpect/pkg/domain"
	"github.com/aretw0/macexpect/pkg/ports"
)

// Analyzer is the high-level entry point for the library.
// It wraps the internal runtime with result caching and observability.
type Analyzer struct {
	store     ports.ResultStore
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	traversal domain.Traversal
	budget    int
}

var _ ports.Analyzer = (*Analyzer)(nil)

// Option defines a functional option for configuring the Analyzer.
type Option func(*Analyzer)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Analyzer) {
		a.hooks = a.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithStore caches results by model fingerprint.
func WithStore(store ports.ResultStore) Option {
	return func(a *Analyzer) {
		a.store = store
	}
}

// WithTraversal selects the expansion order of the work queue.
func WithTraversal(order domain.Traversal) Option {
	return func(a *Analyzer) {
		a.traversal = order
	}
}

// WithExpansionBudget caps the states expanded per analysis.
func WithExpansionBudget(n int) Option {
	return func(a *Analyzer) {
		a.budget = n
	}
}

// New creates an Analyzer. Without options it computes every request from
// scratch and logs nothing.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{traversal: domain.BreadthFirst}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logging.NewNop()
	}
	return a
}

// Analyze returns the exact expectations of model.
// Store failures are logged and never fail the request.
func (a *Analyzer) Analyze(ctx context.Context, model domain.Model) (domain.Result, error) {
	if err := model.Validate(); err != nil {
		return domain.Result{}, err
	}

	key := model.Fingerprint()
	logger := a.logger.With("model", key[:12])

	if a.store != nil {
		cached, err := a.store.Load(ctx, key)
		switch {
		case err == nil:
			logger.Debug("result cache hit")
			return cached, nil
		case !errors.Is(err, domain.ErrResultNotFound):
			logger.Warn("result cache unavailable", "error", err)
		}
	}

	eng := runtime.NewEngine(model,
		runtime.WithLogger(logger),
		runtime.WithHooks(a.hooks),
		runtime.WithTraversal(a.traversal),
		runtime.WithExpansionBudget(a.budget),
	)
	res, err := eng.Run(ctx)
	if err != nil {
		return domain.Result{}, err
	}

	if a.store != nil {
		if err := a.store.Save(ctx, key, res); err != nil {
			logger.Warn("failed to cache result", "error", err)
		}
	}

	return res, nil
}

// Run enumerates the default protocol and returns its expected completion
// time (slots) and expected total energy.
func Run() (expectedTime, expectedEnergy float64) {
	res, err := New().Analyze(context.Background(), domain.DefaultModel())
	if err != nil {
		// The default model always terminates; reaching this is a logic fault.
		panic(err)
	}
	return res.ExpectedTime, res.ExpectedEnergy
}
