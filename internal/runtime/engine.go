package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/macexpect/pkg/domain"
)

// Engine enumerates every execution branch of the protocol and folds the
// terminal ones into exact expectations.
type Engine struct {
	model     domain.Model
	traversal domain.Traversal
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	budget    int
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithTraversal selects the expansion order (default: breadth-first).
func WithTraversal(order domain.Traversal) EngineOption {
	return func(e *Engine) {
		if order != "" {
			e.traversal = order
		}
	}
}

// WithExpansionBudget caps the number of states a run may expand.
// Non-positive values keep the default.
func WithExpansionBudget(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.budget = n
		}
	}
}

// NewEngine creates an engine for the given model.
func NewEngine(model domain.Model, opts ...EngineOption) *Engine {
	e := &Engine{
		model:     model,
		traversal: domain.BreadthFirst,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		budget:    domain.DefaultExpansionBudget,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the parameters the engine was built with.
func (e *Engine) Model() domain.Model {
	return e.model
}

// Run drains the work queue starting from the root state.
// It returns ErrInvalidModel before doing any work if the model is malformed.
func (e *Engine) Run(ctx context.Context) (domain.Result, error) {
	if err := e.model.Validate(); err != nil {
		return domain.Result{}, err
	}

	res := domain.Result{
		Model:        e.model,
		Distribution: make(map[int]float64),
	}

	queue := newWorklist(e.traversal)
	queue.push(domain.NewRootState(e.model.Finished))

	e.logger.Debug("enumeration started", "traversal", e.traversal, "model", e.model.Fingerprint()[:12])

	for {
		s, ok := queue.pop()
		if !ok {
			break
		}

		if s.Terminal() {
			e.fold(ctx, &res, s)
			continue
		}

		if err := ctx.Err(); err != nil {
			return domain.Result{}, err
		}

		exp, err := Expand(e.model, s)
		if err != nil {
			return domain.Result{}, err
		}
		if exp.Slot > e.model.MaxSlots {
			return domain.Result{}, fmt.Errorf("%w: slot %d > %d with %d nodes remaining",
				domain.ErrHorizonExceeded, exp.Slot, e.model.MaxSlots, exp.Remaining)
		}
		res.ExpandedStates++
		if res.ExpandedStates > e.budget {
			return domain.Result{}, fmt.Errorf("%w: expansion budget of %d states exhausted at slot %d",
				domain.ErrHorizonExceeded, e.budget, exp.Slot)
		}

		if e.hooks.OnExpand != nil {
			e.hooks.OnExpand(ctx, &domain.ExpandEvent{
				Type:       domain.EventExpand,
				Parent:     s,
				Slot:       exp.Slot,
				Candidates: exp.Candidates,
				Remaining:  exp.Remaining,
				Children:   len(exp.Children),
			})
		}

		for _, child := range exp.Children {
			if e.hooks.OnBranch != nil {
				e.hooks.OnBranch(ctx, &domain.BranchEvent{
					Type:   domain.EventBranch,
					Kind:   child.Kind,
					Parent: s,
					Child:  child.State,
					Node:   child.Node,
				})
			}
			queue.push(child.State)
		}
	}

	e.logger.Debug("enumeration finished",
		"expected_time", res.ExpectedTime,
		"expected_energy", res.ExpectedEnergy,
		"terminal_states", res.TerminalStates,
		"expanded_states", res.ExpandedStates,
		"max_elapsed", res.MaxElapsed,
	)

	return res, nil
}

func (e *Engine) fold(ctx context.Context, res *domain.Result, s domain.State) {
	res.ExpectedTime += s.Probability * float64(s.Elapsed)
	res.ExpectedEnergy += s.Probability * float64(s.Energy)
	res.ProbabilityMass += s.Probability
	res.Distribution[s.Elapsed] += s.Probability
	res.TerminalStates++
	if s.Elapsed > res.MaxElapsed {
		res.MaxElapsed = s.Elapsed
	}

	if e.hooks.OnTerminal != nil {
		e.hooks.OnTerminal(ctx, &domain.TerminalEvent{Type: domain.EventTerminal, State: s})
	}
}
