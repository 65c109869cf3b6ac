package dsl

import (
	"time"

	"github.com/aretw0/araignee/pkg/actions"
	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/aretw0/araignee/pkg/strategy"
)

type state struct {
	opts []core.Option
	err  error
}

// Builder creates nodes sharing the same options.
// Derived builders (ID, Filtered, Sorted, Picking) configure only the next
// node they create and share the error of their parent.
type Builder struct {
	state    *state
	id       string
	filters  []strategy.Filter
	sorter   strategy.Sorter
	reversed bool
	picker   strategy.Picker
}

// New creates a builder applying opts to every node.
func New(opts ...core.Option) *Builder {
	return &Builder{state: &state{opts: opts}}
}

func (b *Builder) derive() *Builder {
	return &Builder{state: b.state, id: b.id, filters: b.filters, sorter: b.sorter, reversed: b.reversed, picker: b.picker}
}

// ID sets the identifier of the next node.
func (b *Builder) ID(id string) *Builder {
	d := b.derive()
	d.id = id
	return d
}

// Filtered sets the filters of the next composite.
func (b *Builder) Filtered(filters ...strategy.Filter) *Builder {
	d := b.derive()
	d.filters = filters
	return d
}

// Sorted sets the sorter of the next composite.
func (b *Builder) Sorted(s strategy.Sorter, reversed bool) *Builder {
	d := b.derive()
	d.sorter = s
	d.reversed = reversed
	return d
}

// Picking sets the picker of the next selector.
func (b *Builder) Picking(p strategy.Picker) *Builder {
	d := b.derive()
	d.picker = p
	return d
}

// Err returns the first construction error, if any.
func (b *Builder) Err() error { return b.state.err }

// Build returns root, or the first error met while creating the tree.
func (b *Builder) Build(root ports.Node) (ports.Node, error) {
	if b.state.err != nil {
		return nil, b.state.err
	}
	return root, nil
}

func (b *Builder) options() []core.Option {
	opts := append([]core.Option{}, b.state.opts...)
	if b.id != "" {
		opts = append(opts, core.WithID(b.id))
	}
	return opts
}

func (b *Builder) composite(children []ports.Node) core.CompositeConfig {
	return core.CompositeConfig{
		Children: children,
		Filters:  b.filters,
		Sorter:   b.sorter,
		Reversed: b.reversed,
	}
}

func add[T ports.Node](b *Builder, n T, err error) ports.Node {
	if err != nil {
		if b.state.err == nil {
			b.state.err = err
		}
		return nil
	}
	return n
}

// Sequence creates a core.Sequence.
func (b *Builder) Sequence(children ...ports.Node) ports.Node {
	n, err := core.NewSequence(b.composite(children), b.options()...)
	return add(b, n, err)
}

// Xor creates a core.Xor.
func (b *Builder) Xor(children ...ports.Node) ports.Node {
	n, err := core.NewXor(b.composite(children), b.options()...)
	return add(b, n, err)
}

// Selector creates a core.Selector.
func (b *Builder) Selector(children ...ports.Node) ports.Node {
	n, err := core.NewSelector(core.SelectorConfig{CompositeConfig: b.composite(children), Picker: b.picker}, b.options()...)
	return add(b, n, err)
}

// Inverter creates a core.Inverter.
func (b *Builder) Inverter(child ports.Node) ports.Node {
	n, err := core.NewInverter(core.DecoratorConfig{Child: child}, b.options()...)
	return add(b, n, err)
}

// Interrogator creates a core.Interrogator.
func (b *Builder) Interrogator(child ports.Node) ports.Node {
	n, err := core.NewInterrogator(core.DecoratorConfig{Child: child}, b.options()...)
	return add(b, n, err)
}

// Starter creates a core.Starter.
func (b *Builder) Starter(child ports.Node) ports.Node {
	n, err := core.NewStarter(core.DecoratorConfig{Child: child}, b.options()...)
	return add(b, n, err)
}

// Guard creates a core.Guard.
func (b *Builder) Guard(interrogator, child ports.Node) ports.Node {
	n, err := core.NewGuard(core.GuardConfig{Interrogator: interrogator, Child: child}, b.options()...)
	return add(b, n, err)
}

// Limiter creates a core.Limiter.
func (b *Builder) Limiter(times int, child ports.Node) ports.Node {
	n, err := core.NewLimiter(core.LimiterConfig{Child: child, Times: times}, b.options()...)
	return add(b, n, err)
}

// Wait creates a core.Wait.
func (b *Builder) Wait(delay time.Duration) ports.Node {
	n, err := core.NewWait(core.WaitConfig{Delay: delay}, b.options()...)
	return add(b, n, err)
}

// Succeeded creates a leaf that always succeeds.
func (b *Builder) Succeeded() ports.Node {
	n, err := actions.NewSucceeded(b.options()...)
	return add(b, n, err)
}

// Failed creates a leaf that always fails.
func (b *Builder) Failed() ports.Node {
	n, err := actions.NewFailed(b.options()...)
	return add(b, n, err)
}

// Busy creates a leaf that is always busy.
func (b *Builder) Busy() ports.Node {
	n, err := actions.NewBusy(b.options()...)
	return add(b, n, err)
}

// TemporaryFailed creates a leaf failing times ticks before succeeding.
func (b *Builder) TemporaryFailed(times int) ports.Node {
	n, err := actions.NewTemporaryFailed(actions.TemporaryFailedConfig{Times: times}, b.options()...)
	return add(b, n, err)
}

// Condition creates a leaf evaluating an expr-lang expression.
func (b *Builder) Condition(expression string) ports.Node {
	n, err := actions.NewCondition(actions.ConditionConfig{Expression: expression}, b.options()...)
	return add(b, n, err)
}

// Func creates a leaf running fn on every tick.
func (b *Builder) Func(fn actions.ExecuteFunc) ports.Node {
	n, err := actions.NewFunc(fn, b.options()...)
	return add(b, n, err)
}
