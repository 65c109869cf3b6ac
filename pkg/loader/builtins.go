package loader

import (
	"time"

	"github.com/aretw0/araignee/pkg/actions"
	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/aretw0/araignee/pkg/strategy"
)

// Strategy names understood by the built-in composites.
const (
	FilterRunning = "running"
	FilterPending = "pending"

	SorterIdentifier = "identifier"
	SorterResponse   = "response"

	PickerRoundRobin = "round_robin"
	PickerRandom     = "random"
)

type compositeAttrs struct {
	Children []map[string]any `mapstructure:"children"`
	Filters  []string         `mapstructure:"filters"`
	Sorter   string           `mapstructure:"sorter"`
	Reversed bool             `mapstructure:"reversed"`
}

type selectorAttrs struct {
	Children []map[string]any `mapstructure:"children"`
	Filters  []string         `mapstructure:"filters"`
	Sorter   string           `mapstructure:"sorter"`
	Reversed bool             `mapstructure:"reversed"`
	Picker   string           `mapstructure:"picker"`
}

type decoratorAttrs struct {
	Child map[string]any `mapstructure:"child"`
}

type guardAttrs struct {
	Interrogator map[string]any `mapstructure:"interrogator"`
	Child        map[string]any `mapstructure:"child"`
}

type limiterAttrs struct {
	Child map[string]any `mapstructure:"child"`
	Times *int           `mapstructure:"times"`
}

type waitAttrs struct {
	Delay time.Duration `mapstructure:"delay"`
}

type timesAttrs struct {
	Times int `mapstructure:"times"`
}

type conditionAttrs struct {
	Expression string `mapstructure:"expression"`
}

func registerBuiltins(l *Loader) {
	l.RegisterFilter(FilterRunning, strategy.Running())
	l.RegisterFilter(FilterPending, strategy.Pending())
	l.RegisterSorter(SorterIdentifier, strategy.ByIdentifier())
	l.RegisterSorter(SorterResponse, strategy.ByResponse())
	l.RegisterPicker(PickerRoundRobin, func() strategy.Picker { return strategy.NewRoundRobin() })
	l.RegisterPicker(PickerRandom, func() strategy.Picker { return strategy.NewRandom() })

	l.Register(core.KindSequence, func(c *Context, attrs map[string]any) (ports.Node, error) {
		cfg, err := compositeConfig(c, attrs, nil)
		if err != nil {
			return nil, err
		}
		return core.NewSequence(cfg, c.Options()...)
	})
	l.Register(core.KindXor, func(c *Context, attrs map[string]any) (ports.Node, error) {
		cfg, err := compositeConfig(c, attrs, nil)
		if err != nil {
			return nil, err
		}
		return core.NewXor(cfg, c.Options()...)
	})
	l.Register(core.KindSelector, buildSelector)

	l.Register(core.KindInverter, decorator(core.NewInverter))
	l.Register(core.KindInterrogator, decorator(core.NewInterrogator))
	l.Register(core.KindStarter, decorator(core.NewStarter))
	l.Register(core.KindGuard, buildGuard)
	l.Register(core.KindLimiter, buildLimiter)
	l.Register(core.KindWait, func(c *Context, attrs map[string]any) (ports.Node, error) {
		var a waitAttrs
		if err := c.Decode(attrs, &a); err != nil {
			return nil, err
		}
		return core.NewWait(core.WaitConfig{Delay: a.Delay}, c.Options()...)
	})

	l.Register(actions.KindSucceeded, constant(actions.NewSucceeded))
	l.Register(actions.KindFailed, constant(actions.NewFailed))
	l.Register(actions.KindBusy, constant(actions.NewBusy))
	l.Register(actions.KindTemporaryFailed, func(c *Context, attrs map[string]any) (ports.Node, error) {
		var a timesAttrs
		if err := c.Decode(attrs, &a); err != nil {
			return nil, err
		}
		return actions.NewTemporaryFailed(actions.TemporaryFailedConfig{Times: a.Times}, c.Options()...)
	})
	l.Register(actions.KindCondition, func(c *Context, attrs map[string]any) (ports.Node, error) {
		var a conditionAttrs
		if err := c.Decode(attrs, &a); err != nil {
			return nil, err
		}
		return actions.NewCondition(actions.ConditionConfig{Expression: a.Expression}, c.Options()...)
	})
}

func compositeConfig(c *Context, attrs map[string]any, a *compositeAttrs) (core.CompositeConfig, error) {
	if a == nil {
		a = &compositeAttrs{}
		if err := c.Decode(attrs, a); err != nil {
			return core.CompositeConfig{}, err
		}
	}

	children, err := c.Nodes("children", a.Children)
	if err != nil {
		return core.CompositeConfig{}, err
	}
	filters, err := c.Filters(a.Filters)
	if err != nil {
		return core.CompositeConfig{}, err
	}
	sorter, err := c.Sorter(a.Sorter)
	if err != nil {
		return core.CompositeConfig{}, err
	}
	return core.CompositeConfig{
		Children: children,
		Filters:  filters,
		Sorter:   sorter,
		Reversed: a.Reversed,
	}, nil
}

func buildSelector(c *Context, attrs map[string]any) (ports.Node, error) {
	var a selectorAttrs
	if err := c.Decode(attrs, &a); err != nil {
		return nil, err
	}
	cfg, err := compositeConfig(c, attrs, &compositeAttrs{
		Children: a.Children,
		Filters:  a.Filters,
		Sorter:   a.Sorter,
		Reversed: a.Reversed,
	})
	if err != nil {
		return nil, err
	}
	picker, err := c.Picker(a.Picker)
	if err != nil {
		return nil, err
	}
	return core.NewSelector(core.SelectorConfig{CompositeConfig: cfg, Picker: picker}, c.Options()...)
}

func decorator[T ports.Node](build func(core.DecoratorConfig, ...core.Option) (T, error)) Factory {
	return func(c *Context, attrs map[string]any) (ports.Node, error) {
		var a decoratorAttrs
		if err := c.Decode(attrs, &a); err != nil {
			return nil, err
		}
		child, err := c.Node("child", a.Child)
		if err != nil {
			return nil, err
		}
		return build(core.DecoratorConfig{Child: child}, c.Options()...)
	}
}

func buildGuard(c *Context, attrs map[string]any) (ports.Node, error) {
	var a guardAttrs
	if err := c.Decode(attrs, &a); err != nil {
		return nil, err
	}
	interrogator, err := c.Node("interrogator", a.Interrogator)
	if err != nil {
		return nil, err
	}
	child, err := c.Node("child", a.Child)
	if err != nil {
		return nil, err
	}
	return core.NewGuard(core.GuardConfig{Interrogator: interrogator, Child: child}, c.Options()...)
}

func buildLimiter(c *Context, attrs map[string]any) (ports.Node, error) {
	var a limiterAttrs
	if err := c.Decode(attrs, &a); err != nil {
		return nil, err
	}
	times := 1
	if a.Times != nil {
		times = *a.Times
	}
	child, err := c.Node("child", a.Child)
	if err != nil {
		return nil, err
	}
	return core.NewLimiter(core.LimiterConfig{Child: child, Times: times}, c.Options()...)
}

func constant(build func(...core.Option) (*actions.Func, error)) Factory {
	return func(c *Context, attrs map[string]any) (ports.Node, error) {
		if err := c.Decode(attrs, &struct{}{}); err != nil {
			return nil, err
		}
		return build(c.Options()...)
	}
}
