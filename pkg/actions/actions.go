package actions

import (
	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/domain"
)

// Kind names of the built-in actions.
const (
	KindSucceeded       = "succeeded"
	KindFailed          = "failed"
	KindBusy            = "busy"
	KindTemporaryFailed = "temporary_failed"
	KindFunc            = "func"
	KindCondition       = "condition"
)

// ExecuteFunc returns the response of one tick.
type ExecuteFunc func(entity, world any) (domain.Response, error)

// Func is a leaf delegating each tick to a Go function.
type Func struct {
	*core.Base
	fn ExecuteFunc
}

// NewFunc builds a leaf running fn on every tick.
func NewFunc(fn ExecuteFunc, opts ...core.Option) (*Func, error) {
	return newFunc(KindFunc, fn, opts...)
}

func newFunc(kind string, fn ExecuteFunc, opts ...core.Option) (*Func, error) {
	n := &Func{fn: fn}
	n.Base = core.NewBase(kind, n, opts...)
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// ValidateAttributes implements core.AttributeValidator.
func (n *Func) ValidateAttributes() error {
	if n.fn == nil {
		return domain.InvalidArgument("func action requires a function")
	}
	return nil
}

// Execute implements core.Behavior.
func (n *Func) Execute(entity, world any) (domain.Response, error) {
	return n.fn(entity, world)
}

func constant(r domain.Response) ExecuteFunc {
	return func(_, _ any) (domain.Response, error) { return r, nil }
}

// NewSucceeded builds a leaf that always succeeds.
func NewSucceeded(opts ...core.Option) (*Func, error) {
	return newFunc(KindSucceeded, constant(domain.ResponseSucceeded), opts...)
}

// NewFailed builds a leaf that always fails.
func NewFailed(opts ...core.Option) (*Func, error) {
	return newFunc(KindFailed, constant(domain.ResponseFailed), opts...)
}

// NewBusy builds a leaf that is always busy.
func NewBusy(opts ...core.Option) (*Func, error) {
	return newFunc(KindBusy, constant(domain.ResponseBusy), opts...)
}
