package core

import "github.com/aretw0/araignee/pkg/domain"

// Xor succeeds when exactly one child succeeded and none is busy. Otherwise
// it is busy while any child is busy, and failed when none is.
type Xor struct {
	*Composite
}

// NewXor builds a Xor.
func NewXor(cfg CompositeConfig, opts ...Option) (*Xor, error) {
	n := &Xor{}
	n.Composite = NewComposite(KindXor, n, cfg, opts...)
	return finish(n)
}

// Execute implements Behavior.
func (n *Xor) Execute(entity, world any) (domain.Response, error) {
	tally, err := n.Evaluate(entity, world)
	if err != nil {
		return domain.ResponseUnknown, err
	}
	switch {
	case tally.Succeeded == 1 && tally.Busy == 0:
		return domain.ResponseSucceeded, nil
	case tally.Busy > 0:
		return domain.ResponseBusy, nil
	}
	return domain.ResponseFailed, nil
}
