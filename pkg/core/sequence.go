package core

import "github.com/aretw0/araignee/pkg/domain"

// Sequence fails if any child failed, is busy while any child is busy and
// succeeds otherwise. An empty sequence succeeds.
type Sequence struct {
	*Composite
}

// NewSequence builds a Sequence.
func NewSequence(cfg CompositeConfig, opts ...Option) (*Sequence, error) {
	n := &Sequence{}
	n.Composite = NewComposite(KindSequence, n, cfg, opts...)
	return finish(n)
}

// Execute implements Behavior.
func (n *Sequence) Execute(entity, world any) (domain.Response, error) {
	tally, err := n.Evaluate(entity, world)
	if err != nil {
		return domain.ResponseUnknown, err
	}
	switch {
	case tally.Failed > 0:
		return domain.ResponseFailed, nil
	case tally.Busy > 0:
		return domain.ResponseBusy, nil
	}
	return domain.ResponseSucceeded, nil
}
