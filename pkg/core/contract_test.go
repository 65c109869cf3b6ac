package core

import (
	"testing"
	"time"

	"github.com/aretw0/araignee/pkg/domain"
	"github.com/aretw0/araignee/pkg/ports"
	"github.com/aretw0/araignee/pkg/ports/tests"
)

func TestNodeContract(t *testing.T) {
	must := func(n ports.Node, err error) ports.Node {
		if err != nil {
			panic(err)
		}
		return n
	}
	leaf := func() ports.Node {
		n := &stub{script: []domain.Response{succ}}
		n.Base = NewBase("stub", n)
		return n
	}

	factories := map[string]func() ports.Node{
		KindSequence: func() ports.Node {
			return must(NewSequence(CompositeConfig{Children: []ports.Node{leaf(), leaf()}}))
		},
		KindXor: func() ports.Node {
			return must(NewXor(CompositeConfig{Children: []ports.Node{leaf()}}))
		},
		KindSelector: func() ports.Node {
			return must(NewSelector(SelectorConfig{CompositeConfig: CompositeConfig{Children: []ports.Node{leaf()}}}))
		},
		KindInverter: func() ports.Node {
			return must(NewInverter(DecoratorConfig{Child: leaf()}))
		},
		KindInterrogator: func() ports.Node {
			return must(NewInterrogator(DecoratorConfig{Child: leaf()}))
		},
		KindGuard: func() ports.Node {
			return must(NewGuard(GuardConfig{Interrogator: leaf(), Child: leaf()}))
		},
		KindLimiter: func() ports.Node {
			return must(NewLimiter(LimiterConfig{Child: leaf(), Times: 1}))
		},
		KindStarter: func() ports.Node {
			return must(NewStarter(DecoratorConfig{Child: leaf()}))
		},
		KindWait: func() ports.Node {
			return must(NewWait(WaitConfig{Delay: time.Hour}))
		},
	}

	for kind, factory := range factories {
		t.Run(kind, func(t *testing.T) {
			tests.NodeContractTest(t, factory)
		})
	}
}
