package actions

import (
	"fmt"

	"github.com/aretw0/araignee/pkg/core"
	"github.com/aretw0/araignee/pkg/domain"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ConditionEnv is the environment expressions are evaluated against.
type ConditionEnv struct {
	Entity any `expr:"entity"`
	World  any `expr:"world"`
}

// ConditionConfig holds the attributes of a Condition.
type ConditionConfig struct {
	// Expression is an expr-lang boolean expression, e.g. `entity.hp > 20`.
	Expression string
}

// Condition succeeds when its expression evaluates to true and fails otherwise.
// The expression is compiled once, at construction.
type Condition struct {
	*core.Base
	expression string
	program    *vm.Program
}

// NewCondition builds a Condition.
func NewCondition(cfg ConditionConfig, opts ...core.Option) (*Condition, error) {
	n := &Condition{expression: cfg.Expression}
	n.Base = core.NewBase(KindCondition, n, opts...)
	if err := n.Validate(); err != nil {
		return nil, err
	}

	program, err := expr.Compile(cfg.Expression,
		expr.Env(ConditionEnv{}),
		expr.AsBool(),
	)
	if err != nil {
		return nil, domain.InvalidArgument("invalid expression %q: %v", cfg.Expression, err)
	}
	n.program = program
	return n, nil
}

func (n *Condition) Expression() string { return n.expression }

// ValidateAttributes implements core.AttributeValidator.
func (n *Condition) ValidateAttributes() error {
	if n.expression == "" {
		return domain.InvalidArgument("expression must not be empty")
	}
	return nil
}

// Execute implements core.Behavior.
func (n *Condition) Execute(entity, world any) (domain.Response, error) {
	out, err := expr.Run(n.program, ConditionEnv{Entity: entity, World: world})
	if err != nil {
		return domain.ResponseUnknown, fmt.Errorf("condition %s: %w", n.ID(), err)
	}
	if ok, _ := out.(bool); ok {
		return domain.ResponseSucceeded, nil
	}
	return domain.ResponseFailed, nil
}
