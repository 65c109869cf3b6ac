/*
Package dsl provides a Go DSL for building araignee behavior trees in code.

It is the programmatic counterpart of definition files: a fluent, type-checked
builder that records the first construction error and reports it from Build,
so trees can be written as a single expression.

Example usage:

	b := dsl.New(core.WithLogger(logger))

	root := b.ID("patrol").Filtered(strategy.Pending()).Sequence(
		b.Guard(
			b.Condition("entity.hp > 20"),
			b.Wait(500*time.Millisecond),
		),
		b.Limiter(3, b.TemporaryFailed(2)),
	)

	tree, err := b.Build(root)
*/
package dsl
