/*
Package core implements the node lifecycle state machine and the built-in
decorator and composite kinds of the araignee behavior-tree engine.

Every kind embeds *Base, which enforces the lifecycle transition table, brackets
each tick with optional telemetry and forwards lifecycle events to children.
A kind only supplies an Execute hook and, optionally, ValidateAttributes and
Reset hooks:

	type Inverter struct {
		*Decorator
	}

	func (n *Inverter) Execute(entity, world any) (domain.Response, error) { ... }

Nodes carry no locks. A tree is driven by a single goroutine at a time.
*/
package core
