/*
Package loader builds behavior trees from definition files.

A definition names a root node; every node is a mapping with a kind, an
optional id and the attributes of that kind. Nested nodes sit under child,
interrogator or children:

	name: patrol
	root:
	  kind: sequence
	  filters: [pending]
	  children:
	    - kind: guard
	      interrogator: { kind: condition, expression: "entity.hp > 20" }
	      child: { kind: wait, delay: 500ms }
	    - kind: limiter
	      times: 3
	      child: { kind: temporary_failed, times: 2 }

YAML, JSON and TOML are supported. Unknown attributes are rejected. Durations
accept Go duration strings or integer milliseconds.

Applications extend the loader with their own kinds through Register.
*/
package loader
