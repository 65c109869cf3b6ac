/*
Package araignee is a behavior-tree engine for driving autonomous entities, bots and automation loops.

A tree is a hierarchy of nodes. An external driver ticks the root once per
cycle; each node reports busy, failed or succeeded, and composites combine
the responses of their children. Every node follows the same lifecycle
(ready, running, paused, stopped) and ticking is only allowed while running.

# Concept

Trees are built in code (package dsl, or the constructors of packages core and
actions) or loaded from YAML, JSON and TOML definition files (package loader).
The Tree type wraps a root node and serializes ticks, lifecycle events and
snapshots, so it can be observed over HTTP while a driver ticks it.

# Key Features

  - Deterministic Ticks: Given the same entity, world and clock, a tick always produces the same responses.
  - Pluggable Strategies: Composites filter and sort their children; selectors pick one of them.
  - Metrics: Every tick duration can be recorded in memory, in Prometheus or in Redis.
  - Strict Definitions: Unknown kinds and attributes are rejected before anything runs.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/araignee"
		"github.com/aretw0/araignee/pkg/domain"
	)

	func main() {
		tree, err := araignee.LoadFile("./patrol.yaml")
		if err != nil {
			log.Fatal(err)
		}
		if err := tree.Start(); err != nil {
			log.Fatal(err)
		}

		entity := map[string]any{"hp": 30}
		for i := 0; i < 10; i++ {
			resp, err := tree.Tick(entity, nil)
			if err != nil {
				log.Fatal(err)
			}
			if resp == domain.ResponseSucceeded {
				log.Println("Done:", resp)
				break
			}
		}
	}
*/
package araignee
