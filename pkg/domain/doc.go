/*
Package domain contains the vocabulary of the araignee behavior-tree engine.

It defines the outcomes a node can report after a tick, the lifecycle states a
node moves through, the transition table between those states and the error
kinds the engine returns. This package is kept pure and free of I/O so that
every other package can share it.

# Key Entities

  - Response: the tri-state outcome of a tick (busy, failed, succeeded), plus
    unknown before the first tick.
  - LifecycleState: ready, running, paused or stopped.
  - Event: start, stop, pause, resume. Transition applies one to a state.
  - Tally: per-tick counts used by composites to fold child responses.
  - Snapshot: a serializable view of a (sub)tree, used by the CLI and the
    HTTP introspection server.
*/
package domain
