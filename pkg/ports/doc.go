/*
Package ports defines the interfaces shared by the araignee engine and its adapters.

These interfaces decouple the node kinds from each other and from external
implementations, so composites and decorators can hold any node and telemetry
can be sent to memory, Prometheus or Redis without the core knowing.

# Key Interfaces

  - Node: the capability every node kind exposes (lifecycle events, tick, reads).
  - Parent: implemented by nodes that own children.
  - Recorder: receives named numeric samples produced while ticking.
*/
package ports
