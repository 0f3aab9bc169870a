/*
Package domain contains the core models of the duty-cycled MAC expectation engine.

It defines the protocol parameters, the branching simulation state and the
aggregated result. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Model: The protocol parameters (wake periods, gateway cycle, power costs).
  - State: One point of the branching tree (probability, elapsed slots, energy, finished nodes).
  - Result: The exact expectations plus enumeration statistics.
  - LifecycleHooks: Callbacks fired while the tree is enumerated.
*/
package domain
