/*
Package ports defines the driven ports (interfaces) around the expectation engine.

These interfaces decouple the core logic from external implementations, allowing
results to be cached in various storage backends and served by any adapter.

# Key Interfaces

  - Analyzer: Computes the exact expectations of a protocol model.
  - ResultStore: Persists computed results keyed by model fingerprint.
*/
package ports
