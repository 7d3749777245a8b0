/*
Package ports defines the driven ports (interfaces) for the trinomial engine.

These interfaces decouple the core logic from external implementations, allowing
the engine to work with various cache backends.

# Key Interfaces

  - ResultCache: Memoizes rendered results (memory or Redis).
*/
package ports
