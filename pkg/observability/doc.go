/*
Package observability provides Prometheus instrumentation for the trinomial engine.

Metrics plugs into the engine through domain.LifecycleHooks, so the core never
imports Prometheus; hosts expose the collected series with Handler.
*/
package observability
