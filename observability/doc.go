// Package observability defines the structured logging surface used by the
// conversion pipeline. The pipeline itself performs no I/O; the only runtime
// signal it emits is diagnostic logging (for example when an unsupported chat
// message kind is skipped during encoding), routed through a [Logger] carried
// on the context via [ContextWithObserver].
//
// The slog subpackage provides a standard-library slog backed implementation.
package observability
