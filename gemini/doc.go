// Package gemini implements the bidirectional conversion pipeline between
// the provider-agnostic chat message model and Google Gemini's
// generateContent wire format, together with response normalization and
// safety enforcement.
//
// The pipeline is pure: it performs no network I/O. Callers obtain provider
// responses however they like (HTTP client, recorded fixtures, a stream of
// SSE chunks) and hand them to this package as a [RawResponse] — a single
// payload, a batch, or a [ResponseStream]. [Normalize] collapses batches into
// one canonical payload, a [Policy] ([StrictPolicy] or [RecoveringPolicy])
// decides whether the response is deliverable, and [Builder] assembles the
// caller-facing result shapes (text, [Generation], [ChatGeneration],
// [ChatResult], or a decoded [chat.Message]). [Codec] handles the part-level
// encoding and decoding, including data: URI image references and the
// user/model role mapping.
package gemini
