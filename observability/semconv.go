package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Message Conversion Attributes ---

const (
	// AttrMessageKind is the chat message kind being converted (e.g., "human", "ai")
	AttrMessageKind = "message.kind"

	// AttrMessageRole is the provider-side role a message maps to ("user", "model")
	AttrMessageRole = "message.role"

	// AttrPartsCount is the number of content parts produced or consumed
	AttrPartsCount = "message.parts_count"
)

// --- Response Attributes ---

const (
	// AttrFinishReason is the provider-supplied reason the generation stopped
	AttrFinishReason = "response.finish_reason"

	// AttrBlockReason is the provider-supplied prompt block reason, if any
	AttrBlockReason = "response.block_reason"

	// AttrCandidatesCount is the number of candidates in a response
	AttrCandidatesCount = "response.candidates_count"

	// AttrBatchSize is the number of payloads in a batched response
	AttrBatchSize = "response.batch_size"
)
