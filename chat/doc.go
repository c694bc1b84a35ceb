// Package chat defines the provider-agnostic chat message model used on the
// caller side of the conversion pipeline.
//
// A [Message] is tagged by [Kind] (system, human, ai, or generic with a
// caller-supplied role) and carries a [MessageContent], which is either a
// plain text string or an ordered sequence of [ContentPart] values for
// multimodal content. Messages are plain values: construct them with
// [NewSystemMessage], [NewHumanMessage], [NewAIMessage] or
// [NewGenericMessage] and treat them as immutable afterwards.
package chat
