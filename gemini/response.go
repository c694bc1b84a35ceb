package gemini

import "strings"

// RawResponse is a provider response exactly as received, before
// normalization: a single payload, an ordered batch of payloads, or a stream
// handle. Exactly one field is set; construct values with [SingleResponse],
// [BatchResponse] or [StreamResponse] and dispatch exhaustively on the three
// variants. A RawResponse is consumed once; none of the operations in this
// package mutate it.
type RawResponse struct {
	Single *GenerateContentResponse
	Batch  []GenerateContentResponse
	Stream *ResponseStream
}

// SingleResponse wraps one payload as a raw response.
func SingleResponse(response GenerateContentResponse) RawResponse {
	return RawResponse{Single: &response}
}

// BatchResponse wraps an ordered batch of payloads as a raw response.
func BatchResponse(responses ...GenerateContentResponse) RawResponse {
	return RawResponse{Batch: responses}
}

// StreamResponse wraps a stream handle as a raw response.
func StreamResponse(stream *ResponseStream) RawResponse {
	return RawResponse{Stream: stream}
}

// Normalize collapses a raw response into one canonical payload.
//
// Streams cannot be normalized in bulk and fail with
// [UnsupportedConversionError]; consume them chunk by chunk instead (see
// [Builder.StreamChunks]). Batches fold left to right: the result's first
// candidate carries the concatenation, in encounter order, of every
// element's first-candidate parts, and promptFeedback is overwritten (not
// merged) by each successive element, so the final value equals the last
// element's. Candidates beyond index 0 and per-candidate safety ratings are
// not merged. A single payload is returned unchanged.
func Normalize(raw RawResponse) (GenerateContentResponse, error) {
	switch {
	case raw.Stream != nil:
		return GenerateContentResponse{}, &UnsupportedConversionError{
			Reason: "streaming responses must be consumed chunk by chunk, not normalized in bulk",
		}

	case raw.Batch != nil:
		var merged GenerateContentResponse
		for _, response := range raw.Batch {
			if parts := ExtractParts(response); len(parts) > 0 {
				if len(merged.Candidates) == 0 {
					merged.Candidates = []Candidate{{Content: &Content{Role: RoleModel}}}
				}
				merged.Candidates[0].Content.Parts = append(merged.Candidates[0].Content.Parts, parts...)
			}
			merged.PromptFeedback = response.PromptFeedback
		}
		return merged, nil

	case raw.Single != nil:
		return *raw.Single, nil

	default:
		return GenerateContentResponse{}, &UnsupportedConversionError{
			Reason: "raw response has no variant set",
		}
	}
}

// ExtractParts returns the parts of the first candidate's content, or an
// empty slice if any link in that chain is absent.
func ExtractParts(response GenerateContentResponse) []Part {
	if len(response.Candidates) == 0 {
		return nil
	}
	content := response.Candidates[0].Content
	if content == nil {
		return nil
	}
	return content.Parts
}

// ExtractText concatenates the text of every text part of the first
// candidate, in order. Non-text parts contribute nothing.
func ExtractText(response GenerateContentResponse) string {
	var builder strings.Builder
	for _, part := range ExtractParts(response) {
		if part.Text != "" {
			builder.WriteString(part.Text)
		}
	}
	return builder.String()
}
