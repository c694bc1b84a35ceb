package gemini

import (
	"errors"

	"github.com/leofalp/gemlink/chat"
)

// Generation is a plain text completion with the payload it came from.
type Generation struct {
	Text string                  `json:"text"`
	Raw  GenerateContentResponse `json:"raw"`
}

// ChatGeneration is a completion decoded into a chat message.
type ChatGeneration struct {
	Text    string                  `json:"text"`
	Message chat.Message            `json:"message"`
	Raw     GenerateContentResponse `json:"raw"`
}

// ChatResult groups the generations produced from one canonical payload,
// with the payload itself as auxiliary output.
type ChatResult struct {
	Generations []ChatGeneration        `json:"generations"`
	Response    GenerateContentResponse `json:"response"`
}

// Builder assembles canonical payloads into caller-facing result shapes.
// The To* methods are pure functions of an already-enforced payload; the
// Safe* methods take a raw response, run the configured [Policy] first, and
// on rejection attach the would-have-been output to the propagated
// [SafetyError] before returning it.
type Builder struct {
	Codec  Codec
	Policy Policy
}

// NewBuilder creates a builder with the given codec and policy. A nil policy
// makes the Safe* methods pass-through (normalize only).
func NewBuilder(codec Codec, policy Policy) Builder {
	return Builder{Codec: codec, Policy: policy}
}

// ToText flattens a payload to its concatenated text.
func (b Builder) ToText(response GenerateContentResponse) string {
	return ExtractText(response)
}

// ToGeneration wraps a payload as a plain text generation.
func (b Builder) ToGeneration(response GenerateContentResponse) Generation {
	return Generation{Text: b.ToText(response), Raw: response}
}

// ToChunk builds an incremental chat generation from a payload. The message
// is seeded from only the first part of the first candidate, which is enough
// for incremental/streaming display; Text still carries the payload's full
// concatenated text.
func (b Builder) ToChunk(response GenerateContentResponse) (ChatGeneration, error) {
	parts := ExtractParts(response)
	if len(parts) > 1 {
		parts = parts[:1]
	}

	content, err := b.Codec.DecodeParts(parts)
	if err != nil {
		return ChatGeneration{}, err
	}

	return ChatGeneration{
		Text:    b.ToText(response),
		Message: chat.NewAIMessage(content),
		Raw:     response,
	}, nil
}

// ToMessage decodes a payload into an AI-role chat message.
func (b Builder) ToMessage(response GenerateContentResponse) (chat.Message, error) {
	content, err := b.Codec.DecodeParts(ExtractParts(response))
	if err != nil {
		return chat.Message{}, err
	}
	return chat.NewAIMessage(content), nil
}

// ToChatResult builds one ChatGeneration per part of the first candidate.
// Each generation's Text is that part's text and its message is the decoded
// part; unrecognized parts are filtered like everywhere else in the decode
// path.
func (b Builder) ToChatResult(response GenerateContentResponse) (ChatResult, error) {
	result := ChatResult{Response: response}

	for _, part := range ExtractParts(response) {
		decoded, err := b.Codec.DecodePart(part)
		if err != nil {
			return ChatResult{}, err
		}
		if decoded == nil {
			continue
		}

		result.Generations = append(result.Generations, ChatGeneration{
			Text:    part.Text,
			Message: chat.NewAIMessage(chat.PartsContent(*decoded)),
			Raw:     response,
		})
	}

	return result, nil
}

// SafeText enforces the policy, then flattens the surviving payload to text.
func (b Builder) SafeText(raw RawResponse) (string, error) {
	response, err := b.enforce(raw)
	if err != nil {
		return "", b.attachReply(err, func(rejected GenerateContentResponse) any {
			return b.ToText(rejected)
		})
	}
	return b.ToText(response), nil
}

// SafeGeneration enforces the policy, then builds a plain text generation.
func (b Builder) SafeGeneration(raw RawResponse) (Generation, error) {
	response, err := b.enforce(raw)
	if err != nil {
		return Generation{}, b.attachReply(err, func(rejected GenerateContentResponse) any {
			return b.ToGeneration(rejected)
		})
	}
	return b.ToGeneration(response), nil
}

// SafeMessage enforces the policy, then decodes the surviving payload into an
// AI chat message.
func (b Builder) SafeMessage(raw RawResponse) (chat.Message, error) {
	response, err := b.enforce(raw)
	if err != nil {
		return chat.Message{}, b.attachReply(err, func(rejected GenerateContentResponse) any {
			message, msgErr := b.ToMessage(rejected)
			if msgErr != nil {
				return nil
			}
			return message
		})
	}
	return b.ToMessage(response)
}

// SafeChatResult enforces the policy, then builds the per-part chat result.
func (b Builder) SafeChatResult(raw RawResponse) (ChatResult, error) {
	response, err := b.enforce(raw)
	if err != nil {
		return ChatResult{}, b.attachReply(err, func(rejected GenerateContentResponse) any {
			result, resultErr := b.ToChatResult(rejected)
			if resultErr != nil {
				return nil
			}
			return result
		})
	}
	return b.ToChatResult(response)
}

// enforce runs the policy over the raw response, then collapses the
// surviving response into one canonical payload. Enforcement happens on the
// un-normalized response so that batch elements are checked independently
// and a rejection carries the complete original response.
func (b Builder) enforce(raw RawResponse) (GenerateContentResponse, error) {
	checked := raw
	if b.Policy != nil {
		var err error
		checked, err = b.Policy.Enforce(raw)
		if err != nil {
			return GenerateContentResponse{}, err
		}
	}
	return Normalize(checked)
}

// attachReply recomputes the builder output over a rejection's carried
// response and attaches it to the error, so the caller can inspect what the
// unsafe answer would have been without the policy accepting it. Non-safety
// errors are returned unchanged.
func (b Builder) attachReply(err error, compute func(GenerateContentResponse) any) error {
	var safetyErr *SafetyError
	if !errors.As(err, &safetyErr) {
		return err
	}

	if safetyErr.Reply == nil {
		if rejected, normErr := Normalize(safetyErr.Response); normErr == nil {
			if reply := compute(rejected); reply != nil {
				safetyErr.Reply = reply
			}
		}
	}
	return err
}
