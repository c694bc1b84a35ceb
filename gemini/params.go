package gemini

import (
	"context"

	"github.com/leofalp/gemlink/chat"
)

// GenerationParams holds caller-supplied generation parameters. Nil pointer
// fields are unset and omitted from the wire config.
type GenerationParams struct {
	MaxOutputTokens *int
	Temperature     *float64
	TopP            *float64
	TopK            *int
	StopSequences   []string
	CandidateCount  *int
}

// Validate checks every set parameter against its allowed range and fails
// fast with [InvalidParameterError] on the first violation, before any
// provider call is made. Ranges: MaxOutputTokens >= 0, Temperature and TopP
// in [0, 1], TopK >= 0.
func (p GenerationParams) Validate() error {
	if p.MaxOutputTokens != nil && *p.MaxOutputTokens < 0 {
		return &InvalidParameterError{
			Param: "maxOutputTokens", Value: *p.MaxOutputTokens,
			Reason: "must be a non-negative integer",
		}
	}

	if p.Temperature != nil && (*p.Temperature < 0 || *p.Temperature > 1) {
		return &InvalidParameterError{
			Param: "temperature", Value: *p.Temperature,
			Reason: "must be in the range [0, 1]",
		}
	}

	if p.TopP != nil && (*p.TopP < 0 || *p.TopP > 1) {
		return &InvalidParameterError{
			Param: "topP", Value: *p.TopP,
			Reason: "must be in the range [0, 1]",
		}
	}

	if p.TopK != nil && *p.TopK < 0 {
		return &InvalidParameterError{
			Param: "topK", Value: *p.TopK,
			Reason: "must be a non-negative integer",
		}
	}

	return nil
}

// wireConfig maps the parameters to the wire generation config, or nil when
// nothing is set.
func (p GenerationParams) wireConfig() *GenerationConfig {
	if p.MaxOutputTokens == nil && p.Temperature == nil && p.TopP == nil &&
		p.TopK == nil && len(p.StopSequences) == 0 && p.CandidateCount == nil {
		return nil
	}

	return &GenerationConfig{
		Temperature:     p.Temperature,
		TopP:            p.TopP,
		TopK:            p.TopK,
		MaxOutputTokens: p.MaxOutputTokens,
		StopSequences:   p.StopSequences,
		CandidateCount:  p.CandidateCount,
	}
}

// BuildRequest validates the generation parameters, encodes the conversation
// and assembles a complete generateContent request body. Dispatching the
// request is the caller's concern.
func BuildRequest(ctx context.Context, codec Codec, messages []chat.Message, params GenerationParams) (GenerateContentRequest, error) {
	if err := params.Validate(); err != nil {
		return GenerateContentRequest{}, err
	}

	contents, err := codec.EncodeChatMessages(ctx, messages)
	if err != nil {
		return GenerateContentRequest{}, err
	}

	return GenerateContentRequest{
		Contents:         contents,
		GenerationConfig: params.wireConfig(),
	}, nil
}
