package gemini

import "slices"

// DefaultErrorFinish lists the finish reasons rejected when
// [SafetyConfig.ErrorFinish] is left empty.
var DefaultErrorFinish = []string{"SAFETY", "RECITATION", "OTHER"}

// SafetyConfig configures a safety policy.
type SafetyConfig struct {
	// ErrorFinish is the set of finish reasons treated as rejections.
	// Defaults to [DefaultErrorFinish] when empty.
	ErrorFinish []string

	// PlaceholderMessage is the text substituted for rejected content by
	// [RecoveringPolicy].
	PlaceholderMessage string

	// ForceNewMessage makes [RecoveringPolicy] substitute the placeholder
	// even when the rejected payload already carries parts.
	ForceNewMessage bool
}

// errorFinish resolves the disallowed finish reason set.
func (c SafetyConfig) errorFinish() []string {
	if len(c.ErrorFinish) == 0 {
		return DefaultErrorFinish
	}
	return c.ErrorFinish
}

// SafetyError is the typed rejection raised by a safety policy. It carries
// the complete original (un-normalized) provider response so callers always
// receive full context, not just the offending batch element. Reply may be
// populated by the Safe* builder wrappers with the output the caller would
// have received had the response passed, for diagnostics; the policy never
// accepts that output.
//
// SafetyError is the only error type in this package designed to be caught
// and acted upon by callers (e.g., to display the blocked reason).
type SafetyError struct {
	Reason   string
	Response RawResponse
	Reply    any
}

func (e *SafetyError) Error() string {
	return "gemlink: " + e.Reason
}

// Policy decides whether a provider response is deliverable to the caller.
// Enforce returns the response to deliver, or a *[SafetyError]. Streaming
// responses pass through untouched: enforcement is not defined for partial
// chunks. Implementations must not mutate the input; [RecoveringPolicy] is
// explicitly content-replacing and returns substituted copies instead.
type Policy interface {
	Enforce(raw RawResponse) (RawResponse, error)
}

// checkResponse applies the two safety checks in fixed order: the prompt
// feedback block reason first, then the first candidate's finish reason
// against the disallowed set. The returned error does not yet carry the
// original response; the caller attaches it.
func checkResponse(response GenerateContentResponse, disallowedFinish []string) *SafetyError {
	if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
		return &SafetyError{Reason: "Prompt blocked: " + response.PromptFeedback.BlockReason}
	}

	if len(response.Candidates) > 0 {
		finishReason := response.Candidates[0].FinishReason
		if finishReason != "" && slices.Contains(disallowedFinish, finishReason) {
			return &SafetyError{Reason: "Finish reason: " + finishReason}
		}
	}

	return nil
}

// StrictPolicy rejects any blocked or disallowed response with a
// *[SafetyError] and never modifies content. Batch elements are checked
// independently in order; the first rejection short-circuits and its error
// carries the whole original response.
type StrictPolicy struct {
	Config SafetyConfig
}

// NewStrictPolicy creates a strict policy with the given configuration.
func NewStrictPolicy(config SafetyConfig) *StrictPolicy {
	return &StrictPolicy{Config: config}
}

var _ Policy = (*StrictPolicy)(nil)

// Enforce implements [Policy].
func (p *StrictPolicy) Enforce(raw RawResponse) (RawResponse, error) {
	disallowed := p.Config.errorFinish()

	switch {
	case raw.Stream != nil:
		return raw, nil

	case raw.Batch != nil:
		for _, response := range raw.Batch {
			if safetyErr := checkResponse(response, disallowed); safetyErr != nil {
				safetyErr.Response = raw
				return RawResponse{}, safetyErr
			}
		}
		return raw, nil

	case raw.Single != nil:
		if safetyErr := checkResponse(*raw.Single, disallowed); safetyErr != nil {
			safetyErr.Response = raw
			return RawResponse{}, safetyErr
		}
		return raw, nil

	default:
		return raw, nil
	}
}

// RecoveringPolicy substitutes rejected content with a placeholder payload
// instead of propagating the rejection: permissive-but-logged failure
// handling, as opposed to the strict default. The substituted payload is a
// single model-role candidate carrying the configured placeholder text,
// unless the rejected payload already has at least one part and
// [SafetyConfig.ForceNewMessage] is unset, in which case the original
// (unsafe-flagged-but-non-empty) content is kept.
//
// RecoveringPolicy is content-replacing. Do not use it where an unmodified
// audit trail is required.
type RecoveringPolicy struct {
	Config SafetyConfig
}

// NewRecoveringPolicy creates a recovering policy with the given configuration.
func NewRecoveringPolicy(config SafetyConfig) *RecoveringPolicy {
	return &RecoveringPolicy{Config: config}
}

var _ Policy = (*RecoveringPolicy)(nil)

// Enforce implements [Policy].
func (p *RecoveringPolicy) Enforce(raw RawResponse) (RawResponse, error) {
	disallowed := p.Config.errorFinish()

	switch {
	case raw.Stream != nil:
		return raw, nil

	case raw.Batch != nil:
		recovered := make([]GenerateContentResponse, len(raw.Batch))
		for i, response := range raw.Batch {
			if checkResponse(response, disallowed) != nil {
				recovered[i] = p.substitute(response)
			} else {
				recovered[i] = response
			}
		}
		return RawResponse{Batch: recovered}, nil

	case raw.Single != nil:
		if checkResponse(*raw.Single, disallowed) != nil {
			substituted := p.substitute(*raw.Single)
			return RawResponse{Single: &substituted}, nil
		}
		return raw, nil

	default:
		return raw, nil
	}
}

// substitute builds the replacement payload for a rejected response.
func (p *RecoveringPolicy) substitute(response GenerateContentResponse) GenerateContentResponse {
	if !p.Config.ForceNewMessage && len(ExtractParts(response)) > 0 {
		return response
	}

	return GenerateContentResponse{
		Candidates: []Candidate{{
			Content: &Content{
				Role:  RoleModel,
				Parts: []Part{{Text: p.Config.PlaceholderMessage}},
			},
		}},
	}
}
