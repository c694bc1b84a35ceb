package parse

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// As parses model-produced text into the specified type T.
//
// String targets receive the trimmed text as-is. Bool and numeric targets are
// parsed with strconv. Complex targets (structs, maps, slices) go through
// JSON unmarshaling: markdown code fences are stripped first, and when plain
// unmarshaling fails the text is run through jsonrepair and retried, since
// models routinely emit single quotes, trailing commas or unquoted keys.
//
// Example usage:
//
//	type Verdict struct {
//	    Safe   bool   `json:"safe"`
//	    Reason string `json:"reason"`
//	}
//
//	verdict, err := parse.As[Verdict](generation.Text)
func As[T any](text string) (T, error) {
	var result T
	trimmed := strings.TrimSpace(text)

	switch any(result).(type) {
	case string:
		return any(trimmed).(T), nil

	case bool:
		value, err := strconv.ParseBool(trimmed)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as bool: %w", err)
		}
		return any(value).(T), nil

	case int:
		value, err := strconv.Atoi(trimmed)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as int: %w", err)
		}
		return any(value).(T), nil

	case float64:
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return result, fmt.Errorf("failed to parse content as float: %w", err)
		}
		return any(value).(T), nil

	default:
		candidate := StripCodeFences(trimmed)

		if err := json.Unmarshal([]byte(candidate), &result); err != nil {
			repaired, repairErr := jsonrepair.JSONRepair(candidate)
			if repairErr != nil {
				return result, fmt.Errorf("failed to unmarshal content as %T and failed to repair JSON: unmarshal error: %w, repair error: %v", result, err, repairErr)
			}

			if err := json.Unmarshal([]byte(repaired), &result); err != nil {
				return result, fmt.Errorf("failed to unmarshal repaired JSON as %T: %w", result, err)
			}
		}
		return result, nil
	}
}

// StripCodeFences removes a surrounding markdown code fence (``` or ```json)
// from the text, returning the inner content. Text without a fence is
// returned unchanged.
func StripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// Drop the opening fence line, including any language tag.
	body := trimmed[3:]
	if newline := strings.Index(body, "\n"); newline >= 0 {
		body = body[newline+1:]
	} else {
		return trimmed
	}

	if closing := strings.LastIndex(body, "```"); closing >= 0 {
		body = body[:closing]
	}

	return strings.TrimSpace(body)
}
