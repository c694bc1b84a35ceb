package parse

import (
	"strings"
	"testing"
)

type verdict struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason"`
}

// TestAs_Primitives verifies direct conversion for primitive targets.
func TestAs_Primitives(t *testing.T) {
	text, err := As[string]("  plain answer \n")
	if err != nil {
		t.Fatalf("As[string] failed: %v", err)
	}
	if text != "plain answer" {
		t.Errorf("expected trimmed text, got %q", text)
	}

	flag, err := As[bool]("true")
	if err != nil {
		t.Fatalf("As[bool] failed: %v", err)
	}
	if !flag {
		t.Error("expected true")
	}

	number, err := As[int]("42")
	if err != nil {
		t.Fatalf("As[int] failed: %v", err)
	}
	if number != 42 {
		t.Errorf("expected 42, got %d", number)
	}

	ratio, err := As[float64]("0.75")
	if err != nil {
		t.Fatalf("As[float64] failed: %v", err)
	}
	if ratio != 0.75 {
		t.Errorf("expected 0.75, got %v", ratio)
	}
}

// TestAs_StructTargets exercises the JSON path: valid JSON, fenced JSON, and
// malformed JSON recovered via repair.
func TestAs_StructTargets(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "valid JSON", text: `{"safe": false, "reason": "harassment"}`},
		{name: "fenced JSON", text: "```json\n{\"safe\": false, \"reason\": \"harassment\"}\n```"},
		{name: "single quotes repaired", text: `{'safe': false, 'reason': 'harassment'}`},
		{name: "trailing comma repaired", text: `{"safe": false, "reason": "harassment",}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := As[verdict](tt.text)
			if err != nil {
				t.Fatalf("As failed: %v", err)
			}
			if parsed.Safe {
				t.Error("expected safe=false")
			}
			if parsed.Reason != "harassment" {
				t.Errorf("expected reason %q, got %q", "harassment", parsed.Reason)
			}
		})
	}
}

// TestAs_UnrecoverableInput verifies a clear error for input that is not
// JSON at all.
func TestAs_UnrecoverableInput(t *testing.T) {
	_, err := As[verdict]("I'd rather not answer that in JSON.")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "verdict") {
		t.Errorf("expected the target type in the error, got %v", err)
	}
}

// TestStripCodeFences verifies fence handling edge cases.
func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "no fence", text: `{"a":1}`, want: `{"a":1}`},
		{name: "plain fence", text: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "language tag", text: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "unterminated fence kept as body", text: "```json\n{\"a\":1}", want: `{"a":1}`},
		{name: "fence with no newline returned unchanged", text: "```", want: "```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.text); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
