package chat

import "testing"

// TestConstructors verifies kind tagging for each message constructor.
func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		message  Message
		wantKind Kind
		wantRole string
	}{
		{name: "system", message: NewSystemMessage(TextContent("x")), wantKind: KindSystem},
		{name: "human", message: NewHumanMessage(TextContent("x")), wantKind: KindHuman},
		{name: "ai", message: NewAIMessage(TextContent("x")), wantKind: KindAI},
		{name: "generic", message: NewGenericMessage("critic", TextContent("x")), wantKind: KindGeneric, wantRole: "critic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.message.Kind != tt.wantKind {
				t.Errorf("expected kind %q, got %q", tt.wantKind, tt.message.Kind)
			}
			if tt.message.Role != tt.wantRole {
				t.Errorf("expected role %q, got %q", tt.wantRole, tt.message.Role)
			}
		})
	}
}

// TestMessageContent_AsText verifies flattening for plain and structured
// content.
func TestMessageContent_AsText(t *testing.T) {
	tests := []struct {
		name    string
		content MessageContent
		want    string
	}{
		{name: "plain string", content: TextContent("hello"), want: "hello"},
		{name: "empty", content: MessageContent{}, want: ""},
		{
			name: "parts concatenate in order",
			content: PartsContent(
				TextPart("a"),
				TextPart("b"),
			),
			want: "ab",
		},
		{
			name: "image parts contribute nothing",
			content: PartsContent(
				TextPart("see "),
				ImagePart("https://example.com/cat.png"),
				TextPart("that"),
			),
			want: "see that",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.content.AsText(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestMessageContent_IsPlain verifies parts take precedence over text.
func TestMessageContent_IsPlain(t *testing.T) {
	if !TextContent("x").IsPlain() {
		t.Error("plain text content should be plain")
	}
	if PartsContent(TextPart("x")).IsPlain() {
		t.Error("structured content should not be plain")
	}
	if !PartsContent().IsPlain() {
		t.Error("empty parts fall back to plain")
	}
}
