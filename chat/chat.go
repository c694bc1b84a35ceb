package chat

import "strings"

// Kind identifies the origin of a message; compatible with string.
type Kind string

const (
	KindSystem  Kind = "system"  // System instructions/configuration
	KindHuman   Kind = "human"   // End-user message
	KindAI      Kind = "ai"      // Model response
	KindGeneric Kind = "generic" // Arbitrary role carried in Message.Role
)

// Message represents a single message in a conversation.
type Message struct {
	Kind    Kind           `json:"kind"`
	Role    string         `json:"role,omitempty"` // Only meaningful when Kind == KindGeneric
	Content MessageContent `json:"content"`
}

// NewSystemMessage creates a system message with the given content.
func NewSystemMessage(content MessageContent) Message {
	return Message{Kind: KindSystem, Content: content}
}

// NewHumanMessage creates a human (end-user) message with the given content.
func NewHumanMessage(content MessageContent) Message {
	return Message{Kind: KindHuman, Content: content}
}

// NewAIMessage creates an AI (model) message with the given content.
func NewAIMessage(content MessageContent) Message {
	return Message{Kind: KindAI, Content: content}
}

// NewGenericMessage creates a message with an arbitrary role.
func NewGenericMessage(role string, content MessageContent) Message {
	return Message{Kind: KindGeneric, Role: role, Content: content}
}

// MessageContent holds message content as either a plain text string or an
// ordered sequence of content parts. Parts take precedence over Text when
// non-empty.
type MessageContent struct {
	Text  string        `json:"text,omitempty"`
	Parts []ContentPart `json:"parts,omitempty"`
}

// TextContent wraps a plain string as message content.
func TextContent(text string) MessageContent {
	return MessageContent{Text: text}
}

// PartsContent wraps an ordered sequence of parts as message content.
func PartsContent(parts ...ContentPart) MessageContent {
	return MessageContent{Parts: parts}
}

// IsPlain reports whether the content is a plain string (no structured parts).
func (c MessageContent) IsPlain() bool {
	return len(c.Parts) == 0
}

// AsText flattens the content to a single string. For structured content the
// text of every text part is concatenated in order; non-text parts contribute
// nothing.
func (c MessageContent) AsText() string {
	if c.IsPlain() {
		return c.Text
	}

	var builder strings.Builder
	for _, part := range c.Parts {
		if part.Type == PartTypeText {
			builder.WriteString(part.Text)
		}
	}
	return builder.String()
}

// PartType identifies the shape of a content part; compatible with string.
type PartType string

const (
	PartTypeText  PartType = "text"      // Plain text
	PartTypeImage PartType = "image_url" // Image reference (data: URI or remote URL)
)

// ContentPart is one atomic unit of message content. Exactly one payload
// field is meaningful, selected by Type.
type ContentPart struct {
	Type     PartType `json:"type"`
	Text     string   `json:"text,omitempty"`      // Type == PartTypeText
	ImageURL string   `json:"image_url,omitempty"` // Type == PartTypeImage
}

// TextPart creates a text content part.
func TextPart(text string) ContentPart {
	return ContentPart{Type: PartTypeText, Text: text}
}

// ImagePart creates an image reference part. The URL is either a data: URI
// (embedded bytes and MIME type) or a remote URI.
func ImagePart(url string) ContentPart {
	return ContentPart{Type: PartTypeImage, ImageURL: url}
}
