package gemini

import (
	"context"
	"strings"

	"github.com/leofalp/gemlink/chat"
	"github.com/leofalp/gemlink/observability"
)

const (
	// dataURIScheme marks image references with embedded base64 payloads.
	dataURIScheme = "data:"

	// defaultImageMimeType is used for remote image references whose MIME
	// type cannot be determined from the URL alone. Callers needing the
	// correct type must supply it out of band.
	defaultImageMimeType = "image/png"

	// systemAckText is the synthetic model acknowledgment emitted after a
	// system message, for providers with no native system-role concept.
	systemAckText = "Ok"
)

// Codec converts chat message content to and from Gemini parts and maps chat
// roles to provider roles. The zero value is ready to use.
type Codec struct {
	// FailOnUnknownPart rejects provider parts with an unrecognized shape
	// instead of silently dropping them. Dropping is the permissive default;
	// enable this to surface upstream provider errors that would otherwise
	// be hidden by the filter.
	FailOnUnknownPart bool
}

// EncodeContent converts message content to Gemini parts. A plain string is
// promoted to a single text part. Image references with a data: URI become
// inline data; any other URL becomes a file reference with a placeholder
// MIME type. An image part with an empty URL fails with [MissingDataError].
func (c Codec) EncodeContent(content chat.MessageContent) ([]Part, error) {
	if content.IsPlain() {
		return []Part{{Text: content.Text}}, nil
	}

	parts := make([]Part, 0, len(content.Parts))
	for _, contentPart := range content.Parts {
		switch contentPart.Type {
		case chat.PartTypeText:
			parts = append(parts, Part{Text: contentPart.Text})

		case chat.PartTypeImage:
			imagePart, err := encodeImagePart(contentPart.ImageURL)
			if err != nil {
				return nil, err
			}
			parts = append(parts, imagePart)
		}
	}
	return parts, nil
}

// encodeImagePart converts an image URL to the appropriate Gemini part shape:
// inlineData for data: URIs, fileData for everything else.
func encodeImagePart(url string) (Part, error) {
	if url == "" {
		return Part{}, &MissingDataError{Reason: "image content part has an empty URL"}
	}

	if strings.HasPrefix(url, dataURIScheme) {
		mimeType, data := splitDataURI(url)
		return Part{InlineData: &InlineData{MimeType: mimeType, Data: data}}, nil
	}

	return Part{FileData: &FileData{MimeType: defaultImageMimeType, FileURI: url}}, nil
}

// splitDataURI splits a data: URI of the form data:<mimeType>;base64,<payload>.
// The MIME type is the substring between the first ':' and the first ';'; the
// payload is everything after the first ','.
func splitDataURI(uri string) (mimeType, data string) {
	if colon := strings.Index(uri, ":"); colon >= 0 {
		rest := uri[colon+1:]
		if semi := strings.Index(rest, ";"); semi >= 0 {
			mimeType = rest[:semi]
		}
	}
	if comma := strings.Index(uri, ","); comma >= 0 {
		data = uri[comma+1:]
	}
	return mimeType, data
}

// EncodeMessage wraps the encoded content of a message into Gemini content
// blocks carrying the given provider role. System messages expand to two
// blocks: a user turn with the system text followed by a synthetic model
// acknowledgment turn.
func (c Codec) EncodeMessage(role string, message chat.Message) ([]Content, error) {
	parts, err := c.EncodeContent(message.Content)
	if err != nil {
		return nil, err
	}

	if message.Kind == chat.KindSystem {
		return []Content{
			{Role: RoleUser, Parts: parts},
			{Role: RoleModel, Parts: []Part{{Text: systemAckText}}},
		}, nil
	}

	return []Content{{Role: role, Parts: parts}}, nil
}

// EncodeChatMessage dispatches on the message kind.
// Role mapping: system -> user + model ack, human -> user, ai -> model.
// Any other kind produces no output and records a non-fatal warning, keeping
// multi-provider chat histories tolerant of mixed content.
func (c Codec) EncodeChatMessage(ctx context.Context, message chat.Message) ([]Content, error) {
	switch message.Kind {
	case chat.KindSystem:
		return c.EncodeMessage(RoleUser, message)
	case chat.KindHuman:
		return c.EncodeMessage(RoleUser, message)
	case chat.KindAI:
		return c.EncodeMessage(RoleModel, message)
	default:
		if observer := observability.ObserverFromContext(ctx); observer != nil {
			observer.Warn(ctx, "Skipping unsupported chat message kind",
				observability.String(observability.AttrMessageKind, string(message.Kind)),
				observability.String(observability.AttrMessageRole, message.Role),
			)
		}
		return nil, nil
	}
}

// EncodeChatMessages encodes a conversation in order, flattening the content
// blocks each message expands to.
func (c Codec) EncodeChatMessages(ctx context.Context, messages []chat.Message) ([]Content, error) {
	var contents []Content
	for _, message := range messages {
		encoded, err := c.EncodeChatMessage(ctx, message)
		if err != nil {
			return nil, err
		}
		contents = append(contents, encoded...)
	}
	return contents, nil
}

// DecodePart converts a Gemini part back to a chat content part. Text maps to
// a text part; inlineData is reconstructed into a data: URI image reference;
// fileData maps to an image reference carrying the file URI. An unrecognized
// shape decodes to nil (dropped), or to [ErrUnknownPart] when
// [Codec.FailOnUnknownPart] is set.
func (c Codec) DecodePart(part Part) (*chat.ContentPart, error) {
	switch {
	case part.Text != "":
		decoded := chat.TextPart(part.Text)
		return &decoded, nil

	case part.InlineData != nil:
		uri := dataURIScheme + part.InlineData.MimeType + ";base64," + part.InlineData.Data
		decoded := chat.ImagePart(uri)
		return &decoded, nil

	case part.FileData != nil:
		decoded := chat.ImagePart(part.FileData.FileURI)
		return &decoded, nil

	default:
		if c.FailOnUnknownPart {
			return nil, ErrUnknownPart
		}
		return nil, nil
	}
}

// DecodeParts converts Gemini parts to message content, preserving input
// order. Unrecognized parts are filtered out (subject to
// [Codec.FailOnUnknownPart]).
func (c Codec) DecodeParts(parts []Part) (chat.MessageContent, error) {
	decoded := make([]chat.ContentPart, 0, len(parts))
	for _, part := range parts {
		contentPart, err := c.DecodePart(part)
		if err != nil {
			return chat.MessageContent{}, err
		}
		if contentPart != nil {
			decoded = append(decoded, *contentPart)
		}
	}
	return chat.PartsContent(decoded...), nil
}
