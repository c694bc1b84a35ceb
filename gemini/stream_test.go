package gemini

import (
	"context"
	"errors"
	"testing"
)

// TestStreamChunks_Order verifies chunks decode in provider emission order.
func TestStreamChunks_Order(t *testing.T) {
	builder := NewBuilder(Codec{}, nil)
	stream := NewChunkStream(
		textResponse("Hello"),
		textResponse(", "),
		textResponse("world"),
	)

	var texts []string
	for chunk, err := range builder.StreamChunks(context.Background(), stream) {
		if err != nil {
			t.Fatalf("unexpected stream error: %v", err)
		}
		texts = append(texts, chunk.Text)
	}

	want := []string{"Hello", ", ", "world"}
	if len(texts) != len(want) {
		t.Fatalf("expected %d chunks, got %d", len(want), len(texts))
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("chunk %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

// TestStreamChunks_MidStreamError verifies a producer error terminates
// iteration after the last successfully decoded chunk.
func TestStreamChunks_MidStreamError(t *testing.T) {
	producerErr := errors.New("connection reset")
	stream := NewResponseStream(func(yield func(GenerateContentResponse, error) bool) {
		if !yield(textResponse("partial"), nil) {
			return
		}
		yield(GenerateContentResponse{}, producerErr)
	})

	builder := NewBuilder(Codec{}, nil)
	var chunks int
	var streamErr error
	for chunk, err := range builder.StreamChunks(context.Background(), stream) {
		if err != nil {
			streamErr = err
			break
		}
		if chunk.Text != "partial" {
			t.Errorf("expected %q, got %q", "partial", chunk.Text)
		}
		chunks++
	}

	if chunks != 1 {
		t.Errorf("expected 1 decoded chunk before the error, got %d", chunks)
	}
	if !errors.Is(streamErr, producerErr) {
		t.Errorf("expected the producer error, got %v", streamErr)
	}
}

// TestStreamChunks_Cancellation verifies cooperative cancellation between
// chunk awaits.
func TestStreamChunks_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	builder := NewBuilder(Codec{}, nil)
	stream := NewChunkStream(
		textResponse("first"),
		textResponse("never delivered"),
	)

	var chunks int
	var streamErr error
	for _, err := range builder.StreamChunks(ctx, stream) {
		if err != nil {
			streamErr = err
			break
		}
		chunks++
		cancel()
	}

	if chunks != 1 {
		t.Errorf("expected 1 chunk before cancellation, got %d", chunks)
	}
	if !errors.Is(streamErr, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", streamErr)
	}
}

// TestStreamChunks_EarlyBreak verifies the consumer can stop iterating
// without error.
func TestStreamChunks_EarlyBreak(t *testing.T) {
	builder := NewBuilder(Codec{}, nil)
	stream := NewChunkStream(
		textResponse("only one wanted"),
		textResponse("extra"),
	)

	for chunk, err := range builder.StreamChunks(context.Background(), stream) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if chunk.Text != "only one wanted" {
			t.Errorf("expected first chunk, got %q", chunk.Text)
		}
		break
	}
}

// TestStreamChunks_MessageSeed verifies each decoded chunk carries an AI
// message seeded from the chunk's first part.
func TestStreamChunks_MessageSeed(t *testing.T) {
	builder := NewBuilder(Codec{}, nil)
	stream := NewChunkStream(textResponse("seed", " rest"))

	for chunk, err := range builder.StreamChunks(context.Background(), stream) {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if chunk.Text != "seed rest" {
			t.Errorf("expected full chunk text, got %q", chunk.Text)
		}
		parts := chunk.Message.Content.Parts
		if len(parts) != 1 || parts[0].Text != "seed" {
			t.Errorf("expected message seeded from first part, got %+v", parts)
		}
	}
}
