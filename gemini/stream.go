package gemini

import (
	"context"
	"iter"
)

// ResponseStream wraps a finite asynchronous sequence of response chunks as
// delivered by a streaming provider endpoint. Each chunk is a complete
// GenerateContentResponse payload.
//
// A stream is consumed once and cannot be re-iterated. Callers must consume
// it (by ranging over Iter, including breaking early, or via
// [Builder.StreamChunks]); the producer may hold open resources that are
// only released when iteration completes or is abandoned via a loop break.
type ResponseStream struct {
	iterator iter.Seq2[GenerateContentResponse, error]
}

// NewResponseStream creates a ResponseStream from a raw chunk iterator.
// The iterator yields chunk payloads (with nil error) in provider emission
// order, and may yield a non-nil error to signal a mid-stream failure, such
// as an aborted connection after the last successfully decoded chunk.
func NewResponseStream(iterator iter.Seq2[GenerateContentResponse, error]) *ResponseStream {
	return &ResponseStream{iterator: iterator}
}

// NewChunkStream wraps already-materialized chunks as a stream. This is used
// for recorded payloads and tests; real streaming producers should use
// [NewResponseStream].
func NewChunkStream(chunks ...GenerateContentResponse) *ResponseStream {
	iteratorFunc := func(yield func(GenerateContentResponse, error) bool) {
		for _, chunk := range chunks {
			if !yield(chunk, nil) {
				return
			}
		}
	}
	return NewResponseStream(iteratorFunc)
}

// Iter returns the underlying iterator for use with range-over-func loops.
//
// Example:
//
//	for chunk, err := range stream.Iter() {
//	    if err != nil { handle error }
//	    fmt.Print(gemini.ExtractText(chunk))
//	}
func (stream *ResponseStream) Iter() iter.Seq2[GenerateContentResponse, error] {
	return stream.iterator
}

// StreamChunks decodes a response stream chunk by chunk into incremental
// chat generations, preserving the provider's emission order with no
// buffering beyond one chunk. Safety enforcement is not applied mid-stream:
// it is not defined for partial chunks. Cancellation is cooperative; the
// context is checked between chunk awaits and terminates iteration with the
// context's error.
func (b Builder) StreamChunks(ctx context.Context, stream *ResponseStream) iter.Seq2[ChatGeneration, error] {
	return func(yield func(ChatGeneration, error) bool) {
		for chunk, err := range stream.Iter() {
			if ctx.Err() != nil {
				yield(ChatGeneration{}, ctx.Err())
				return
			}
			if err != nil {
				yield(ChatGeneration{}, err)
				return
			}

			generation, decodeErr := b.ToChunk(chunk)
			if decodeErr != nil {
				yield(ChatGeneration{}, decodeErr)
				return
			}

			if !yield(generation, nil) {
				return
			}
		}
	}
}
