package gemini

import (
	"errors"
	"fmt"
)

// ErrUnknownPart is returned by decoding when [Codec.FailOnUnknownPart] is
// set and a provider part matches none of the recognized shapes. With the
// flag unset (the default) such parts are silently dropped instead.
var ErrUnknownPart = errors.New("gemlink: unrecognized provider part shape")

// MissingDataError indicates a malformed media reference in message content,
// such as an image part with an empty URL.
type MissingDataError struct {
	Reason string
}

func (e *MissingDataError) Error() string {
	return "gemlink: missing data: " + e.Reason
}

// UnsupportedConversionError indicates an attempt to convert a response shape
// that cannot be converted, such as bulk-normalizing a streaming response.
type UnsupportedConversionError struct {
	Reason string
}

func (e *UnsupportedConversionError) Error() string {
	return "gemlink: unsupported conversion: " + e.Reason
}

// InvalidParameterError indicates an out-of-range generation parameter. It is
// raised by [GenerationParams.Validate] before any provider call is made.
type InvalidParameterError struct {
	Param  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("gemlink: invalid parameter %s=%v: %s", e.Param, e.Value, e.Reason)
}
