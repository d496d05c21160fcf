package converter

import "errors"

var (
	// ErrMissingInputFile is returned when the channel JSON file does not exist.
	ErrMissingInputFile = errors.New("input file not found")
	// ErrMalformedInput wraps the decoder error for input that is not valid JSON.
	ErrMalformedInput = errors.New("JSON decode failed")
	// ErrNoChannelData is returned when no channel list can be located in the document.
	ErrNoChannelData = errors.New("no channel data found")
	// ErrUnexpected wraps any other failure during conversion.
	ErrUnexpected = errors.New("conversion failed")
)

// wrapError ties err to one of the sentinel kinds while keeping its detail.
type wrapError struct {
	kind error
	err  error
}

func (e *wrapError) Error() string { return e.kind.Error() + ": " + e.err.Error() }

func (e *wrapError) Unwrap() []error { return []error{e.kind, e.err} }

func wrap(kind, err error) error {
	return &wrapError{kind: kind, err: err}
}
