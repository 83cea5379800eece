package chatmd

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrDocumentRender = errors.New("document rendering failed")
	ErrUnknownEngine  = errors.New("unknown engine")

	// Option validation errors.
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
	ErrInvalidSideChannelTag = errors.New("invalid side-channel tag")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// wrapError returns an error that prints as original but matches sentinel
// with errors.Is, so internal error types never leak through the API.
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}
