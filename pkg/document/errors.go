package document

import "errors"

var (
	// ErrUnknownCategory is returned when a tech stack category is not one of
	// the four known categories.
	ErrUnknownCategory = errors.New("document: unknown tech stack category")
	// ErrNotImage signals that a payload passed to DataURI is not an image.
	ErrNotImage = errors.New("document: content is not an image")
	// ErrEmptyImage signals an empty upload.
	ErrEmptyImage = errors.New("document: image is empty")
)
