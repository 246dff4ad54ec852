package steps

import "errors"

var (
	ErrUnknownLevel         = errors.New("steps: unknown content level")
	ErrUnknownField         = errors.New("steps: unknown personal info field")
	ErrUnknownQuestion      = errors.New("steps: unknown narrative question")
	ErrUnknownTemplate      = errors.New("steps: unknown template")
	ErrUnknownTheme         = errors.New("steps: unknown theme")
	ErrInvalidImage         = errors.New("steps: image must be an image data URI")
	ErrProfileImageDisabled = errors.New("steps: profile image requires the detailed content level")
)
