package sm2

import "errors"

// Sentinel errors for the sm2 package.
// Use errors.Is to check: errors.Is(err, sm2.ErrInvalidResponse)
var (
	ErrInvalidResponse = errors.New("sm2: invalid response")
	ErrInvalidSettings = errors.New("sm2: settings out of range")
	ErrCardIDMismatch  = errors.New("sm2: card ID mismatch in review log")
)
