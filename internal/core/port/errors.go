package port

import (
	"errors"
	"fmt"

	"adfleet/internal/core/domain"
)

var (
	// ErrUnsupportedPlatform is returned when no adapter is registered for a
	// platform. Never retried.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	// ErrNotConnected is returned when the user has no connected credential
	// for the platform being dispatched to.
	ErrNotConnected = errors.New("platform not connected")
	// ErrPlatform marks a failed remote call. It is recorded on the slot and
	// never fails sibling slots.
	ErrPlatform = errors.New("platform error")
	// ErrAuth marks a failed OAuth exchange or ad account resolution.
	ErrAuth = errors.New("platform authentication failed")

	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("concurrent modification")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Adapter level causes wrapped by a PlatformError.
var (
	ErrSlotNotFound        = errors.New("platform slot not found in campaign")
	ErrConnectionExpired   = errors.New("connection missing or expired")
	ErrNoAdAccount         = errors.New("no active ad account")
	ErrRemoteRejected      = errors.New("request rejected by platform")
	ErrPlatformUnavailable = errors.New("platform temporarily unavailable")
	ErrPlatformTimeout     = errors.New("platform call timed out")
)

// PlatformError describes a failed call against one platform. errors.Is
// matches both ErrPlatform and the wrapped cause.
type PlatformError struct {
	Platform domain.Platform
	Op       Operation
	Err      error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Platform, e.Op, e.Err)
}

func (e *PlatformError) Unwrap() []error {
	return []error{ErrPlatform, e.Err}
}

// NewPlatformError wraps err unless it already is a PlatformError.
func NewPlatformError(p domain.Platform, op Operation, err error) error {
	var pe *PlatformError
	if errors.As(err, &pe) {
		return err
	}
	return &PlatformError{Platform: p, Op: op, Err: err}
}
