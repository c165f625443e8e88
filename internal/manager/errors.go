package manager

import (
	"errors"

	"sonard/internal/discovery"
)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("manager closed")

// eventNotFoundError signals a select of an id absent from the catalog so the
// HTTP layer can return 404. The session itself treats it as a no-op.
type eventNotFoundError struct{ id string }

func (e eventNotFoundError) Error() string { return "event not found: " + e.id }

// ErrEventNotFound returns an error for an id missing from the catalog.
func ErrEventNotFound(id string) error { return eventNotFoundError{id: id} }

// IsEventNotFound reports whether the error indicates a missing event id.
func IsEventNotFound(err error) bool {
	var e eventNotFoundError
	return errors.As(err, &e)
}

// IsUnsupportedIntent reports whether err is a voice intent the session does
// not apply (return 501).
func IsUnsupportedIntent(err error) bool { return errors.Is(err, discovery.ErrUnsupportedIntent) }

// IsUnknownIntent reports whether err is an unrecognized voice intent (return 400).
func IsUnknownIntent(err error) bool { return errors.Is(err, discovery.ErrUnknownIntent) }

// IsRecognitionUnavailable reports whether no speech recognizer is configured (return 503).
func IsRecognitionUnavailable(err error) bool {
	return errors.Is(err, discovery.ErrRecognitionUnavailable)
}

// IsRecognitionFailed reports whether the recognizer ran and rejected the audio (return 422).
func IsRecognitionFailed(err error) bool {
	var re *discovery.RecognitionError
	return errors.As(err, &re)
}
