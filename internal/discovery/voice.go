package discovery

import (
	"errors"
	"fmt"
	"strings"

	"sonard/pkg/types"
)

// Command is a voice command variant. Only SearchCommand is applied by the
// session; FilterCommand and NavigateCommand are carried at the boundary so
// callers can decode the full schema without losing information.
type Command interface {
	Intent() types.VoiceIntent
}

type SearchCommand struct{ Query string }

type FilterCommand struct{ Tags []string }

type NavigateCommand struct{ Target string }

func (SearchCommand) Intent() types.VoiceIntent   { return types.IntentSearch }
func (FilterCommand) Intent() types.VoiceIntent   { return types.IntentFilter }
func (NavigateCommand) Intent() types.VoiceIntent { return types.IntentNavigate }

// ErrUnknownIntent is returned by ParseCommand for an unrecognized intent.
var ErrUnknownIntent = errors.New("unknown voice intent")

// ErrRecognitionUnavailable is reported by a Transcriber that has no
// recognizer to call.
var ErrRecognitionUnavailable = errors.New("speech recognition unavailable")

// RecognitionError is reported by a Transcriber when recognition ran and failed.
type RecognitionError struct{ Reason string }

func (e *RecognitionError) Error() string { return "speech recognition failed: " + e.Reason }

// ParseCommand maps a wire request onto a Command. A bare transcript is a
// search command.
func ParseCommand(req types.VoiceRequest) (Command, error) {
	if req.Intent == "" {
		return SearchCommand{Query: req.Transcript}, nil
	}
	switch req.Intent {
	case types.IntentSearch:
		q := req.Query
		if strings.TrimSpace(q) == "" {
			q = req.Transcript
		}
		return SearchCommand{Query: q}, nil
	case types.IntentFilter:
		return FilterCommand{Tags: append([]string(nil), req.Tags...)}, nil
	case types.IntentNavigate:
		return NavigateCommand{Target: req.Target}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, req.Intent)
	}
}
