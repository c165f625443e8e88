package discovery

import (
	"errors"
	"testing"

	"sonard/pkg/types"
)

func TestParseCommand(t *testing.T) {
	cmd, err := ParseCommand(types.VoiceRequest{Transcript: "music"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if sc, ok := cmd.(SearchCommand); !ok || sc.Query != "music" {
		t.Fatalf("bare transcript should be search, got %#v", cmd)
	}

	cmd, _ = ParseCommand(types.VoiceRequest{Intent: types.IntentSearch, Transcript: "fallback"})
	if sc := cmd.(SearchCommand); sc.Query != "fallback" {
		t.Fatalf("search without query should use transcript, got %q", sc.Query)
	}

	cmd, _ = ParseCommand(types.VoiceRequest{Intent: types.IntentFilter, Tags: []string{"energetic"}})
	if fc, ok := cmd.(FilterCommand); !ok || fc.Intent() != types.IntentFilter || fc.Tags[0] != "energetic" {
		t.Fatalf("unexpected filter command %#v", cmd)
	}

	cmd, _ = ParseCommand(types.VoiceRequest{Intent: types.IntentNavigate, Target: "3"})
	if nc, ok := cmd.(NavigateCommand); !ok || nc.Target != "3" {
		t.Fatalf("unexpected navigate command %#v", cmd)
	}

	if _, err := ParseCommand(types.VoiceRequest{Intent: "dance"}); !errors.Is(err, ErrUnknownIntent) {
		t.Fatalf("expected ErrUnknownIntent, got %v", err)
	}
}

func TestRecognitionErrorMessage(t *testing.T) {
	var err error = &RecognitionError{Reason: "no-speech"}
	var re *RecognitionError
	if !errors.As(err, &re) || re.Reason != "no-speech" {
		t.Fatalf("errors.As failed for %v", err)
	}
	if err.Error() != "speech recognition failed: no-speech" {
		t.Fatalf("message=%q", err.Error())
	}
}
