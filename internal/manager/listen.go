package manager

import (
	"context"
	"io"

	"sonard/internal/discovery"
	"sonard/pkg/types"
)

// Transcriber turns recorded speech into text. Implementations report
// discovery.ErrRecognitionUnavailable when no recognizer is reachable and a
// *discovery.RecognitionError when recognition ran and failed.
type Transcriber interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
}

type unavailableTranscriber struct{}

func (unavailableTranscriber) Transcribe(context.Context, io.Reader) (string, error) {
	return "", discovery.ErrRecognitionUnavailable
}

// Listen transcribes audio and applies the text as a voice search.
// Recognition runs outside the session loop.
func (m *Manager) Listen(ctx context.Context, audio io.Reader) (types.View, error) {
	text, err := m.transcriber.Transcribe(ctx, audio)
	if err != nil {
		m.log.Warn().Err(err).Msg("speech recognition failed")
		return types.View{}, err
	}
	return m.Transcript(ctx, text)
}
