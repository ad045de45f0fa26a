package transcript

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/quangvinhtran/tubesum/internal/config"
)

// fromSpeech downloads the audio track and transcribes it with the
// configured backend. Temporary audio artifacts are removed whether or not
// transcription succeeds.
func (f *implFetcher) fromSpeech(ctx context.Context, videoID string) (Transcript, error) {
	audioPath, err := f.downloadAudio(ctx, videoID)
	if err != nil {
		return Transcript{}, err
	}
	defer f.cleanupTempFile(ctx, audioPath)

	var text string
	switch f.cfg.Transcriber.Backend {
	case config.BackendWhisperCpp:
		text, err = f.transcribeLocal(ctx, audioPath)
	default:
		text, err = f.transcribeAPI(ctx, audioPath)
	}
	if err != nil {
		return Transcript{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Transcript{}, fmt.Errorf("transcription produced no text")
	}

	return Transcript{
		Segments: []Segment{{Text: text}},
		Source:   SourceSpeech,
	}, nil
}

// transcribeLocal runs the whisper-cli binary against a 16kHz mono WAV.
func (f *implFetcher) transcribeLocal(ctx context.Context, audioPath string) (string, error) {
	wavPath, err := f.extractWav(ctx, audioPath)
	if err != nil {
		return "", err
	}
	defer f.cleanupTempFile(ctx, wavPath)

	outputPrefix := strings.TrimSuffix(wavPath, ".wav")

	f.logger.Info(ctx, "Transcribing with whisper.cpp (%d threads): %s",
		f.cfg.Transcriber.Threads, wavPath)

	// -l forces the language to prevent hallucinated language switches on
	// quiet passages.
	args := []string{
		"-m", f.cfg.Transcriber.WhisperModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", f.cfg.Transcriber.Language,
		"-t", strconv.Itoa(f.cfg.Transcriber.Threads),
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if _, err := f.executor.Execute(ctx, f.cfg.Transcriber.WhisperBinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	txtPath := outputPrefix + ".txt"
	defer f.cleanupTempFile(ctx, txtPath)

	data, err := os.ReadFile(txtPath)
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	return string(data), nil
}

// transcribeAPI sends the audio file to the hosted Whisper API.
func (f *implFetcher) transcribeAPI(ctx context.Context, audioPath string) (string, error) {
	if f.stt == nil {
		return "", fmt.Errorf("OPENAI_API_KEY is required for Whisper API transcription")
	}

	f.logger.Info(ctx, "Transcribing with the Whisper API: %s", audioPath)

	resp, err := f.stt.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Language: f.cfg.Transcriber.Language,
	})
	if err != nil {
		return "", fmt.Errorf("whisper api: %w", err)
	}
	return resp.Text, nil
}
