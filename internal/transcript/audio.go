package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// downloadAudio fetches the video's audio track with yt-dlp into the temp
// directory. Callers own cleanup of the returned file.
func (f *implFetcher) downloadAudio(ctx context.Context, videoID string) (string, error) {
	if err := os.MkdirAll(f.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	audioPath := filepath.Join(f.cfg.Paths.Temp, videoID+".m4a")

	f.logger.Info(ctx, "Downloading audio for %s", videoID)

	args := []string{
		"-x",
		"--audio-format", "m4a",
		"--no-progress",
		"-o", audioPath,
		"https://www.youtube.com/watch?v=" + videoID,
	}
	if _, err := f.executor.Execute(ctx, f.cfg.YouTube.YtdlpPath, args...); err != nil {
		return "", fmt.Errorf("yt-dlp download audio: %w", err)
	}

	f.logger.Debug(ctx, "Audio downloaded: %s", audioPath)
	return audioPath, nil
}

// extractWav converts downloaded audio to 16kHz mono PCM WAV, the format
// whisper.cpp expects.
func (f *implFetcher) extractWav(ctx context.Context, audioPath string) (string, error) {
	wavPath := strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_temp.wav"

	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		wavPath,
	}
	if _, err := f.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	return wavPath, nil
}

// cleanupTempFile removes a temporary file, logs a warning if it fails
func (f *implFetcher) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		f.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		f.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
