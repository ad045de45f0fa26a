package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quangvinhtran/tubesum/internal/config"
	"github.com/quangvinhtran/tubesum/internal/logger"
	"github.com/quangvinhtran/tubesum/internal/transcript"
	"github.com/quangvinhtran/tubesum/pkg/executor"
)

var flagTranscriptOut string

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <youtube-url|subtitle-file>",
	Short: "Fetch and print a transcript without summarizing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := logger.New(cfg.Logging.Level)

		text, err := transcriptText(cmd, args[0], cfg, log)
		if err != nil {
			return err
		}

		if flagTranscriptOut != "" {
			if err := os.WriteFile(flagTranscriptOut, []byte(text+"\n"), 0o644); err != nil {
				return fmt.Errorf("write transcript: %w", err)
			}
			log.Info(ctx, "Saved transcript to %s", flagTranscriptOut)
			return nil
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	transcribeCmd.Flags().StringVarP(&flagTranscriptOut, "output", "o", "", "write the transcript to a file instead of stdout")
}

func transcriptText(cmd *cobra.Command, arg string, cfg *config.Config, log logger.Logger) (string, error) {
	// A local subtitle file is cleaned and printed as-is, no network needed.
	if _, err := os.Stat(arg); err == nil {
		raw, err := os.ReadFile(arg)
		if err != nil {
			return "", err
		}
		switch strings.ToLower(filepath.Ext(arg)) {
		case ".srt", ".vtt":
			return transcript.CleanSubtitle(string(raw)), nil
		default:
			return strings.TrimSpace(string(raw)), nil
		}
	}

	videoID, err := transcript.ParseVideoID(arg)
	if err != nil {
		return "", err
	}
	fetcher := transcript.New(cfg, executor.New(), log)
	tr, err := fetcher.Fetch(cmd.Context(), videoID)
	if err != nil {
		return "", err
	}
	return tr.Text(), nil
}
