package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quangvinhtran/tubesum/internal/logger"
	"github.com/quangvinhtran/tubesum/internal/pipeline"
	"github.com/quangvinhtran/tubesum/internal/render"
	"github.com/quangvinhtran/tubesum/internal/transcript"
	"github.com/quangvinhtran/tubesum/internal/watcher"
)

var flagWatchDocx bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and summarize every transcript file dropped into it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Watch.Input == "" || cfg.Watch.Output == "" {
			return fmt.Errorf("watch mode requires watch.input and watch.output in the config file")
		}
		if err := os.MkdirAll(cfg.Watch.Output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		log := logger.New(cfg.Logging.Level)

		flagQuiet = true // progress bars interleave badly with concurrent runs
		p, err := buildPipeline(cfg, log)
		if err != nil {
			return err
		}

		handler := func(ctx context.Context, path string) error {
			return summarizeFile(ctx, p, path, cfg.Watch.Output, log)
		}
		w, err := watcher.New(cfg.Watch.Input, handler, log, cfg.Pipeline.Concurrency)
		if err != nil {
			return err
		}
		defer w.Stop()

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVar(&flagWatchDocx, "docx", false, "also save each summary as a docx file")
}

func summarizeFile(ctx context.Context, p pipeline.Pipeline, path, outputDir string, log logger.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}

	text := string(raw)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt", ".vtt":
		text = transcript.CleanSubtitle(text)
	}

	summary, err := p.Run(ctx, text)
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(outputDir, name+".md")
	content := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n", name, time.Now().Format("2006-01-02 15:04"), summary)
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	log.Info(ctx, "Summary written to %s", outPath)

	if flagWatchDocx {
		docxPath := filepath.Join(outputDir, name+".docx")
		if err := render.WriteDocx(name, summary, docxPath); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		log.Info(ctx, "Saved docx to %s", docxPath)
	}
	return nil
}
