package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/quangvinhtran/tubesum/internal/chunker"
	"github.com/quangvinhtran/tubesum/internal/config"
	"github.com/quangvinhtran/tubesum/internal/logger"
	"github.com/quangvinhtran/tubesum/internal/pipeline"
	"github.com/quangvinhtran/tubesum/internal/render"
	"github.com/quangvinhtran/tubesum/internal/summarizer"
	"github.com/quangvinhtran/tubesum/internal/tokenizer"
	"github.com/quangvinhtran/tubesum/internal/transcript"
	"github.com/quangvinhtran/tubesum/pkg/executor"
)

var (
	flagConfig      string
	flagModel       string
	flagProvider    string
	flagWords       int
	flagMaxTokens   int
	flagConcurrency int
	flagDocx        string
	flagQuiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "tubesum <youtube-url>",
	Short: "Summarize a YouTube video from its transcript",
	Long: `tubesum fetches the transcript of a YouTube video (captions first,
speech-to-text as fallback), summarizes it chunk by chunk with a hosted
language model and fuses the pieces into a single short summary.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := applyFlags(cfg); err != nil {
			return err
		}

		log := logger.New(cfg.Logging.Level)

		videoID, err := transcript.ParseVideoID(args[0])
		if err != nil {
			return err
		}
		log.Info(ctx, "Summarizing video %s", videoID)

		fetcher := transcript.New(cfg, executor.New(), log)
		tr, err := fetcher.Fetch(ctx, videoID)
		if err != nil {
			return err
		}
		log.Info(ctx, "Transcript ready (source: %s)", tr.Source)

		p, err := buildPipeline(cfg, log)
		if err != nil {
			return err
		}

		summary, err := p.Run(ctx, tr.Text())
		if err != nil {
			return err
		}

		fmt.Print(render.Markdown(summary))

		if flagDocx != "" {
			if err := render.WriteDocx("Summary: "+videoID, summary, flagDocx); err != nil {
				return fmt.Errorf("write docx: %w", err)
			}
			log.Info(ctx, "Saved docx to %s", flagDocx)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress the progress bar")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "summarizer model override")
	rootCmd.Flags().StringVar(&flagProvider, "provider", "", "summarizer provider (openai or gemini)")
	rootCmd.Flags().IntVar(&flagWords, "words", 0, "target summary length in words")
	rootCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "token budget per transcript chunk")
	rootCmd.Flags().IntVar(&flagConcurrency, "concurrency", 0, "max concurrent summarization requests")
	rootCmd.Flags().StringVar(&flagDocx, "docx", "", "also save the summary as a docx file")

	rootCmd.AddCommand(transcribeCmd)
	rootCmd.AddCommand(watchCmd)
}

func loadConfig() (*config.Config, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return config.Load("config.yaml")
	}
	return config.Default()
}

// applyFlags lets command line overrides win over config file values.
func applyFlags(cfg *config.Config) error {
	if flagProvider != "" {
		cfg.Summarizer.Provider = flagProvider
		// The model default follows the provider, so a provider override
		// without an explicit model falls back to that provider's default.
		if flagModel == "" {
			cfg.Summarizer.Model = ""
		}
	}
	if flagModel != "" {
		cfg.Summarizer.Model = flagModel
	}
	if flagWords > 0 {
		cfg.Summarizer.TargetWords = flagWords
	}
	if flagMaxTokens > 0 {
		cfg.Chunker.MaxTokens = flagMaxTokens
	}
	if flagConcurrency > 0 {
		cfg.Pipeline.Concurrency = flagConcurrency
	}
	return cfg.Validate()
}

func buildPipeline(cfg *config.Config, log logger.Logger) (pipeline.Pipeline, error) {
	tok, err := tokenizer.NewTiktoken(cfg.Summarizer.Model)
	if err != nil {
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}
	chk, err := chunker.New(tok, cfg.Chunker.MaxTokens)
	if err != nil {
		return nil, err
	}
	client, err := summarizer.New(cfg, log)
	if err != nil {
		return nil, err
	}

	var opts []pipeline.Option
	if !flagQuiet {
		var bar *progressbar.ProgressBar
		opts = append(opts, pipeline.WithProgress(func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetDescription("summarizing"),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionClearOnFinish(),
				)
			}
			bar.Set(done)
		}))
	}
	return pipeline.New(cfg, client, chk, log, opts...), nil
}
