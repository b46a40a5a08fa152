package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/quill/internal/config"
	"github.com/JaimeStill/quill/internal/models"
)

var (
	configPath string
	contentDir string
	outputDir  string
	modelName  string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "AI-assisted revision for Manubot manuscripts",
	Long: `Quill revises the Markdown files of a Manubot manuscript with a
language model, one paragraph at a time, while keeping every heading,
comment, and blank line exactly where it was.

Prompts are resolved per file from ai_revision-prompts.yaml and
ai_revision-config.yaml in the content directory, falling back to
built-in section prompts when no rule matches.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		// Flags win over config file and environment.
		if contentDir != "" {
			cfg.Editor.ContentDir = contentDir
		}
		if outputDir != "" {
			cfg.Editor.OutputDir = outputDir
		}
		if modelName != "" {
			cfg.Editor.Model = modelName
		}
		return nil
	},
}

func newModel() (models.Model, error) {
	switch cfg.Editor.Model {
	case config.ModelDummy:
		return &models.DummyModel{}, nil
	case config.ModelScramble:
		return &models.ScrambleModel{}, nil
	case config.ModelAgent:
		if err := config.FinalizeAgent(&cfg.Agent); err != nil {
			return nil, fmt.Errorf("agent config: %w", err)
		}
		return models.NewAgent(cfg.Agent, logger), nil
	default:
		return nil, fmt.Errorf("unknown model: %s", cfg.Editor.Model)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default: ./config.toml when present)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "manuscript content directory")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "directory for revised files")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "revision model: agent, dummy, or scramble")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(reviseCmd)
	rootCmd.AddCommand(resolveCmd)
}
