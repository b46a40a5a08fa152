package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/quill/internal/editor"
	"github.com/JaimeStill/quill/internal/models"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file...]",
	Short: "Show which prompt each manuscript file resolves to",
	Long: `Resolves every Markdown file in the content directory, or only the
named files when arguments are given, against the revision configuration
without calling a model. Useful for checking ignore rules and filename
patterns before a run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := editor.New(cfg.Editor.ContentDir, &models.DummyModel{}, logger)
		if err != nil {
			return err
		}

		files := args
		if len(files) == 0 {
			files, err = e.Manuscript().Files()
			if err != nil {
				return err
			}
		}

		for _, filename := range files {
			res, err := e.Resolve(filename)
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}

			switch {
			case res.Ignored() && res.Match != nil:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ignored (pattern %q)\n", filename, res.Match.Pattern)
			case res.Ignored():
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ignored\n", filename)
			case res.Resolved():
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", filename, summarize(res.Prompt))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: built-in section prompt\n", filename)
			}
		}
		return nil
	},
}

func summarize(prompt string) string {
	const limit = 60
	if len(prompt) <= limit {
		return prompt
	}
	return prompt[:limit] + "..."
}
