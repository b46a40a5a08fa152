package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/quill/internal/editor"
)

var reviseCmd = &cobra.Command{
	Use:   "revise [file...]",
	Short: "Revise manuscript files into the output directory",
	Long: `Revises every Markdown file in the content directory, or only the
named files when arguments are given. Ignored files are omitted from a
full-manuscript run and copied unmodified when named explicitly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := newModel()
		if err != nil {
			return err
		}

		e, err := editor.New(cfg.Editor.ContentDir, model, logger)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		out := cfg.Editor.OutputDir

		if len(args) == 0 {
			run, err := e.ReviseManuscript(ctx, out)
			if run != nil {
				fmt.Fprintf(
					cmd.OutOrStdout(), "revised %d file(s), ignored %d, into %s\n",
					run.Written(), run.Ignored(), out,
				)
			}
			return err
		}

		for _, filename := range args {
			result, err := e.ReviseFile(ctx, filename, out)
			if err != nil {
				return err
			}
			switch {
			case result.Ignored:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: copied (ignored)\n", filename)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: revised %d paragraph(s)\n", filename, result.Paragraphs)
			}
		}
		return nil
	},
}
