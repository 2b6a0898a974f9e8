package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/staticfmt/internal/presentation/listing"
	"github.com/aretw0/staticfmt/internal/presentation/tui"
	"github.com/aretw0/staticfmt/pkg/alphabet"
	"github.com/spf13/cobra"
)

var alphabetCmd = &cobra.Command{
	Use:   "alphabet [NAME|FILE]...",
	Short: "List the named characters of alphabet tables",
	Long: `Prints each table as markdown. On a terminal the markdown is rendered;
use --raw to get it unrendered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = alphabet.BuiltinNames()
		}

		var sections []string
		for _, ref := range args {
			a, err := alphabet.Resolve(ref)
			if err != nil {
				return err
			}
			sections = append(sections, listing.Markdown(a))
		}
		doc := strings.Join(sections, "\n")

		out := cmd.OutOrStdout()
		raw, _ := cmd.Flags().GetBool("raw")
		if raw || !isTerminal(out) {
			_, err := fmt.Fprint(out, doc)
			return err
		}

		render, err := tui.NewRenderer()
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		rendered, err := render(doc)
		if err != nil {
			logger.Warn("Markdown rendering failed, printing raw", "error", err)
			rendered = doc
		}
		_, err = fmt.Fprint(out, rendered)
		return err
	},
}

func init() {
	rootCmd.AddCommand(alphabetCmd)
	alphabetCmd.Flags().Bool("raw", false, "Print markdown without rendering it")
}
