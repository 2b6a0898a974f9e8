package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/staticfmt/internal/presentation/tui"
	"github.com/aretw0/staticfmt/pkg/wordgen"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var wordCmd = &cobra.Command{
	Use:   "word [NAME=TEXT]...",
	Short: "Expand literals into nested type declarations",
	Long: `Expands each NAME=TEXT pair into a type alias whose rendering is TEXT.
Without arguments the words of the config file are used.

With --output the declarations are written as a complete Go file, ready for
go:generate:

	//go:generate staticfmt word -p main -o words_gen.go Greeting=Hello

With --expr the arguments are plain literals and only the type expressions are
printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("package") {
			cfg.Package, _ = cmd.Flags().GetString("package")
		}
		if cmd.Flags().Changed("output") {
			cfg.Output, _ = cmd.Flags().GetString("output")
		}
		if cmd.Flags().Changed("alphabet") {
			cfg.Alphabets, _ = cmd.Flags().GetStringSlice("alphabet")
		}

		alphabets, err := cfg.ResolveAlphabets()
		if err != nil {
			return err
		}
		gen := wordgen.New(wordgen.WithAlphabets(alphabets...), wordgen.WithLogger(logger))

		out := cmd.OutOrStdout()
		profile := termenv.Ascii
		if isTerminal(out) {
			profile = termenv.ColorProfile()
		}

		if exprOnly, _ := cmd.Flags().GetBool("expr"); exprOnly {
			for _, text := range args {
				expr, err := gen.TypeExpr(text)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, tui.Highlight(expr, profile))
			}
			return nil
		}

		words := cfg.WordList()
		if len(args) > 0 {
			words, err = parseWordArgs(args)
			if err != nil {
				return err
			}
		}

		if cfg.Output != "" {
			src, err := gen.File(cfg.Package, words)
			if err != nil {
				return err
			}
			return writeOutput(out, cfg.Output, src)
		}

		if len(words) == 0 {
			return wordgen.ErrNoWords
		}
		for _, w := range words {
			decl, err := gen.Decl(w.Name, w.Text)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, tui.Highlight(decl, profile))
		}
		return nil
	},
}

// parseWordArgs splits NAME=TEXT arguments. TEXT may itself contain '='.
func parseWordArgs(args []string) ([]wordgen.Word, error) {
	words := make([]wordgen.Word, 0, len(args))
	for _, arg := range args {
		name, text, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid argument %q: expected NAME=TEXT", arg)
		}
		words = append(words, wordgen.Word{Name: name, Text: text})
	}
	return words, nil
}

func init() {
	rootCmd.AddCommand(wordCmd)

	wordCmd.Flags().StringP("package", "p", "main", "Package name of the generated file")
	wordCmd.Flags().StringP("output", "o", "", "Write a Go file instead of printing declarations")
	wordCmd.Flags().StringSliceP("alphabet", "a", nil, "Alphabets to resolve runes against, builtin name or table file (repeatable)")
	wordCmd.Flags().Bool("expr", false, "Treat arguments as plain literals and print type expressions only")
}
