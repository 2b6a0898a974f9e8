package main

import (
	"github.com/aretw0/staticfmt/pkg/alphabet"
	"github.com/aretw0/staticfmt/pkg/wordgen"
	"github.com/spf13/cobra"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate Go source from alphabet tables or config files",
}

var genRegistryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Generate the bindings package of an alphabet table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, _ := cmd.Flags().GetString("alphabet")
		output, _ := cmd.Flags().GetString("output")

		a, err := alphabet.Resolve(ref)
		if err != nil {
			return err
		}
		src, err := wordgen.New(wordgen.WithLogger(logger)).Registry(a)
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), output, src)
	},
}

var genWordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Generate the words file described by the config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		alphabets, err := cfg.ResolveAlphabets()
		if err != nil {
			return err
		}
		src, err := wordgen.New(wordgen.WithAlphabets(alphabets...), wordgen.WithLogger(logger)).
			File(cfg.Package, cfg.WordList())
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), cfg.Output, src)
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.AddCommand(genRegistryCmd, genWordsCmd)

	genRegistryCmd.Flags().StringP("alphabet", "a", "ascii", "Builtin alphabet name or table file")
	genRegistryCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
}
