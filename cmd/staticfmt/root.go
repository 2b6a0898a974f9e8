package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/staticfmt/internal/config"
	"github.com/aretw0/staticfmt/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var logger = logging.NewNop()

var rootCmd = &cobra.Command{
	Use:   "staticfmt",
	Short: "staticfmt turns string literals into nested zero-size Go types",
	Long: `staticfmt generates the Go declarations behind typed words: each character is
a type, a word is a nesting of them, and the text exists only when the value is
rendered.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelStr, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(levelStr)
		if err != nil {
			return err
		}
		logger = logging.New(cmd.ErrOrStderr(), level)
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Generation config file")
}

// loadConfig reads --config; the default path may be absent.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, cmd.Flags().Changed("config"))
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Info("Wrote file", "path", path, "bytes", len(data))
	return nil
}
