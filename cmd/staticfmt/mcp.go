package main

import (
	"log"
	"os"

	"github.com/aretw0/staticfmt/internal/config"
	"github.com/aretw0/staticfmt/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts staticfmt as an MCP Server on Standard Input/Output.
Agents can expand literals into type declarations (word_type), look up named
characters (lookup_char) and read the alphabet tables as resources.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("alphabet") {
			cfg.Alphabets, _ = cmd.Flags().GetStringSlice("alphabet")
		}
		alphabets, err := cfg.ResolveAlphabets()
		if err != nil {
			return err
		}

		srv := mcp.NewServer(mcp.WithAlphabets(alphabets...), mcp.WithLogger(logger))

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger.Info("Starting staticfmt MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP Server execution failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().StringSliceP("alphabet", "a", config.Default().Alphabets, "Alphabets to serve (repeatable)")
}
