package main

import (
	"fmt"

	"github.com/aretw0/staticfmt"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of staticfmt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "staticfmt version %s\n", staticfmt.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
