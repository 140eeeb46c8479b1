// Package cmd implements the toolbridge CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "🌉"

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "toolbridge",
	Short: logo + " toolbridge — MCP tools as local functions",
	Long:  logo + " toolbridge — connect to MCP servers and expose their tools as locally callable functions",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
}
