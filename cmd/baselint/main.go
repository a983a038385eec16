// Command baselint filters lint reports through a baseline of
// previously-accepted findings, reporting only new violations.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "baselint",
	Short:        "Suppress already-accepted lint findings using a baseline",
	Long:         `baselint loads a baseline of accepted lint findings and cross-references live lint reports against it, so only new violations surface.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
