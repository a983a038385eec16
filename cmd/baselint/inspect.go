package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"baselint/pkg/baseline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <baseline.xml>",
	Short: "Show the status and contents summary of a baseline file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	return inspect(args[0], os.Stdout, os.Stderr)
}

func inspect(path string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))
	b, err := baseline.NewLoader(logger).Load(path)
	if err != nil {
		return err
	}

	switch b.Status {
	case baseline.Valid:
		total := 0
		for _, errs := range b.LintErrorsPerFile {
			total += len(errs)
		}
		fmt.Fprintf(stdout, "%s: %s, %d file(s), %d finding(s)\n",
			b.Path, b.Status, len(b.LintErrorsPerFile), total)
	case baseline.NotFound:
		fmt.Fprintf(stdout, "%s: %s, nothing to load yet\n", b.Path, b.Status)
	case baseline.Invalid:
		fmt.Fprintf(stdout, "%s: %s, removed so the next lint run regenerates it\n", b.Path, b.Status)
	case baseline.Disabled:
		fmt.Fprintf(stdout, "%s: %s\n", b.Path, b.Status)
	}
	return nil
}
