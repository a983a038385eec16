package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"baselint/pkg/baseline"
	"baselint/pkg/report"
	"baselint/pkg/sarif"
)

var filterCmd = &cobra.Command{
	Use:   "filter [flags] <report.json>",
	Short: "Suppress baselined findings in a lint report",
	Long:  `Filter reads an ESLint-style JSON lint report, suppresses every finding the baseline already accepts, and emits the rest as SARIF on stdout. The exit code is non-zero when new findings remain.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFilter,
}

func init() {
	filterCmd.Flags().String("baseline", "", "path to the baseline XML file")
	filterCmd.Flags().String("config", "", "path to a config file (default: ./"+defaultConfigName+" when present)")
	filterCmd.Flags().String("format", "", "output format (sarif|summary)")
}

func runFilter(cmd *cobra.Command, args []string) error {
	baselinePath, err := cmd.Flags().GetString("baseline")
	if err != nil {
		return fmt.Errorf("get baseline flag: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("get format flag: %w", err)
	}

	opts := filterOptions{
		reportPath:   args[0],
		baselinePath: baselinePath,
		configPath:   configPath,
		format:       format,
	}
	return filter(opts, os.Stdout, os.Stderr)
}

type filterOptions struct {
	reportPath   string
	baselinePath string
	configPath   string
	format       string
}

func filter(opts filterOptions, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(opts.configPath)
	if err != nil {
		return err
	}

	baselinePath := opts.baselinePath
	if baselinePath == "" {
		baselinePath = cfg.Baseline
	}
	if baselinePath == "" {
		return errors.New("a baseline path is required (--baseline or " + defaultConfigName + ")")
	}

	format := opts.format
	if format == "" {
		format = cfg.Format
	}
	if format == "" {
		format = "sarif"
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	b, err := baseline.NewLoader(logger).Load(baselinePath)
	if err != nil {
		return err
	}

	rep, err := report.Load(opts.reportPath)
	if err != nil {
		return err
	}

	filtered := report.Filter(rep, b)

	switch format {
	case "sarif":
		if err := sarif.NewEncoder(stdout).Encode(report.ToSARIF(filtered, "baselint")); err != nil {
			return fmt.Errorf("encode sarif: %w", err)
		}
	case "summary":
		// Summary only; printed below for both formats.
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	printSummary(stderr, b, filtered)

	if n := filtered.NewCount(); n > 0 {
		return fmt.Errorf("%d finding(s) not covered by the baseline", n)
	}
	return nil
}

func printSummary(w io.Writer, b baseline.Baseline, f report.Filtered) {
	var status string
	switch b.Status {
	case baseline.Valid:
		status = color.New(color.FgGreen).Sprint(b.Status)
	case baseline.NotFound, baseline.Invalid:
		status = color.New(color.FgYellow).Sprint(b.Status)
	case baseline.Disabled:
		status = b.Status.String()
	}
	fmt.Fprintf(w, "baseline %s: %s\n", b.Path, status)

	newText := color.New(color.FgGreen).Sprintf("%d new", f.NewCount())
	if f.NewCount() > 0 {
		newText = color.New(color.FgRed).Sprintf("%d new", f.NewCount())
	}
	fmt.Fprintf(w, "%d suppressed, %s\n", f.SuppressedCount(), newText)
}
