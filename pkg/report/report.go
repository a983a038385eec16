// Package report parses live lint reports and filters them against a
// baseline so already-accepted violations can be suppressed.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"baselint/pkg/baseline"
	"baselint/pkg/finding"
)

// fileResult mirrors one entry of an ESLint-style JSON report.
type fileResult struct {
	FilePath string    `json:"filePath"`
	Messages []message `json:"messages"`
}

type message struct {
	RuleID  string `json:"ruleId"`
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// Report holds live findings grouped by relative file path.
type Report struct {
	Files map[string][]finding.LintError
}

// Load reads an ESLint-style JSON report from path.
func Load(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("open report: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse decodes an ESLint-style JSON report. Rule ids are normalized so
// the same rule spelling is used on both sides of any baseline comparison.
func Parse(r io.Reader) (Report, error) {
	var results []fileResult
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}

	files := make(map[string][]finding.LintError, len(results))
	for _, res := range results {
		errs := files[res.FilePath]
		for _, m := range res.Messages {
			errs = append(errs, finding.LintError{
				Line:   m.Line,
				Column: m.Column,
				RuleID: finding.NormalizeRuleID(m.RuleID),
				Detail: m.Message,
				Status: finding.StatusDetected,
			})
		}
		files[res.FilePath] = errs
	}
	return Report{Files: files}, nil
}

// Filtered is the outcome of matching a report against a baseline.
type Filtered struct {
	// New are findings the baseline does not cover, grouped by file.
	New map[string][]finding.LintError
	// Suppressed are findings the baseline already accepts.
	Suppressed map[string][]finding.LintError
}

// NewCount returns the total number of uncovered findings.
func (f Filtered) NewCount() int {
	n := 0
	for _, errs := range f.New {
		n += len(errs)
	}
	return n
}

// SuppressedCount returns the total number of baseline-covered findings.
func (f Filtered) SuppressedCount() int {
	n := 0
	for _, errs := range f.Suppressed {
		n += len(errs)
	}
	return n
}

// Filter partitions rep's findings by baseline membership. Only a Valid
// baseline contributes suppression data; every other status behaves as if
// no baseline existed.
func Filter(rep Report, b baseline.Baseline) Filtered {
	out := Filtered{
		New:        make(map[string][]finding.LintError),
		Suppressed: make(map[string][]finding.LintError),
	}

	for path, errs := range rep.Files {
		var accepted []finding.LintError
		switch b.Status {
		case baseline.Valid:
			accepted = b.LintErrorsPerFile[path]
		case baseline.Disabled, baseline.NotFound, baseline.Invalid:
			// No suppression data.
		}
		for _, e := range errs {
			if finding.ExcludesMatch(accepted, e) {
				out.New[path] = append(out.New[path], e)
			} else {
				out.Suppressed[path] = append(out.Suppressed[path], e)
			}
		}
	}
	return out
}
