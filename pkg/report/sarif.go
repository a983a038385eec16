package report

import (
	"sort"

	"baselint/pkg/finding"
	"baselint/pkg/sarif"
)

// ToSARIF renders a filtered report as one SARIF run. New findings are
// emitted at error level; baseline-covered findings are kept in the log
// but carry an external suppression so downstream viewers hide them.
func ToSARIF(f Filtered, toolName string) *sarif.Log {
	run := sarif.Run{Tool: sarif.Tool{Driver: sarif.Driver{Name: toolName}}}

	for _, path := range sortedKeys(f.New) {
		for _, e := range f.New[path] {
			run.Results = append(run.Results,
				sarif.NewResult(e.RuleID, "error", e.Detail, path, e.Line, e.Column))
		}
	}
	for _, path := range sortedKeys(f.Suppressed) {
		for _, e := range f.Suppressed[path] {
			res := sarif.NewResult(e.RuleID, "note", e.Detail, path, e.Line, e.Column)
			run.Results = append(run.Results, res.Suppress("accepted by baseline"))
		}
	}

	log := sarif.NewLog()
	log.Runs = append(log.Runs, run)
	return log
}

func sortedKeys(m map[string][]finding.LintError) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
