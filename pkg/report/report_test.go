package report

import (
	"strings"
	"testing"

	"baselint/pkg/baseline"
	"baselint/pkg/finding"
)

const sampleReport = `[
  {
    "filePath": "src/Foo.kt",
    "messages": [
      {"ruleId": "rule-x", "message": "wildcard import", "line": 12, "column": 5},
      {"ruleId": "standard:rule-y", "message": "magic number", "line": 20, "column": 9}
    ]
  },
  {
    "filePath": "src/Bar.kt",
    "messages": [
      {"ruleId": "custom:rule-z", "message": "too long", "line": 1, "column": 1}
    ]
  }
]`

func parseSample(t *testing.T) Report {
	t.Helper()
	rep, err := Parse(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return rep
}

func TestParseGroupsByFile(t *testing.T) {
	rep := parseSample(t)

	if len(rep.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(rep.Files))
	}
	foo := rep.Files["src/Foo.kt"]
	if len(foo) != 2 {
		t.Fatalf("expected 2 findings for src/Foo.kt, got %d", len(foo))
	}
	if foo[0].RuleID != "standard:rule-x" {
		t.Errorf("expected normalized rule id, got %s", foo[0].RuleID)
	}
	if foo[0].Detail != "wildcard import" {
		t.Errorf("expected detail preserved, got %q", foo[0].Detail)
	}
	if foo[0].Status != finding.StatusDetected {
		t.Errorf("expected detected status, got %s", foo[0].Status)
	}
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	if _, err := Parse(strings.NewReader(`{"not": "a report"`)); err == nil {
		t.Fatalf("expected error for malformed report")
	}
}

func TestFilterPartitionsByBaseline(t *testing.T) {
	rep := parseSample(t)
	b := baseline.Baseline{
		Path:   "baseline.xml",
		Status: baseline.Valid,
		LintErrorsPerFile: map[string][]finding.LintError{
			"src/Foo.kt": {
				{Line: 12, Column: 5, RuleID: "rule-x", Status: finding.StatusBaselineIgnored},
			},
		},
	}

	filtered := Filter(rep, b)

	if got := filtered.SuppressedCount(); got != 1 {
		t.Fatalf("expected 1 suppressed, got %d", got)
	}
	if got := filtered.NewCount(); got != 2 {
		t.Fatalf("expected 2 new, got %d", got)
	}
	if len(filtered.Suppressed["src/Foo.kt"]) != 1 {
		t.Errorf("expected baselined finding suppressed despite legacy rule id spelling")
	}
	if len(filtered.New["src/Bar.kt"]) != 1 {
		t.Errorf("expected uncovered file findings reported as new")
	}
}

func TestFilterNonValidBaselineSuppressesNothing(t *testing.T) {
	rep := parseSample(t)

	for _, status := range []baseline.Status{baseline.Disabled, baseline.NotFound, baseline.Invalid} {
		b := baseline.Baseline{Path: "baseline.xml", Status: status}
		filtered := Filter(rep, b)
		if got := filtered.SuppressedCount(); got != 0 {
			t.Errorf("status %s: expected nothing suppressed, got %d", status, got)
		}
		if got := filtered.NewCount(); got != 3 {
			t.Errorf("status %s: expected all 3 findings new, got %d", status, got)
		}
	}
}

func TestToSARIFMarksSuppressions(t *testing.T) {
	rep := parseSample(t)
	b := baseline.Baseline{
		Path:   "baseline.xml",
		Status: baseline.Valid,
		LintErrorsPerFile: map[string][]finding.LintError{
			"src/Foo.kt": {{Line: 12, Column: 5, RuleID: "standard:rule-x"}},
		},
	}

	log := ToSARIF(Filter(rep, b), "baselint")

	if len(log.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(log.Runs))
	}
	results := log.Runs[0].Results
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	suppressed := 0
	for _, r := range results {
		if len(r.Suppressions) > 0 {
			suppressed++
			if r.Level != "note" {
				t.Errorf("suppressed result should be a note, got %s", r.Level)
			}
		} else if r.Level != "error" {
			t.Errorf("new result should be an error, got %s", r.Level)
		}
	}
	if suppressed != 1 {
		t.Errorf("expected 1 suppressed result, got %d", suppressed)
	}
}
