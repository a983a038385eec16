// Package finding defines the lint finding record shared by the baseline
// loader and the report filter.
package finding

import "strings"

// RuleSetDelimiter separates a rule set namespace from the rule name.
const RuleSetDelimiter = ":"

// StandardRuleSet is the namespace assumed for legacy rule ids that carry
// no explicit prefix.
const StandardRuleSet = "standard"

// Status marks where a finding came from.
type Status string

const (
	// StatusDetected marks a finding produced by a live lint run.
	StatusDetected Status = "detected"
	// StatusBaselineIgnored marks a finding sourced from the baseline file.
	StatusBaselineIgnored Status = "ignored-by-baseline"
)

// LintError is a single lint violation at a 1-based position. Detail is
// empty for baseline-sourced records because the baseline format does not
// persist it.
type LintError struct {
	Line   int
	Column int
	RuleID string
	Detail string
	Status Status
}

// NormalizeRuleID ensures a rule id carries a rule set prefix. Legacy
// baseline files persisted bare rule names; those belong to the standard
// rule set. Idempotent.
func NormalizeRuleID(ruleID string) string {
	if strings.Contains(ruleID, RuleSetDelimiter) {
		return ruleID
	}
	return StandardRuleSet + RuleSetDelimiter + ruleID
}

// sameViolation reports whether two records describe the same violation.
// Detail is excluded from the comparison: baseline-sourced records never
// carry it. Rule ids are normalized on both sides.
func sameViolation(a, b LintError) bool {
	return a.Line == b.Line &&
		a.Column == b.Column &&
		NormalizeRuleID(a.RuleID) == NormalizeRuleID(b.RuleID)
}

// ContainsMatch reports whether any element of errs describes the same
// violation as candidate.
func ContainsMatch(errs []LintError, candidate LintError) bool {
	for _, e := range errs {
		if sameViolation(e, candidate) {
			return true
		}
	}
	return false
}

// ExcludesMatch is the negation of ContainsMatch, named so call sites in
// the reporting path read as intent.
func ExcludesMatch(errs []LintError, candidate LintError) bool {
	return !ContainsMatch(errs, candidate)
}
