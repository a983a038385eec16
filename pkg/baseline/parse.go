package baseline

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"baselint/pkg/finding"
)

// document mirrors the on-disk baseline structure. The root element name
// is not part of the contract, so no XMLName is pinned.
type document struct {
	Files []fileElement `xml:"file"`
}

type fileElement struct {
	Name   string         `xml:"name,attr"`
	Errors []errorElement `xml:"error"`
}

// errorElement keeps line and column as strings so a non-numeric value
// surfaces as a parse failure with the offending text.
type errorElement struct {
	Line   string `xml:"line,attr"`
	Column string `xml:"column,attr"`
	Source string `xml:"source,attr"`
}

// parse decodes one baseline document into findings keyed by relative file
// path, plus a count of legacy rule references (ids that needed a rule set
// prefix inserted) for the caller's advisory. Any structural or numeric
// failure fails the whole parse.
func parse(r io.Reader) (map[string][]finding.LintError, int, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, 0, fmt.Errorf("decode baseline document: %w", err)
	}

	perFile := make(map[string][]finding.LintError, len(doc.Files))
	legacy := 0
	for _, file := range doc.Files {
		errs := perFile[file.Name]
		for _, e := range file.Errors {
			line, err := strconv.Atoi(e.Line)
			if err != nil {
				return nil, 0, fmt.Errorf("file %q: non-numeric line %q", file.Name, e.Line)
			}
			column, err := strconv.Atoi(e.Column)
			if err != nil {
				return nil, 0, fmt.Errorf("file %q: non-numeric column %q", file.Name, e.Column)
			}
			ruleID := finding.NormalizeRuleID(e.Source)
			if ruleID != e.Source {
				legacy++
			}
			errs = append(errs, finding.LintError{
				Line:   line,
				Column: column,
				RuleID: ruleID,
				Status: finding.StatusBaselineIgnored,
			})
		}
		// Assign even when the file element carries no errors so the key
		// set mirrors the document's file elements.
		perFile[file.Name] = errs
	}
	return perFile, legacy, nil
}
