// Package sarif provides the subset of SARIF 2.1.0 this tool emits,
// including result suppressions for findings covered by a baseline.
package sarif

import (
	"encoding/json"
	"io"
)

// Version is the SARIF schema version.
const Version = "2.1.0"

// SuppressionKindExternal marks a suppression stored outside the source,
// which is what a baseline file is.
const SuppressionKindExternal = "external"

// Log is the top-level SARIF structure.
type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema,omitempty"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single analysis run.
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results,omitempty"`
}

// Tool describes the analysis tool.
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver describes the tool's identity.
type Driver struct {
	Name           string `json:"name"`
	Version        string `json:"version,omitempty"`
	InformationURI string `json:"informationUri,omitempty"`
}

// Result is a single finding. A result carrying a suppression is known to
// the baseline and should not fail the run.
type Result struct {
	RuleID       string        `json:"ruleId"`
	Level        string        `json:"level,omitempty"` // error, warning, note
	Message      Message       `json:"message"`
	Locations    []Location    `json:"locations,omitempty"`
	Suppressions []Suppression `json:"suppressions,omitempty"`
}

// Suppression records why a result is not actionable.
type Suppression struct {
	Kind          string `json:"kind"`
	Justification string `json:"justification,omitempty"`
}

// Message contains the finding's text.
type Message struct {
	Text string `json:"text"`
}

// Location describes where a result was found.
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation describes a file location.
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           *Region          `json:"region,omitempty"`
}

// ArtifactLocation describes a file path.
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region describes a span within a file.
type Region struct {
	StartLine   int `json:"startLine,omitempty"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// NewLog creates a new SARIF log with default values.
func NewLog() *Log {
	return &Log{
		Version: Version,
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Runs:    []Run{},
	}
}

// NewResult builds a result at a file position.
func NewResult(ruleID, level, text, uri string, line, column int) Result {
	return Result{
		RuleID:  ruleID,
		Level:   level,
		Message: Message{Text: text},
		Locations: []Location{{
			PhysicalLocation: PhysicalLocation{
				ArtifactLocation: ArtifactLocation{URI: uri},
				Region:           &Region{StartLine: line, StartColumn: column},
			},
		}},
	}
}

// Suppress marks the result as externally suppressed.
func (r Result) Suppress(justification string) Result {
	r.Suppressions = append(r.Suppressions, Suppression{
		Kind:          SuppressionKindExternal,
		Justification: justification,
	})
	return r
}

// Encoder wraps a JSON encoder with SARIF-friendly defaults.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder creates an indented JSON encoder for SARIF logs.
func NewEncoder(w io.Writer) *Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &Encoder{enc: enc}
}

// Encode writes the SARIF log.
func (e *Encoder) Encode(log *Log) error {
	return e.enc.Encode(log)
}
