// Package baseline loads a persisted baseline of previously-accepted lint
// findings so a linter can suppress known violations while still reporting
// new ones. The loader never fails on file problems: a missing file yields
// NotFound and a corrupt one yields Invalid after the file is removed, so a
// stale baseline cannot crash the host tool.
package baseline

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"baselint/pkg/finding"
)

// Status classifies the outcome of a baseline load.
type Status int

const (
	// Disabled is the zero value: no load was attempted.
	Disabled Status = iota
	// Valid means the file parsed and its findings are available.
	Valid
	// NotFound means no file existed at the path.
	NotFound
	// Invalid means the file existed but could not be parsed. It has been
	// removed so the next lint run regenerates it.
	Invalid
)

func (s Status) String() string {
	switch s {
	case Disabled:
		return "disabled"
	case Valid:
		return "valid"
	case NotFound:
		return "not-found"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Baseline is the immutable result of one load attempt.
type Baseline struct {
	// Path is the file the load was attempted against. Empty only for the
	// zero (Disabled) value.
	Path string
	// Status classifies the load outcome.
	Status Status
	// LintErrorsPerFile maps a relative file path, taken verbatim from the
	// document, to the ordered findings accepted for that file. Non-empty
	// only when Status is Valid.
	LintErrorsPerFile map[string][]finding.LintError
}

// ErrBlankPath is returned by Load when given a blank path, before any
// filesystem access.
var ErrBlankPath = errors.New("baseline: blank path")

// Reporter receives non-fatal diagnostics from the loader. *slog.Logger
// satisfies it.
type Reporter interface {
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Loader performs baseline load attempts and reports non-fatal
// diagnostics through an injected Reporter.
type Loader struct {
	rep Reporter
}

// NewLoader returns a Loader reporting through rep. A nil rep falls back
// to slog.Default().
func NewLoader(rep Reporter) *Loader {
	return &Loader{rep: rep}
}

func (l *Loader) reporter() Reporter {
	if l != nil && l.rep != nil {
		return l.rep
	}
	return slog.Default()
}

// Load performs one load attempt against path and always returns a
// Baseline with a definite status. Parse and delete failures are reported
// through the Reporter, never returned. The only error is ErrBlankPath.
func (l *Loader) Load(path string) (Baseline, error) {
	if strings.TrimSpace(path) == "" {
		return Baseline{}, ErrBlankPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Baseline{Path: path, Status: NotFound}, nil
		}
		// Existing but unreadable counts as corruption.
		return l.invalidate(path, err), nil
	}

	perFile, legacy, err := parseFile(path)
	if err != nil {
		return l.invalidate(path, err), nil
	}

	if legacy > 0 {
		l.reporter().Warn(
			"baseline uses rule ids without a rule set; regenerate it to silence this warning",
			"count", legacy, "path", path)
	}

	return Baseline{Path: path, Status: Valid, LintErrorsPerFile: perFile}, nil
}

// invalidate reports the parse failure, removes the corrupt file so the
// next lint run regenerates it, and degrades to an Invalid baseline. A
// delete failure is reported but does not change the status.
func (l *Loader) invalidate(path string, cause error) Baseline {
	rep := l.reporter()
	rep.Error("baseline could not be parsed, removing it", "path", path, "err", cause.Error())
	if err := os.Remove(path); err != nil {
		rep.Warn("corrupt baseline could not be removed", "path", path, "err", err.Error())
	}
	return Baseline{Path: path, Status: Invalid}
}

func parseFile(path string) (map[string][]finding.LintError, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open baseline: %w", err)
	}
	defer func() { _ = f.Close() }()

	return parse(f)
}

// RelativeRoute converts a path to a slash-normalized path relative to the
// current working directory, for presenting paths uniformly across
// filesystems.
//
// Deprecated: retained for the legacy reporting pipeline; new callers
// should carry relative paths from the start.
func RelativeRoute(path string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return "", fmt.Errorf("relativize %q: %w", path, err)
	}
	return filepath.ToSlash(rel), nil
}
