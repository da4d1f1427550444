// Package report renders matcher and verifier results for the command-line
// tools in text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/galeshapley"
	"github.com/katalvlaran/stablematch/internal/config"
	"github.com/katalvlaran/stablematch/prefio"
	"github.com/katalvlaran/stablematch/stability"
)

// Header is the first line of a text verification report.
const Header = "STABLE MATCHING CHECK (Validity and Stability):"

// Pair is a 1-based hospital/student pair.
type Pair struct {
	Hospital int `json:"hospital" yaml:"hospital"`
	Student  int `json:"student" yaml:"student"`
}

// Violation is a machine-readable validity failure.
type Violation struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

// Verification is the document form of a verifier run.
type Verification struct {
	Preferences   string      `json:"preferences" yaml:"preferences"`
	Matching      string      `json:"matching" yaml:"matching"`
	N             int         `json:"n" yaml:"n"`
	Valid         bool        `json:"valid" yaml:"valid"`
	Stable        bool        `json:"stable" yaml:"stable"`
	Verdict       string      `json:"verdict" yaml:"verdict"`
	Violations    []Violation `json:"violations" yaml:"violations"`
	BlockingPairs []Pair      `json:"blockingPairs" yaml:"blocking_pairs"`
}

// NewVerification converts rep into its document form.
func NewVerification(prefPath, matchPath string, rep *stability.Report) Verification {
	doc := Verification{
		Preferences:   prefPath,
		Matching:      matchPath,
		N:             rep.N,
		Valid:         rep.Valid,
		Stable:        rep.Stable,
		Verdict:       rep.Verdict(),
		Violations:    make([]Violation, 0, len(rep.Violations)),
		BlockingPairs: pairs(rep.BlockingPairs),
	}
	for _, v := range rep.Violations {
		doc.Violations = append(doc.Violations, Violation{Kind: v.Kind.String(), Message: v.Error()})
	}

	return doc
}

// WriteVerification renders a verifier report in the given output format.
func WriteVerification(w io.Writer, format, prefPath, matchPath string, rep *stability.Report) error {
	if format != config.OutputText {
		return encode(w, format, NewVerification(prefPath, matchPath, rep))
	}

	lines := []string{
		"",
		Header,
		"",
		"Preferences file: " + prefPath,
		"Matching file: " + matchPath,
		"",
	}
	lines = append(lines, rep.Messages()...)
	lines = append(lines, "Therefore matching is "+rep.Verdict(), "")

	return writeLines(w, lines)
}

// Assignment is the document form of a matcher run.
type Assignment struct {
	N         int    `json:"n" yaml:"n"`
	Proposals int    `json:"proposals" yaml:"proposals"`
	Pairs     []Pair `json:"pairs" yaml:"pairs"`
}

// WriteAssignment renders an engine result. Text output is the matching file
// format.
func WriteAssignment(w io.Writer, format string, res *galeshapley.Result) error {
	if format == config.OutputText {
		return prefio.WriteMatching(w, res.Matching)
	}

	return encode(w, format, Assignment{
		N:         res.Matching.Len(),
		Proposals: res.Proposals,
		Pairs:     pairs(res.Matching.Pairs()),
	})
}

// Trace returns a proposal hook that writes one trace line per event to w.
// Write errors are dropped; the hook has no way to stop the engine.
func Trace(w io.Writer) func(galeshapley.Event) {
	return func(e galeshapley.Event) {
		_, _ = fmt.Fprintln(w, e)
	}
}

func pairs(ps []core.Pair) []Pair {
	out := make([]Pair, 0, len(ps))
	for _, p := range ps {
		out = append(out, Pair{Hospital: p.Hospital.Ordinal(), Student: p.Student.Ordinal()})
	}
	return out
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("report: unknown output format %q", format)
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
