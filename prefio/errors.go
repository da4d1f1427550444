package prefio

import (
	"fmt"
	"io/fs"
	"strings"
)

// InputFormatError reports malformed file content.
//
// Line is the 1-based physical line number (blank lines counted), or 0 when
// the problem concerns the file as a whole.
type InputFormatError struct {
	Path string
	Line int
	Msg  string
	Err  error
}

// Error implements error.
func (e *InputFormatError) Error() string {
	var b strings.Builder
	b.WriteString("prefio: ")
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap exposes the underlying cause (e.g. a core sentinel or strconv error).
func (e *InputFormatError) Unwrap() error { return e.Err }

// FileNotFoundError reports a path that could not be resolved.
type FileNotFoundError struct {
	Path  string
	Tried []string
}

// Error implements error.
func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("prefio: file not found: %s (tried %s)", e.Path, strings.Join(e.Tried, ", "))
}

// Unwrap makes errors.Is(err, fs.ErrNotExist) hold.
func (e *FileNotFoundError) Unwrap() error { return fs.ErrNotExist }
