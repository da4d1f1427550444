package prefio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/stablematch/core"
)

// line is one non-blank input line with its physical position.
type line struct {
	num    int
	fields []string
}

// readLines splits r into non-blank lines of whitespace-separated fields.
func readLines(r io.Reader) ([]line, error) {
	var out []line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	num := 0
	for sc.Scan() {
		num++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		out = append(out, line{num: num, fields: fields})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// atoi parses one token, reporting the line on failure.
func atoi(l line, tok string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &InputFormatError{Line: l.num, Msg: fmt.Sprintf("token %q is not an integer", tok), Err: err}
	}
	return v, nil
}

// ReadPreferences parses a preference file and returns a validated instance.
//
// Errors are *InputFormatError values naming the offending line: a missing or
// malformed size line, a line count other than 2n+1, a non-integer token, or
// a list that is not a permutation of 1..n.
func ReadPreferences(r io.Reader) (*core.Instance, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, &InputFormatError{Msg: "read failed", Err: err}
	}
	if len(lines) == 0 {
		return nil, &InputFormatError{Msg: "empty input: missing size line"}
	}

	head := lines[0]
	if len(head.fields) != 1 {
		return nil, &InputFormatError{Line: head.num, Msg: fmt.Sprintf("size line must hold one integer, found %d tokens", len(head.fields))}
	}
	n, err := atoi(head, head.fields[0])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, &InputFormatError{Line: head.num, Msg: "invalid size", Err: core.ErrNegativeSize}
	}
	if want := 2*n + 1; len(lines) != want {
		return nil, &InputFormatError{Msg: fmt.Sprintf("expected %d non-blank lines for n=%d, found %d", want, n, len(lines))}
	}

	hospitals, err := parseLists(lines[1 : n+1])
	if err != nil {
		return nil, err
	}
	students, err := parseLists(lines[n+1:])
	if err != nil {
		return nil, err
	}

	inst, err := core.NewInstance(hospitals, students)
	if err != nil {
		var pe *core.PreferenceError
		if errors.As(err, &pe) {
			row := int(pe.Owner)
			if pe.Side == core.Students {
				row += n
			}
			return nil, &InputFormatError{Line: lines[1+row].num, Msg: "invalid preference list", Err: err}
		}
		return nil, &InputFormatError{Msg: "invalid preferences", Err: err}
	}

	return inst, nil
}

// parseLists converts 1-based rows into zero-based preference lists.
func parseLists(rows []line) ([]core.PreferenceList, error) {
	lists := make([]core.PreferenceList, len(rows))
	for i, l := range rows {
		list := make(core.PreferenceList, len(l.fields))
		for j, tok := range l.fields {
			v, err := atoi(l, tok)
			if err != nil {
				return nil, err
			}
			list[j] = core.ID(v - 1)
		}
		lists[i] = list
	}

	return lists, nil
}

// LoadPreferences opens path (see Open) and parses it with ReadPreferences.
// Format errors carry the path.
func LoadPreferences(path string) (*core.Instance, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := ReadPreferences(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	return inst, nil
}

// WritePreferences writes inst in the preference file format (1-based).
func WritePreferences(w io.Writer, inst *core.Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, inst.N())
	for _, side := range [][]core.PreferenceList{inst.HospitalLists(), inst.StudentLists()} {
		for _, list := range side {
			writeList(bw, list)
		}
	}

	return bw.Flush()
}

// writeList writes one list as 1-based, space-separated numbers.
func writeList(w *bufio.Writer, list core.PreferenceList) {
	for i, id := range list {
		if i > 0 {
			_ = w.WriteByte(' ')
		}
		_, _ = w.WriteString(strconv.Itoa(id.Ordinal()))
	}
	_ = w.WriteByte('\n')
}

// withPath stamps path onto an *InputFormatError.
func withPath(err error, path string) error {
	var ife *InputFormatError
	if errors.As(err, &ife) && ife.Path == "" {
		ife.Path = path
	}
	return err
}
