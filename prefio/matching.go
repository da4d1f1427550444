package prefio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/stablematch/core"
)

// ReadMatching parses a matching file into zero-based pairs, in file order.
//
// Every non-blank line must hold exactly two integers. Values are not range
// checked: a "0" or an ID above n becomes an out-of-range core.ID for the
// verifier to report.
func ReadMatching(r io.Reader) ([]core.Pair, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, &InputFormatError{Msg: "read failed", Err: err}
	}

	pairs := make([]core.Pair, 0, len(lines))
	for _, l := range lines {
		if len(l.fields) != 2 {
			return nil, &InputFormatError{Line: l.num, Msg: fmt.Sprintf("expected \"hospital student\", found %d tokens", len(l.fields))}
		}
		h, err := atoi(l, l.fields[0])
		if err != nil {
			return nil, err
		}
		s, err := atoi(l, l.fields[1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, core.Pair{Hospital: core.ID(h - 1), Student: core.ID(s - 1)})
	}

	return pairs, nil
}

// LoadMatching opens path (see Open) and parses it with ReadMatching.
func LoadMatching(path string) ([]core.Pair, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, err := ReadMatching(f)
	if err != nil {
		return nil, withPath(err, path)
	}
	return pairs, nil
}

// WriteMatching writes one "hospital student" line per hospital, 1-based and
// ordered by hospital.
func WriteMatching(w io.Writer, m *core.Matching) error {
	bw := bufio.NewWriter(w)
	for _, p := range m.Pairs() {
		if _, err := fmt.Fprintln(bw, p); err != nil {
			return err
		}
	}

	return bw.Flush()
}
