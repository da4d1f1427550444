package prefio_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/core"
	"github.com/katalvlaran/stablematch/prefio"
)

const threeByThree = `3
1 2 3
2 1 3
1 2 3

2 1 3
1 2 3
1 2 3
`

func TestReadPreferences_Valid(t *testing.T) {
	inst, err := prefio.ReadPreferences(strings.NewReader(threeByThree))
	require.NoError(t, err)
	require.Equal(t, 3, inst.N())
	assert.Equal(t, core.PreferenceList{1, 0, 2}, inst.Hospital(1))
	assert.Equal(t, core.PreferenceList{1, 0, 2}, inst.Student(0))
}

func TestReadPreferences_Zero(t *testing.T) {
	inst, err := prefio.ReadPreferences(strings.NewReader("0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, inst.N())
}

func TestReadPreferences_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
		cause error
	}{
		{"Empty", "", 0, nil},
		{"BlankOnly", "\n\n  \n", 0, nil},
		{"SizeNotInteger", "three\n", 1, strconv.ErrSyntax},
		{"SizeTwoTokens", "2 2\n", 1, nil},
		{"NegativeSize", "\n-1\n", 2, core.ErrNegativeSize},
		{"TooFewLines", "2\n1 2\n2 1\n1 2\n", 0, nil},
		{"TooManyLines", "1\n1\n1\n1\n", 0, nil},
		{"BadToken", "2\n1 2\n2 x\n1 2\n1 2\n", 3, strconv.ErrSyntax},
		{"ShortList", "2\n1 2\n2 1\n1\n1 2\n", 4, core.ErrListLength},
		{"OutOfRange", "2\n1 3\n2 1\n1 2\n1 2\n", 2, core.ErrIDOutOfRange},
		{"Duplicate", "2\n1 2\n2 1\n1 2\n\n2 2\n", 6, core.ErrDuplicateID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := prefio.ReadPreferences(strings.NewReader(tc.input))
			require.Error(t, err)
			var ife *prefio.InputFormatError
			require.ErrorAs(t, err, &ife)
			assert.Equal(t, tc.line, ife.Line)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

func TestReadMatching(t *testing.T) {
	pairs, err := prefio.ReadMatching(strings.NewReader("1 2\n\n2 1\n3 0\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Pair{
		{Hospital: 0, Student: 1},
		{Hospital: 1, Student: 0},
		{Hospital: 2, Student: core.None},
	}, pairs)

	_, err = prefio.ReadMatching(strings.NewReader("1 2\n2\n"))
	var ife *prefio.InputFormatError
	require.ErrorAs(t, err, &ife)
	assert.Equal(t, 2, ife.Line)

	_, err = prefio.ReadMatching(strings.NewReader("1 b\n"))
	require.ErrorAs(t, err, &ife)
	assert.Equal(t, 1, ife.Line)
}

func TestWriteRoundTrip(t *testing.T) {
	inst, err := core.RandomInstance(5, 7)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, prefio.WritePreferences(&buf, inst))
	back, err := prefio.ReadPreferences(&buf)
	require.NoError(t, err)
	assert.Equal(t, inst.HospitalLists(), back.HospitalLists())
	assert.Equal(t, inst.StudentLists(), back.StudentLists())

	m := core.NewMatching(2)
	require.NoError(t, m.Assign(0, 1))
	require.NoError(t, m.Assign(1, 0))
	buf.Reset()
	require.NoError(t, prefio.WriteMatching(&buf, m))
	assert.Equal(t, "1 2\n2 1\n", buf.String())
}

func TestLoad_GzipAndPath(t *testing.T) {
	dir := t.TempDir()
	inst, err := core.RandomInstance(4, 3)
	require.NoError(t, err)

	path := filepath.Join(dir, "prefs.txt.gz")
	w, err := prefio.Create(path)
	require.NoError(t, err)
	require.NoError(t, prefio.WritePreferences(w, inst))
	require.NoError(t, w.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x1f, 0x8b}, raw[:2], "gzip magic")

	back, err := prefio.LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, inst.HospitalLists(), back.HospitalLists())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1\n2\n1\n"), 0o644))
	_, err = prefio.LoadPreferences(bad)
	var ife *prefio.InputFormatError
	require.ErrorAs(t, err, &ife)
	assert.Equal(t, bad, ife.Path)
	assert.Contains(t, err.Error(), bad+": line 2")

	_, err = prefio.LoadMatching(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	require.NoError(t, os.Mkdir(dataDir, 0o755))
	inData := filepath.Join(dataDir, "m.txt")
	require.NoError(t, os.WriteFile(inData, []byte("1 1\n"), 0o644))

	got, err := prefio.Resolve(inData, "")
	require.NoError(t, err)
	assert.Equal(t, inData, got)

	t.Chdir(dir)
	got, err = prefio.Resolve("m.txt", "data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", "m.txt"), got)

	_, err = prefio.Resolve("nope.txt", "data")
	var nf *prefio.FileNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, []string{"nope.txt", filepath.Join("data", "nope.txt")}, nf.Tried)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = prefio.Resolve("data", "")
	assert.Error(t, err, "directories do not resolve")
}
