package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const contested = "2\n1 2\n1 2\n1 2\n1 2\n"

// setup isolates config lookup and writes a preference file under dir/data.
func setup(t *testing.T, prefs string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "prefs.txt"), []byte(prefs), 0o644))
	return dir
}

func TestRun_TraceAndMatching(t *testing.T) {
	setup(t, contested)

	var stdout, stderr bytes.Buffer
	code := run([]string{"prefs.txt"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t,
		"Hospital 1 proposes to Student 1. Student's current match: 1\n"+
			"Hospital 2 proposes to Student 1. Student's current match: 1\n"+
			"Hospital 2 proposes to Student 2. Student's current match: 2\n"+
			"1 1\n2 2\n",
		stdout.String())
	assert.Contains(t, stderr.String(), "matching complete")
}

func TestRun_NoTraceVerify(t *testing.T) {
	setup(t, contested)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--trace=false", "--verify", "--queue", "lifo", "data/prefs.txt"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "1 1\n2 2\n", stdout.String())
	assert.Contains(t, stderr.String(), "self-check passed")
}

func TestRun_JSON(t *testing.T) {
	setup(t, contested)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--output", "json", "--log-level", "error", "prefs.txt"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var doc struct {
		N         int `json:"n"`
		Proposals int `json:"proposals"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc), "trace must not precede JSON output")
	assert.Equal(t, 2, doc.N)
	assert.Equal(t, 3, doc.Proposals)
	assert.Empty(t, stderr.String())
}

func TestRun_Failures(t *testing.T) {
	setup(t, "2\n1 2\n1 1\n1 2\n1 2\n")

	cases := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"MissingArgument", nil, "Usage:"},
		{"ExtraArgument", []string{"a", "b"}, "Usage:"},
		{"MissingFile", []string{"absent.txt"}, "file not found"},
		{"BadPreferences", []string{"prefs.txt"}, "line 3"},
		{"BadQueue", []string{"--queue", "stack", "prefs.txt"}, "unknown queue discipline"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 1, run(tc.args, &stdout, &stderr))
			assert.Contains(t, stderr.String(), tc.stderr)
			assert.Empty(t, stdout.String())
		})
	}
}
