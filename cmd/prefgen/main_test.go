package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stablematch/prefio"
)

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestRun_Deterministic(t *testing.T) {
	isolate(t)

	var a, b, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"6", "--seed", "42"}, &a, &stderr), stderr.String())
	require.Equal(t, 0, run([]string{"6", "--seed", "42"}, &b, &stderr), stderr.String())
	assert.Equal(t, a.String(), b.String())

	inst, err := prefio.ReadPreferences(&a)
	require.NoError(t, err)
	assert.Equal(t, 6, inst.N())
}

func TestRun_GzipOut(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "p.txt.gz")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"4", "-o", path}, &stdout, &stderr), stderr.String())
	assert.Empty(t, stdout.String())

	inst, err := prefio.LoadPreferences(path)
	require.NoError(t, err)
	assert.Equal(t, 4, inst.N())
}

func TestRun_BadSize(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{nil, {"-1"}, {"x"}} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 1, run(args, &stdout, &stderr), args)
		assert.Contains(t, stderr.String(), "Error:")
	}
}
