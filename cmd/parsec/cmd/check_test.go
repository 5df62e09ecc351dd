package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCommandReportsTokenCount(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	assert.NoError(t, os.WriteFile(path, []byte("hello   world\nfoo"), 0o644))

	root := Root()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"check", path})

	err := root.Execute()
	assert.NoError(t, err)
}

func TestCheckCommandWithEoiAcceptsFullyTokenizedInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	assert.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	root := Root()
	root.SetArgs([]string{"check", "--eoi", path})

	err := root.Execute()
	assert.NoError(t, err)
}

func TestCheckCommandMissingFileErrors(t *testing.T) {
	t.Parallel()

	root := Root()
	root.SetArgs([]string{"check", filepath.Join(t.TempDir(), "missing.txt")})

	err := root.Execute()
	assert.Error(t, err)
}
