package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/stackr"
	"github.com/jcorbin/stackr/internal/config"
	"github.com/jcorbin/stackr/internal/logio"
)

func testEngine(t *testing.T, cfg *config.Config, args ...string) (*engine, *strings.Builder) {
	var out, logs strings.Builder
	e, err := newEngine(logio.New(&logs), cfg, &host{args: args}, false, stackr.WithOutput(&out))
	require.NoError(t, err)
	return e, &out
}

func TestArgs(t *testing.T) {
	e, out := testEngine(t, config.Default(), "alpha", "beta")
	require.NoError(t, e.Evaluate("argc print 1 arg print 0 arg print", ""))
	assert.Equal(t, "2\nbeta\nalpha\n", out.String())

	err := e.Evaluate("2 arg", "")
	assert.True(t, errors.Is(err, errArgRange), "expected range error, got %v", err)
	assert.Equal(t, "stdin:1:3: no argument 2, have 2", err.Error())
}

func TestPrelude(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prelude.stackr"),
		[]byte(`: double "doubles a number" "n -- n" "2 double" 2 * ;`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName),
		[]byte("[engine]\nprelude = [\"prelude.stackr\"]\n"), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	e, out := testEngine(t, cfg)
	require.NoError(t, e.Evaluate("21 double print", ""))
	assert.Equal(t, "42\n", out.String())

	doc, ok := e.Documentation("double")
	assert.True(t, ok)
	assert.Contains(t, doc, "doubles a number")
}

func TestFormatFile(t *testing.T) {
	dir := t.TempDir()
	messy := filepath.Join(dir, "messy.stackr")
	tidy := filepath.Join(dir, "tidy.stackr")
	require.NoError(t, os.WriteFile(messy, []byte("1   2\n\n+"), 0o644))
	require.NoError(t, os.WriteFile(tidy, []byte("1 2 +\n"), 0o644))

	out, same, err := formatFile(messy)
	require.NoError(t, err)
	assert.Equal(t, "1 2 +\n", out)
	assert.False(t, same)

	out, same, err = formatFile(tidy)
	require.NoError(t, err)
	assert.Equal(t, "1 2 +\n", out)
	assert.True(t, same)

	_, _, err = formatFile(filepath.Join(dir, "missing.stackr"))
	assert.Error(t, err)
}

func TestEvalLine(t *testing.T) {
	e, _ := testEngine(t, config.Default())
	var out, errOut strings.Builder

	evalLine(e, "1 2 +", &out, &errOut)
	assert.Equal(t, "[ 3 ]\n", out.String())
	assert.Empty(t, errOut.String())

	// an open quote stays open across lines, and only quotes what was typed
	out.Reset()
	evalLine(e, "[ a", &out, &errOut)
	assert.Equal(t, "[ 3 a ]\n", out.String())
	out.Reset()
	evalLine(e, "b ]", &out, &errOut)
	assert.Equal(t, "[ 3 a b ]\n", out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	evalLine(e, "drop drop drop drop", &out, &errOut)
	assert.Equal(t, "[ ]\n", out.String())
	assert.Contains(t, errOut.String(), "Stack is empty")

	out.Reset()
	errOut.Reset()
	evalLine(e, "exit", &out, &errOut)
	assert.Empty(t, out.String())
	assert.True(t, e.Exited())
}
