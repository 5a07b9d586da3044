package stackr

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/stackr/internal/mem"
	"github.com/jcorbin/stackr/internal/panicerr"
)

type counterHost struct {
	count int
	seen  []string
}

var errHostRefused = errors.New("host refused")

func newCounterEngine(t *testing.T, opts ...Option) *Engine[*counterHost] {
	e := New(&counterHost{}, opts...)
	require.NoError(t, e.RegisterBuiltin("count", "--", "Counts a call.", "count", func(e *Engine[*counterHost]) error {
		e.State.count++
		return nil
	}))
	require.NoError(t, e.RegisterBuiltin("see", "s --", "Records a string.", `"x" see`, func(e *Engine[*counterHost]) error {
		s, err := e.PopString()
		if err == nil {
			e.State.seen = append(e.State.seen, s)
		}
		return err
	}))
	require.NoError(t, e.RegisterBuiltin("refuse", "--", "Always fails.", "", func(e *Engine[*counterHost]) error {
		return errHostRefused
	}))
	require.NoError(t, e.RegisterBuiltin("refuse-here", "--", "Always fails, located.", "", func(e *Engine[*counterHost]) error {
		return e.Errorf(errHostRefused, "no %v today", "thanks")
	}))
	require.NoError(t, e.RegisterBuiltin("boom", "--", "Panics.", "", func(e *Engine[*counterHost]) error {
		panic("kaboom")
	}))
	return e
}

func TestEngine_hostState(t *testing.T) {
	e := newCounterEngine(t)
	require.NoError(t, e.Evaluate(`count count "a" see`, ""))
	require.NoError(t, e.Evaluate(`: twice "" "" "" count count ; twice "b" see`, ""))
	assert.Equal(t, 4, e.State.count)
	assert.Equal(t, []string{"a", "b"}, e.State.seen)

	doc, ok := e.Documentation("count")
	assert.True(t, ok)
	assert.Equal(t, "\t( -- )\n\tCounts a call.\n\tExample 'count'", doc)
	assert.Contains(t, e.Words(), "twice")
}

func TestEngine_hostErrors(t *testing.T) {
	e := newCounterEngine(t)

	err := e.Evaluate("1\n  refuse", "host.stackr")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errHostRefused), "expected host error, got %v", err)
	assert.Equal(t, "host.stackr:2:3: host refused", err.Error())

	err = e.Evaluate("refuse-here", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errHostRefused), "expected host error, got %v", err)
	assert.Equal(t, "stdin:1:1: no thanks today", err.Error())

	err = e.Evaluate(`1 see`, "")
	assert.True(t, errors.Is(err, ErrExpectedString), "expected string error, got %v", err)
}

func TestEngine_panics(t *testing.T) {
	e := newCounterEngine(t)
	err := e.Evaluate("1 boom 2", "")
	require.Error(t, err)
	assert.True(t, panicerr.IsPanic(err), "expected a panic error, got %v", err)
	assert.Contains(t, err.Error(), "kaboom")

	require.NoError(t, e.Evaluate("3", ""), "expected engine to be usable after a panic")
	assert.Equal(t, []StackValue{NumberValueOf(1), NumberValueOf(3)}, e.Stack())
}

func TestEngine_memLimit(t *testing.T) {
	builtins := uint(len(New(struct{}{}).syms.strings))

	// a takes the next address, and its cell falls past the limit.
	e := New(struct{}{}, WithMemLimit(builtins+1))
	err := e.Evaluate("var a 5 a set", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMemLimit), "expected memory limit error, got %v", err)
	var lim mem.LimitError
	require.True(t, errors.As(err, &lim), "expected a mem.LimitError")
	assert.Equal(t, mem.LimitError{Addr: uint(builtins + 2), Op: "stor"}, lim)

	e = New(struct{}{}, WithMemLimit(builtins+1), WithPageSize(4))
	require.NoError(t, e.Evaluate(`: a "" "" "" 1 ;`, ""))
	require.NoError(t, e.Evaluate("a", ""))
	assert.Equal(t, []StackValue{NumberValueOf(1)}, e.Stack())
}

func TestEngine_memLimitBelowBuiltins(t *testing.T) {
	e := New(struct{}{}, WithMemLimit(1))
	require.NoError(t, e.Evaluate("1 dup + 3 swap", ""), "expected builtins to stay callable")
	assert.Equal(t, []StackValue{NumberValueOf(3), NumberValueOf(2)}, e.Stack())

	err := e.Evaluate("var a", "")
	assert.True(t, errors.Is(err, ErrMemLimit), "expected memory limit error, got %v", err)
}

func TestEngine_reset(t *testing.T) {
	var out strings.Builder
	e := New(struct{}{}, WithOutput(&out))
	require.NoError(t, e.Evaluate(`: one "" "" "" 1 ; one`, ""))
	e.Reset()
	require.NoError(t, e.Evaluate("one print-program", ""))
	assert.Equal(t, "one print-program\n", out.String())
	assert.Equal(t, []StackValue{NumberValueOf(1), NumberValueOf(1)}, e.Stack())
}

func TestEngine_tee(t *testing.T) {
	var a, b strings.Builder
	e := New(struct{}{}, WithOutput(&a), WithTee(&b))
	require.NoError(t, e.Evaluate(`"hi" print`, ""))
	assert.Equal(t, "hi\n", a.String())
	assert.Equal(t, "hi\n", b.String())
}

func TestEngine_trace(t *testing.T) {
	var lines []string
	e := New(struct{}{}, WithLogf(func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}))
	require.NoError(t, e.Evaluate(`: sq "" "" "" dup * ; 3 sq`, "trace.stackr"))
	trace := strings.Join(lines, "\n")
	assert.Contains(t, trace, "trace.stackr:1:1")
	assert.Contains(t, trace, "define sq")
	assert.Contains(t, trace, "call sq")
}

func TestEngine_lookup(t *testing.T) {
	e := New(struct{}{})
	addr, ok := e.Lookup("dup")
	assert.True(t, ok)
	assert.Equal(t, "dup", e.Name(addr))

	_, ok = e.Lookup("nope")
	assert.False(t, ok)

	require.NoError(t, e.Evaluate("var x x", ""))
	val, err := e.Pop()
	require.NoError(t, err)
	assert.True(t, val.IsAddress())
	assert.Equal(t, "@x", e.Name(val.Addr))
	assert.Equal(t, "@UNKNOWN-99999", e.Name(99999))
}

func TestEngine_dump(t *testing.T) {
	e := New(struct{}{})
	require.NoError(t, e.Evaluate("var x 4 x set"+` : sq "" "" "" dup * ; "tab\there" 2`, ""))
	var out strings.Builder
	require.NoError(t, e.Dump(&out))
	dump := out.String()
	assert.Contains(t, dump, "# Engine Dump")
	assert.Contains(t, dump, "# Memory")
	assert.Contains(t, dump, ": dup *")
	assert.Contains(t, dump, `"tab\there"`)
}
