package main

import (
	"go/parser"
	"go/token"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_upToDate(t *testing.T) {
	code, err := generate("../engine_test.go", []string{"engine_test.go", "engine_expects_test.go"})
	require.NoError(t, err)
	have, err := os.ReadFile("../engine_expects_test.go")
	require.NoError(t, err)
	assert.Equal(t, string(have), string(code), "engine_expects_test.go is stale, run go generate")
}

func TestBuilderWrappers(t *testing.T) {
	const src = `package stackr

type engineTestCase struct{}

func (et engineTestCase) withThings(a, b int, rest ...string) engineTestCase { return et }
func (et engineTestCase) expectNothing() engineTestCase                       { return et }
func (et engineTestCase) expectFlag(on bool) engineTestCase                   { return et }
func (et engineTestCase) apply(fns ...func(engineTestCase) engineTestCase) engineTestCase { return et }
func (et engineTestCase) withCount(n int) int                                 { return n }
func withFree(n int) engineTestCase                                           { return engineTestCase{} }
`
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "builders.go", src, 0)
	require.NoError(t, err)

	wraps, err := builderWrappers(fset, file)
	require.NoError(t, err)
	assert.Equal(t, []wrapper{
		{Prefix: "with", What: "Things", Params: "a, b int, rest ...string", Args: "a, b, rest..."},
		{Prefix: "expect", What: "Flag", Params: "on bool", Args: "on"},
	}, wraps)
}
