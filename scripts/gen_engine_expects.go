package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const builderType = "engineTestCase"

// wrapper describes one free function to generate around a builder method.
type wrapper struct {
	Prefix string // "expect" or "with"
	What   string // the rest of the method name
	Params string // as declared, e.g. "line, col int"
	Args   string // as passed on, e.g. "line, col"
}

var wrapperFile = template.Must(template.New("wrappers").Parse(`package stackr

// @generated from {{ .Source }}
{{ if .Generate }}
//go:generate go run scripts/gen_engine_expects.go -- {{ .Generate }}
{{ end }}
{{- range .Wrappers }}
func {{ .Prefix }}Engine{{ .What }}({{ .Params }}) func({{ $.Type }}) {{ $.Type }} {
	return func(et {{ $.Type }}) {{ $.Type }} {
		return et.{{ .Prefix }}{{ .What }}({{ .Args }})
	}
}
{{ end }}`))

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		log.Fatalln("usage: gen_engine_expects SOURCE [DEST]")
	}

	code, err := generate(args[0], args)
	if err == nil {
		if len(args) < 2 {
			_, err = os.Stdout.Write(code)
		} else {
			err = os.WriteFile(args[1], code, 0o644)
		}
	}
	if err != nil {
		log.Fatalln(err)
	}
}

// generate renders the wrappers for the builder methods declared in src; the
// go:generate line is only written when args names a destination as well.
func generate(src string, args []string) ([]byte, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, src, nil, 0)
	if err != nil {
		return nil, err
	}
	wraps, err := builderWrappers(fset, file)
	if err != nil {
		return nil, err
	}

	data := struct {
		Source   string
		Generate string
		Type     string
		Wrappers []wrapper
	}{
		Source:   filepath.Base(src),
		Type:     builderType,
		Wrappers: wraps,
	}
	if len(args) >= 2 {
		data.Generate = strings.Join(args, " ")
	}

	var buf bytes.Buffer
	if err := wrapperFile.Execute(&buf, data); err != nil {
		return nil, err
	}
	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return code, nil
}

// builderWrappers finds every expect or with method of the builder type that
// takes arguments and returns the builder, so that sets of them may be shared
// through engineTestCase.apply.
func builderWrappers(fset *token.FileSet, file *ast.File) (wraps []wrapper, _ error) {
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || !isBuilder(fn) {
			continue
		}
		name := fn.Name.Name
		prefix := "with"
		if strings.HasPrefix(name, "expect") {
			prefix = "expect"
		} else if !strings.HasPrefix(name, "with") {
			continue
		}

		var params, args []string
		for _, field := range fn.Type.Params.List {
			var names []string
			for _, id := range field.Names {
				names = append(names, id.Name)
			}
			typ, err := nodeString(fset, field.Type)
			if err != nil {
				return nil, err
			}
			params = append(params, strings.Join(names, ", ")+" "+typ)
			if _, variadic := field.Type.(*ast.Ellipsis); variadic {
				names[len(names)-1] += "..."
			}
			args = append(args, names...)
		}

		wraps = append(wraps, wrapper{
			Prefix: prefix,
			What:   strings.TrimPrefix(name, prefix),
			Params: strings.Join(params, ", "),
			Args:   strings.Join(args, ", "),
		})
	}
	return wraps, nil
}

func isBuilder(fn *ast.FuncDecl) bool {
	if fn.Recv == nil || len(fn.Recv.List) != 1 || !isIdent(fn.Recv.List[0].Type, builderType) {
		return false
	}
	res := fn.Type.Results
	if res == nil || len(res.List) != 1 || !isIdent(res.List[0].Type, builderType) {
		return false
	}
	params := fn.Type.Params.List
	return len(params) > 0 && len(params[0].Names) > 0
}

func isIdent(expr ast.Expr, name string) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == name
}

func nodeString(fset *token.FileSet, node ast.Node) (string, error) {
	var sb strings.Builder
	err := printer.Fprint(&sb, fset, node)
	return sb.String(), err
}
