// Command stackr runs, formats, and interactively evaluates stackr code.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jcorbin/stackr"
	"github.com/jcorbin/stackr/internal/config"
	"github.com/jcorbin/stackr/internal/logio"
)

const appName = "stackr"

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}

	log := logio.New(os.Stderr)
	cfg, err := config.FindAndLoad(".")
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(log.ExitCode())
	}

	args := os.Args[2:]
	switch cmd := os.Args[1]; cmd {
	case "run":
		cmdRun(log, cfg, args)
	case "repl":
		cmdRepl(log, cfg, args)
	case "fmt":
		cmdFmt(log, args)
	case "doc":
		cmdDoc(log, cfg, args)
	case "-h", "--help", "help":
		usage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
	os.Exit(log.ExitCode())
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  %[1]s run [-trace] [-mem-limit N] [-timeout D] <file> [--] [args...]
  %[1]s repl [-trace]
  %[1]s fmt [-check|-w] <file>...
  %[1]s doc [word...]

Settings are also read from the nearest %[2]s file.
`, appName, config.FileName)
}

// host is the state that the command's engines carry.
type host struct {
	args []string
}

type engine = stackr.Engine[*host]

var errArgRange = errors.New("argument index out of range")

func newEngine(log *logio.Logger, cfg *config.Config, h *host, trace bool, opts ...stackr.Option) (*engine, error) {
	opts = append([]stackr.Option{stackr.WithOutput(os.Stdout)}, opts...)
	if trace || cfg.Engine.Trace {
		opts = append(opts, stackr.WithLogf(log.Leveledf("TRACE")))
	}
	if lim := cfg.Engine.MemLimit; lim != 0 {
		opts = append(opts, stackr.WithMemLimit(lim))
	}
	if size := cfg.Engine.PageSize; size != 0 {
		opts = append(opts, stackr.WithPageSize(size))
	}
	e := stackr.New(h, opts...)

	for _, def := range []struct {
		name, stackEffect, doc, example string
		op                              stackr.Builtin[*host]
	}{
		{"argc", "-- n", "Pushes the number of script arguments.", "argc", opArgc},
		{"arg", "n -- string", "Pushes the nth script argument, counting from 0.", "0 arg print", opArg},
	} {
		if err := e.RegisterBuiltin(def.name, def.stackEffect, def.doc, def.example, def.op); err != nil {
			return nil, err
		}
	}

	for _, path := range cfg.PreludePaths() {
		if err := evalFile(e, path); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func evalFile(e *engine, path string) error {
	var (
		src []byte
		err error
	)
	if path == "-" {
		src, err = io.ReadAll(os.Stdin)
		path = ""
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	return e.Evaluate(string(src), path)
}

func opArgc(e *engine) error {
	e.PushNumber(float32(len(e.State.args)))
	return nil
}

func opArg(e *engine) error {
	n, err := e.PopNumber()
	if err != nil {
		return err
	}
	i := int(n)
	if i < 0 || i >= len(e.State.args) {
		return e.Errorf(errArgRange, "no argument %v, have %v", i, len(e.State.args))
	}
	e.PushString(e.State.args[i])
	return nil
}
