package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jcorbin/stackr"
	"github.com/jcorbin/stackr/internal/logio"
)

func cmdFmt(log *logio.Logger, args []string) {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	check := fs.Bool("check", false, "list files whose formatting differs, exit 1 if any")
	write := fs.Bool("w", false, "write result to the source file instead of stdout")
	if err := fs.Parse(args); err != nil {
		log.ErrorIf(err)
		return
	}
	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	// each file gets its own engine, and its own result slot
	formatted := make([]string, len(paths))
	changed := make([]bool, len(paths))
	eg, ctx := errgroup.WithContext(context.Background())
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			out, same, err := formatFile(path)
			if err != nil {
				return err
			}
			formatted[i], changed[i] = out, !same
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.ErrorIf(err)
		return
	}

	for i, path := range paths {
		switch {
		case *check:
			if changed[i] {
				fmt.Println(path)
				log.Errorf("%v: not formatted", path)
			}
		case *write && path != "-":
			if changed[i] {
				log.ErrorIf(os.WriteFile(path, []byte(formatted[i]), 0o644))
			}
		default:
			fmt.Print(formatted[i])
		}
	}
}

func formatFile(path string) (out string, same bool, err error) {
	var src []byte
	if path == "-" {
		src, err = io.ReadAll(os.Stdin)
	} else {
		src, err = os.ReadFile(path)
	}
	if err != nil {
		return "", false, err
	}
	origin := path
	if origin == "-" {
		origin = ""
	}
	out, err = stackr.Format(string(src), origin)
	return out, out == string(src), err
}
