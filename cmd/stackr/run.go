package main

import (
	"context"
	"flag"

	"github.com/jcorbin/stackr/internal/config"
	"github.com/jcorbin/stackr/internal/logio"
)

func cmdRun(log *logio.Logger, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	trace := fs.Bool("trace", false, "enable trace logging")
	memLimit := fs.Uint("mem-limit", 0, "limit the highest memory address")
	timeout := fs.Duration("timeout", cfg.Engine.Timeout.Duration, "specify a time limit")
	if err := fs.Parse(args); err != nil {
		log.ErrorIf(err)
		return
	}
	if fs.NArg() < 1 {
		log.Errorf("usage: %s run <file> [--] [args...]", appName)
		return
	}
	if *memLimit != 0 {
		cfg.Engine.MemLimit = *memLimit
	}

	file, scriptArgs := fs.Arg(0), fs.Args()[1:]
	if len(scriptArgs) > 0 && scriptArgs[0] == "--" {
		scriptArgs = scriptArgs[1:]
	}

	ctx := context.Background()
	if *timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	// evaluation can not be interrupted, so a timed out run is abandoned
	done := make(chan error, 1)
	go func() {
		e, err := newEngine(log, cfg, &host{args: scriptArgs}, *trace)
		if err == nil {
			err = evalFile(e, file)
		}
		done <- err
	}()
	select {
	case err := <-done:
		log.ErrorIf(err)
	case <-ctx.Done():
		log.Errorf("%v: %v", file, ctx.Err())
	}
}
