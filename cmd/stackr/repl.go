package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/jcorbin/stackr/internal/config"
	"github.com/jcorbin/stackr/internal/logio"
)

const historyFile = ".stackr_history"

func cmdRepl(log *logio.Logger, cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	trace := fs.Bool("trace", false, "enable trace logging")
	if err := fs.Parse(args); err != nil {
		log.ErrorIf(err)
		return
	}

	e, err := newEngine(log, cfg, &host{args: fs.Args()}, *trace)
	if err != nil {
		log.ErrorIf(err)
		return
	}

	histPath := cfg.HistoryPath()
	if histPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			histPath = filepath.Join(home, historyFile)
		}
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	fmt.Println("Use 'repl-exit' to exit REPL mode.")
	for !e.Exited() {
		line, err := ln.Prompt(cfg.Repl.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			log.ErrorIf(err)
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		evalLine(e, line, os.Stdout, os.Stderr)
	}
}

// evalLine evaluates one line of input, then shows the stack unless the line
// exited. Failures are reported, and the session carries on with its memory
// and stack intact.
func evalLine(e *engine, line string, out, errOut io.Writer) {
	if err := e.Evaluate(line, ""); err != nil {
		fmt.Fprintln(errOut, err)
	}
	if !e.Exited() {
		if err := e.WriteStack(out); err != nil {
			fmt.Fprintln(errOut, err)
		}
	}
}
