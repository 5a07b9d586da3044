package main

import (
	"fmt"
	"os"

	"github.com/jcorbin/stackr/internal/config"
	"github.com/jcorbin/stackr/internal/logio"
)

// cmdDoc prints documentation for the named words, or for every word.
func cmdDoc(log *logio.Logger, cfg *config.Config, args []string) {
	e, err := newEngine(log, cfg, &host{}, false)
	if err != nil {
		log.ErrorIf(err)
		return
	}
	if len(args) == 0 {
		log.ErrorIf(e.WriteDocumentation(os.Stdout))
		return
	}
	for _, name := range args {
		doc, ok := e.Documentation(name)
		if !ok {
			log.Errorf("no documentation for %q", name)
			continue
		}
		fmt.Printf("%v  %v\n\n", name, doc)
	}
}
