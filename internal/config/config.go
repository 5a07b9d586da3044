// Package config loads the optional stackr.toml file read by the stackr
// command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file searched for by FindAndLoad.
const FileName = "stackr.toml"

// Config represents a stackr.toml file.
type Config struct {
	Engine Engine `toml:"engine"`
	Repl   Repl   `toml:"repl"`

	// Dir is the directory containing the stackr.toml file (set at load time).
	Dir string `toml:"-"`
}

// Engine holds settings applied to every engine the command creates.
type Engine struct {
	MemLimit uint     `toml:"mem-limit"`
	PageSize uint     `toml:"page-size"`
	Trace    bool     `toml:"trace"`
	Timeout  Duration `toml:"timeout"`

	// Prelude lists source files evaluated before any script, relative to Dir.
	Prelude []string `toml:"prelude"`
}

// Repl holds settings for the interactive loop.
type Repl struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
}

// Duration is a time.Duration written as a string like "1m30s".
type Duration struct{ time.Duration }

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Repl: Repl{Prompt: "> "},
	}
}

// Load parses the stackr.toml file in the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("unknown key %q in %s", undec[0].String(), path)
	}

	cfg.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	return cfg, nil
}

// FindAndLoad walks up from startDir to find a stackr.toml file, returning
// Default() if there is none.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// PreludePaths returns the prelude files as absolute paths.
func (cfg *Config) PreludePaths() []string {
	paths := make([]string, len(cfg.Engine.Prelude))
	for i, p := range cfg.Engine.Prelude {
		if filepath.IsAbs(p) || cfg.Dir == "" {
			paths[i] = p
		} else {
			paths[i] = filepath.Join(cfg.Dir, p)
		}
	}
	return paths
}

// HistoryPath returns where the repl keeps its history, or "" to keep none.
func (cfg *Config) HistoryPath() string {
	switch p := cfg.Repl.History; {
	case p == "" || filepath.IsAbs(p):
		return p
	case cfg.Dir != "":
		return filepath.Join(cfg.Dir, p)
	default:
		return p
	}
}
