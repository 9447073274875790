// Package config reads binary settings from flags with environment fallbacks.
package config

import (
	"flag"
	"fmt"
	"os"
)

// Config holds the settings shared by the chesscore binaries.
type Config struct {
	Addr         string // HTTP listen address
	DBDir        string // badger directory; empty selects the platform data dir
	InMemory     bool   // keep snapshots in memory only
	AllowOrigins string // CORS origins; empty disables CORS
	RequestLog   bool
	CPUProfile   string
}

// Load parses args (without the program name). Environment variables fill in
// any flag left at its zero value.
func Load(name string, args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", "", "HTTP listen address (env CHESSCORE_ADDR, default :3000)")
	fs.StringVar(&cfg.DBDir, "db", "", "snapshot database directory (env CHESSCORE_DB)")
	fs.BoolVar(&cfg.InMemory, "in-memory", false, "keep snapshots in memory only")
	fs.StringVar(&cfg.AllowOrigins, "cors", "", "comma separated CORS origins (env CHESSCORE_CORS)")
	fs.BoolVar(&cfg.RequestLog, "log-requests", true, "log every HTTP request")
	fs.StringVar(&cfg.CPUProfile, "cpuprofile", "", "write cpu profile to file (env CPUPROFILE)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	fallback(&cfg.Addr, "CHESSCORE_ADDR", ":3000")
	fallback(&cfg.DBDir, "CHESSCORE_DB", "")
	fallback(&cfg.AllowOrigins, "CHESSCORE_CORS", "")
	fallback(&cfg.CPUProfile, "CPUPROFILE", "")

	return cfg, nil
}

func fallback(v *string, env, def string) {
	if *v != "" {
		return
	}
	if e := os.Getenv(env); e != "" {
		*v = e
		return
	}
	*v = def
}
