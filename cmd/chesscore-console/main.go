package main

import (
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chesscore/internal/config"
	"github.com/hailam/chesscore/internal/console"
	"github.com/hailam/chesscore/internal/service"
	"github.com/hailam/chesscore/internal/storage"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	// Start CPU profiling if requested (via flag or environment variable)
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", cfg.CPUProfile)
	}

	store, err := storage.OpenAt(cfg.DBDir, cfg.InMemory)
	if err != nil {
		log.Fatal("could not open snapshot store: ", err)
	}
	defer store.Close()

	c := console.New(os.Stdin, os.Stdout, service.NewMoveService(store))
	if err := c.Run(); err != nil {
		log.Printf("console: %v", err)
	}
}
