package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hailam/chesscore/internal/config"
	"github.com/hailam/chesscore/internal/server"
	"github.com/hailam/chesscore/internal/service"
	"github.com/hailam/chesscore/internal/storage"
)

func main() {
	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.OpenAt(cfg.DBDir, cfg.InMemory)
	if err != nil {
		log.Fatal("could not open snapshot store: ", err)
	}
	defer store.Close()

	app := server.New(service.NewMoveService(store), server.Config{
		AllowOrigins: cfg.AllowOrigins,
		RequestLog:   cfg.RequestLog,
	})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Printf("Shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("Listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Printf("listen: %v", err)
	}
}
