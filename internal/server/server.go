// Package server exposes the move service over HTTP and WebSocket.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/hailam/chesscore/internal/service"
	"github.com/hailam/chesscore/internal/storage"
)

// Config holds the HTTP layer settings.
type Config struct {
	AllowOrigins string
	RequestLog   bool
}

// New builds the fiber application with every route registered.
func New(svc *service.MoveService, cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "chesscore",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	if cfg.RequestLog {
		app.Use(logger.New())
	}
	if cfg.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET, POST, DELETE, OPTIONS",
		}))
	}

	h := NewMoveController(svc)
	wsc := NewWebSocketController(svc)

	api := app.Group("/api")
	api.Get("/health", h.Health)
	api.Post("/moves", h.Moves)
	api.Post("/verify", h.Verify)

	snapshots := api.Group("/snapshots")
	snapshots.Post("/", h.CreateSnapshot)
	snapshots.Get("/", h.ListSnapshots)
	snapshots.Get("/:id", h.GetSnapshot)
	snapshots.Get("/:id/moves", h.SnapshotMoves)
	snapshots.Delete("/:id", h.DeleteSnapshot)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws/moves", websocket.New(wsc.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	return app
}

// statusFor maps service and storage errors onto HTTP status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, service.ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, storage.ErrSnapshotNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
