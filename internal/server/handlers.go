package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/hailam/chesscore/internal/service"
)

// MovesRequest is the body of POST /api/moves and POST /api/verify.
type MovesRequest struct {
	FEN    string `json:"fen"`
	Square string `json:"square,omitempty"`
}

// SnapshotRequest is the body of POST /api/snapshots.
type SnapshotRequest struct {
	FEN   string `json:"fen"`
	Label string `json:"label,omitempty"`
}

// MoveController serves the REST routes.
type MoveController struct {
	svc *service.MoveService
}

// NewMoveController creates a controller backed by svc.
func NewMoveController(svc *service.MoveService) *MoveController {
	return &MoveController{svc: svc}
}

// Health answers GET /api/health.
func (mc *MoveController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Moves answers POST /api/moves.
func (mc *MoveController) Moves(c *fiber.Ctx) error {
	var req MovesRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %v", service.ErrBadRequest, err)
	}
	report, err := mc.svc.Moves(req.FEN, req.Square)
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// Verify answers POST /api/verify.
func (mc *MoveController) Verify(c *fiber.Ctx) error {
	var req MovesRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %v", service.ErrBadRequest, err)
	}
	report, err := mc.svc.Verify(req.FEN)
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// CreateSnapshot stores the posted position and answers 201.
func (mc *MoveController) CreateSnapshot(c *fiber.Ctx) error {
	var req SnapshotRequest
	if err := c.BodyParser(&req); err != nil {
		return fmt.Errorf("%w: %v", service.ErrBadRequest, err)
	}
	snap, err := mc.svc.CreateSnapshot(req.FEN, req.Label)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(snap)
}

// ListSnapshots answers GET /api/snapshots.
func (mc *MoveController) ListSnapshots(c *fiber.Ctx) error {
	snaps, err := mc.svc.Snapshots()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"snapshots": snaps})
}

// snapshotID validates the :id route parameter.
func snapshotID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("%w: snapshot id %q", service.ErrBadRequest, id)
	}
	return id, nil
}

// GetSnapshot answers GET /api/snapshots/:id.
func (mc *MoveController) GetSnapshot(c *fiber.Ctx) error {
	id, err := snapshotID(c)
	if err != nil {
		return err
	}
	snap, err := mc.svc.Snapshot(id)
	if err != nil {
		return err
	}
	return c.JSON(snap)
}

// SnapshotMoves answers GET /api/snapshots/:id/moves, with an optional square query.
func (mc *MoveController) SnapshotMoves(c *fiber.Ctx) error {
	id, err := snapshotID(c)
	if err != nil {
		return err
	}
	report, err := mc.svc.SnapshotMoves(id, c.Query("square"))
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// DeleteSnapshot removes a snapshot and answers 204.
func (mc *MoveController) DeleteSnapshot(c *fiber.Ctx) error {
	id, err := snapshotID(c)
	if err != nil {
		return err
	}
	if err := mc.svc.DeleteSnapshot(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
