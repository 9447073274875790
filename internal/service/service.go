// Package service answers move-enumeration queries for the transports.
package service

import (
	"errors"
	"fmt"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/crosscheck"
	"github.com/hailam/chesscore/internal/storage"
)

// ErrBadRequest wraps every error caused by malformed caller input.
var ErrBadRequest = errors.New("bad request")

// MoveView is the transport form of a board.Move.
type MoveView struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Kind     string `json:"kind"`
	Captured string `json:"captured,omitempty"`
	UCI      string `json:"uci"`
	SAN      string `json:"san"`
}

// MoveReport is the answer to a move query.
type MoveReport struct {
	FEN    string     `json:"fen"`
	Square string     `json:"square,omitempty"`
	Side   string     `json:"side"`
	Count  int        `json:"count"`
	Moves  []MoveView `json:"moves"`
}

// VerifyReport lists oracle disagreements for a position.
type VerifyReport struct {
	FEN        string   `json:"fen"`
	Pieces     int      `json:"pieces"`
	Mismatches []string `json:"mismatches"`
}

// MoveService is stateless apart from its store, so it is safe for
// concurrent use.
type MoveService struct {
	store *storage.Storage
}

// NewMoveService creates a service backed by store.
func NewMoveService(store *storage.Storage) *MoveService {
	return &MoveService{store: store}
}

// NewMoveView converts a move.
func NewMoveView(m board.Move) MoveView {
	v := MoveView{
		From:  board.Origin(m).String(),
		To:    m.Destination().String(),
		Piece: m.MovedPiece().String(),
		Kind:  "quiet",
		UCI:   m.String(),
		SAN:   board.Notation(m),
	}
	if c, ok := m.(board.CaptureMove); ok {
		v.Kind = "capture"
		v.Captured = c.CapturedPiece().String()
	}
	return v
}

func parseBoard(fen string) (*board.Board, error) {
	b, err := board.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return b, nil
}

// Moves enumerates the moves of the piece on square, or of every piece of
// the side to move when square is empty.
func (s *MoveService) Moves(fen, square string) (*MoveReport, error) {
	if square == "" {
		return s.SideMoves(fen)
	}
	return s.PieceMoves(fen, square)
}

// SideMoves enumerates the moves of every piece of the side to move.
func (s *MoveService) SideMoves(fen string) (*MoveReport, error) {
	b, err := parseBoard(fen)
	if err != nil {
		return nil, err
	}
	return s.report(b, "", b.LegalMoves(b.MoveMaker())), nil
}

// PieceMoves enumerates the moves of the piece on square.
func (s *MoveService) PieceMoves(fen, square string) (*MoveReport, error) {
	b, err := parseBoard(fen)
	if err != nil {
		return nil, err
	}
	c, err := board.ParseCoordinate(square)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	moves, err := b.PieceMoves(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return s.report(b, square, moves), nil
}

func (s *MoveService) report(b *board.Board, square string, moves []board.Move) *MoveReport {
	r := &MoveReport{
		FEN:    b.FEN(),
		Square: square,
		Side:   b.MoveMaker().String(),
		Count:  len(moves),
		Moves:  make([]MoveView, 0, len(moves)),
	}
	for _, m := range moves {
		r.Moves = append(r.Moves, NewMoveView(m))
	}
	return r
}

// CreateSnapshot validates fen and stores it in normalised form.
func (s *MoveService) CreateSnapshot(fen, label string) (*storage.Snapshot, error) {
	b, err := parseBoard(fen)
	if err != nil {
		return nil, err
	}
	return s.store.CreateSnapshot(b.FEN(), label)
}

// Snapshot loads a stored position.
func (s *MoveService) Snapshot(id string) (*storage.Snapshot, error) {
	return s.store.LoadSnapshot(id)
}

// Snapshots lists stored positions.
func (s *MoveService) Snapshots() ([]*storage.Snapshot, error) {
	return s.store.ListSnapshots()
}

// DeleteSnapshot removes a stored position.
func (s *MoveService) DeleteSnapshot(id string) error {
	return s.store.DeleteSnapshot(id)
}

// SnapshotMoves answers a move query against a stored position.
func (s *MoveService) SnapshotMoves(id, square string) (*MoveReport, error) {
	snap, err := s.store.LoadSnapshot(id)
	if err != nil {
		return nil, err
	}
	return s.Moves(snap.FEN, square)
}

// Verify runs the oracle comparison on fen.
func (s *MoveService) Verify(fen string) (*VerifyReport, error) {
	b, err := parseBoard(fen)
	if err != nil {
		return nil, err
	}
	r := &VerifyReport{
		FEN:        b.FEN(),
		Pieces:     len(b.ActivePieces(board.White)) + len(b.ActivePieces(board.Black)),
		Mismatches: []string{},
	}
	for _, m := range crosscheck.Verify(b) {
		r.Mismatches = append(r.Mismatches, m.String())
	}
	return r, nil
}
