package board

import "fmt"

// Move is a proposed displacement of a piece. It is either a QuietMove or a
// CaptureMove; use a type switch to tell them apart.
type Move interface {
	Board() *Board
	MovedPiece() Piece
	Destination() Coordinate

	// String returns the long algebraic form of the move (e.g., "g1f3").
	String() string

	move()
}

// QuietMove moves a piece to an empty tile.
type QuietMove struct {
	board       *Board
	piece       Piece
	destination Coordinate
}

// CaptureMove moves a piece onto a tile held by an opposing piece.
type CaptureMove struct {
	board       *Board
	piece       Piece
	destination Coordinate
	captured    Piece
}

// NewQuietMove creates a quiet move.
func NewQuietMove(b *Board, p Piece, destination Coordinate) QuietMove {
	return QuietMove{board: b, piece: p, destination: destination}
}

// NewCaptureMove creates a capture move. It panics if captured belongs to
// the same alliance as p.
func NewCaptureMove(b *Board, p Piece, destination Coordinate, captured Piece) CaptureMove {
	if captured.Alliance() == p.Alliance() {
		panic(fmt.Errorf("%w: %s on %s", ErrFriendlyCapture, captured, destination))
	}
	return CaptureMove{board: b, piece: p, destination: destination, captured: captured}
}

func (m QuietMove) Board() *Board           { return m.board }
func (m QuietMove) MovedPiece() Piece       { return m.piece }
func (m QuietMove) Destination() Coordinate { return m.destination }
func (m QuietMove) String() string          { return longAlgebraic(m) }
func (m QuietMove) move()                   {}

func (m CaptureMove) Board() *Board           { return m.board }
func (m CaptureMove) MovedPiece() Piece       { return m.piece }
func (m CaptureMove) Destination() Coordinate { return m.destination }
func (m CaptureMove) String() string          { return longAlgebraic(m) }
func (m CaptureMove) move()                   {}

// CapturedPiece returns the piece removed by the move.
func (m CaptureMove) CapturedPiece() Piece { return m.captured }

// IsCapture returns true if m captures a piece.
func IsCapture(m Move) bool {
	_, ok := m.(CaptureMove)
	return ok
}

// Origin returns the tile the moved piece starts from.
func Origin(m Move) Coordinate {
	return m.MovedPiece().Position()
}

func longAlgebraic(m Move) string {
	return Origin(m).String() + m.Destination().String()
}
