package board

import (
	"fmt"
	"sort"
	"strings"
)

// Board is an immutable snapshot of the 64 tiles. Concurrent readers need no
// synchronisation.
type Board struct {
	tiles       [NumTiles]Tile
	whitePieces []Piece
	blackPieces []Piece
	moveMaker   Alliance
}

// Builder collects pieces before creating a Board.
type Builder struct {
	config    map[Coordinate]Piece
	moveMaker Alliance
}

// NewBuilder creates an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{config: make(map[Coordinate]Piece), moveMaker: White}
}

// SetPiece places p on its own position, replacing any earlier piece there.
// A nil piece leaves the builder unchanged.
func (bb *Builder) SetPiece(p Piece) *Builder {
	if p == nil {
		return bb
	}
	bb.config[p.Position()] = p
	return bb
}

// SetMoveMaker sets the alliance to move.
func (bb *Builder) SetMoveMaker(a Alliance) *Builder {
	bb.moveMaker = a
	return bb
}

// Build creates the board. It fails if a piece stands off the board.
func (bb *Builder) Build() (*Board, error) {
	b := &Board{moveMaker: bb.moveMaker}
	for c, p := range bb.config {
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: piece %s at %d", ErrInvalidCoordinate, p, c)
		}
	}
	for c := Coordinate(0); c < NumTiles; c++ {
		p := bb.config[c]
		b.tiles[c] = NewTile(c, p)
		if p == nil {
			continue
		}
		if p.Alliance() == White {
			b.whitePieces = append(b.whitePieces, p)
		} else {
			b.blackPieces = append(b.blackPieces, p)
		}
	}
	return b, nil
}

// MustBuild is like Build but panics on error.
func (bb *Builder) MustBuild() *Board {
	b, err := bb.Build()
	if err != nil {
		panic(err)
	}
	return b
}

// StandardBoard returns the starting position.
func StandardBoard() *Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return b
}

// Tile returns the tile at c. Querying an off-board coordinate is a caller
// bug and panics with an error wrapping ErrInvalidCoordinate.
func (b *Board) Tile(c Coordinate) Tile {
	if !c.IsValid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidCoordinate, c))
	}
	return b.tiles[c]
}

// MoveMaker returns the alliance to move.
func (b *Board) MoveMaker() Alliance {
	return b.moveMaker
}

// ActivePieces returns the pieces of an alliance in coordinate order.
func (b *Board) ActivePieces(a Alliance) []Piece {
	if a == White {
		return b.whitePieces
	}
	return b.blackPieces
}

// LegalMoves concatenates the moves of every active piece of a, in
// coordinate order.
func (b *Board) LegalMoves(a Alliance) []Move {
	var moves []Move
	for _, p := range b.ActivePieces(a) {
		moves = append(moves, p.LegalMoves(b)...)
	}
	return moves
}

// PieceMoves returns the moves of the piece standing on c.
func (b *Board) PieceMoves(c Coordinate) ([]Move, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCoordinate, c)
	}
	t := b.tiles[c]
	if !t.IsOccupied() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTile, c)
	}
	return t.Piece().LegalMoves(b), nil
}

// Destinations returns the sorted destination tiles of moves.
func Destinations(moves []Move) []Coordinate {
	out := make([]Coordinate, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Destination())
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns a visual representation of the board, eighth rank first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < NumTilesPerRow; row++ {
		fmt.Fprintf(&sb, "%d ", NumTilesPerRow-row)
		for column := 0; column < NumTilesPerRow; column++ {
			t := b.tiles[NewCoordinate(row, column)]
			if t.IsOccupied() {
				sb.WriteString(t.Piece().String())
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
