// Package crosscheck recomputes move destinations with an independent
// oracle and reports where the tile-based generator disagrees.
//
// Sliding pieces are checked against dragontoothmg's magic bitboards.
// Knights, kings and pawns are checked with plain row/column deltas, which
// cannot wrap around the board edge.
package crosscheck

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/hailam/chesscore/internal/board"
)

// Mismatch describes a piece whose generated destinations differ from the oracle.
type Mismatch struct {
	Piece   board.Piece
	Missing []board.Coordinate // reachable per the oracle, not generated
	Extra   []board.Coordinate // generated, not reachable per the oracle
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s on %s: missing %v, extra %v", m.Piece, m.Piece.Position(), m.Missing, m.Extra)
}

var (
	knightDeltas = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingDeltas   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Verify checks every piece of both alliances.
func Verify(b *board.Board) []Mismatch {
	var out []Mismatch
	for _, a := range []board.Alliance{board.White, board.Black} {
		for _, p := range b.ActivePieces(a) {
			if m, ok := VerifyPiece(b, p); !ok {
				out = append(out, m)
			}
		}
	}
	return out
}

// VerifyPiece compares one piece's generated destinations with the oracle.
func VerifyPiece(b *board.Board, p board.Piece) (Mismatch, bool) {
	generated := make(map[board.Coordinate]struct{})
	for _, m := range p.LegalMoves(b) {
		generated[m.Destination()] = struct{}{}
	}

	var missing []board.Coordinate
	for _, c := range Expected(b, p) {
		if _, ok := generated[c]; ok {
			delete(generated, c)
			continue
		}
		missing = append(missing, c)
	}

	extra := maps.Keys(generated)
	slices.Sort(extra)
	slices.Sort(missing)

	if len(missing) == 0 && len(extra) == 0 {
		return Mismatch{}, true
	}
	return Mismatch{Piece: p, Missing: missing, Extra: extra}, false
}

// Expected returns the oracle's sorted destination set for p.
func Expected(b *board.Board, p board.Piece) []board.Coordinate {
	var out []board.Coordinate
	switch p.Type() {
	case board.BishopType, board.RookType, board.QueenType:
		out = sliderTargets(b, p)
	case board.KnightType:
		out = deltaTargets(b, p, knightDeltas)
	case board.KingType:
		out = deltaTargets(b, p, kingDeltas)
	case board.PawnType:
		out = pawnTargets(b, p)
	}
	slices.Sort(out)
	return out
}

// toSquare maps a coordinate (a8=0) onto dragontoothmg's square index (a1=0).
func toSquare(c board.Coordinate) uint8 {
	return uint8((7-c.Row())*8 + c.Column())
}

func fromSquare(sq uint8) board.Coordinate {
	return board.NewCoordinate(7-int(sq)/8, int(sq)%8)
}

// occupancy returns the bitboards of all pieces and of a's pieces.
func occupancy(b *board.Board, a board.Alliance) (all, own uint64) {
	for _, side := range []board.Alliance{board.White, board.Black} {
		for _, p := range b.ActivePieces(side) {
			bit := uint64(1) << toSquare(p.Position())
			all |= bit
			if side == a {
				own |= bit
			}
		}
	}
	return all, own
}

func sliderTargets(b *board.Board, p board.Piece) []board.Coordinate {
	all, own := occupancy(b, p.Alliance())
	sq := toSquare(p.Position())

	var targets uint64
	if p.Type() != board.RookType {
		targets |= dragontoothmg.CalculateBishopMoveBitboard(sq, all)
	}
	if p.Type() != board.BishopType {
		targets |= dragontoothmg.CalculateRookMoveBitboard(sq, all)
	}
	targets &^= own

	var out []board.Coordinate
	for sq := uint8(0); sq < 64; sq++ {
		if targets&(uint64(1)<<sq) != 0 {
			out = append(out, fromSquare(sq))
		}
	}
	return out
}

// open reports whether a piece of alliance a may land on (row, column).
func open(b *board.Board, a board.Alliance, row, column int) bool {
	if row < 0 || row > 7 || column < 0 || column > 7 {
		return false
	}
	t := b.Tile(board.NewCoordinate(row, column))
	return !t.IsOccupied() || t.Piece().Alliance() != a
}

func deltaTargets(b *board.Board, p board.Piece, deltas [][2]int) []board.Coordinate {
	var out []board.Coordinate
	row, column := p.Position().Row(), p.Position().Column()
	for _, d := range deltas {
		if open(b, p.Alliance(), row+d[0], column+d[1]) {
			out = append(out, board.NewCoordinate(row+d[0], column+d[1]))
		}
	}
	return out
}

func pawnTargets(b *board.Board, p board.Piece) []board.Coordinate {
	var out []board.Coordinate
	dir := p.Alliance().Direction()
	row, column := p.Position().Row(), p.Position().Column()

	empty := func(r, c int) bool {
		return r >= 0 && r <= 7 && !b.Tile(board.NewCoordinate(r, c)).IsOccupied()
	}

	if empty(row+dir, column) {
		out = append(out, board.NewCoordinate(row+dir, column))
		home := 6
		if p.Alliance() == board.Black {
			home = 1
		}
		if row == home && empty(row+2*dir, column) {
			out = append(out, board.NewCoordinate(row+2*dir, column))
		}
	}

	for _, dc := range []int{-1, 1} {
		r, c := row+dir, column+dc
		if r < 0 || r > 7 || c < 0 || c > 7 {
			continue
		}
		t := b.Tile(board.NewCoordinate(r, c))
		if t.IsOccupied() && t.Piece().Alliance() != p.Alliance() {
			out = append(out, board.NewCoordinate(r, c))
		}
	}
	return out
}
