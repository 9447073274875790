package board

// Direction vectors of the sliding pieces.
var (
	bishopVectors = [...]int{-9, -7, 7, 9}
	rookVectors   = [...]int{-8, -1, 1, 8}
	queenVectors  = [...]int{-9, -8, -7, -1, 1, 7, 8, 9}
)

// Bishop slides along diagonals.
type Bishop struct{ piece }

// Rook slides along rows and columns.
type Rook struct{ piece }

// Queen slides along rows, columns and diagonals.
type Queen struct{ piece }

// NewBishop creates a bishop on c.
func NewBishop(c Coordinate, a Alliance) Bishop {
	return Bishop{piece{position: c, alliance: a}}
}

// NewRook creates a rook on c.
func NewRook(c Coordinate, a Alliance) Rook {
	return Rook{piece{position: c, alliance: a}}
}

// NewQueen creates a queen on c.
func NewQueen(c Coordinate, a Alliance) Queen {
	return Queen{piece{position: c, alliance: a}}
}

func (p Bishop) Type() PieceType { return BishopType }
func (p Rook) Type() PieceType   { return RookType }
func (p Queen) Type() PieceType  { return QueenType }

func (p Bishop) String() string { return p.fenString(BishopType) }
func (p Rook) String() string   { return p.fenString(RookType) }
func (p Queen) String() string  { return p.fenString(QueenType) }

// LegalMoves walks each diagonal until the board edge or the first occupied tile.
func (p Bishop) LegalMoves(b *Board) []Move {
	return slide(b, p, bishopVectors[:], isDiagonalExclusion)
}

// LegalMoves walks each row and column until the board edge or the first occupied tile.
func (p Rook) LegalMoves(b *Board) []Move {
	return slide(b, p, rookVectors[:], isHorizontalExclusion)
}

// LegalMoves walks all eight directions until the board edge or the first occupied tile.
func (p Queen) LegalMoves(b *Board) []Move {
	return slide(b, p, queenVectors[:], isAdjacentExclusion)
}

// exclusion reports whether stepping by offset from c would wrap around a
// board edge into the opposite column.
type exclusion func(c Coordinate, offset int) bool

// isDiagonalExclusion forbids -9/+7 from the first column and -7/+9 from the eighth.
func isDiagonalExclusion(c Coordinate, offset int) bool {
	return FirstColumn[c] && (offset == -9 || offset == 7) ||
		EighthColumn[c] && (offset == -7 || offset == 9)
}

// isHorizontalExclusion forbids -1 from the first column and +1 from the eighth.
// Vertical offsets never change column and are never excluded.
func isHorizontalExclusion(c Coordinate, offset int) bool {
	return FirstColumn[c] && offset == -1 ||
		EighthColumn[c] && offset == 1
}

// isAdjacentExclusion combines the diagonal and horizontal rules. It covers
// every single-step offset, so the king shares it with the queen.
func isAdjacentExclusion(c Coordinate, offset int) bool {
	return isDiagonalExclusion(c, offset) || isHorizontalExclusion(c, offset)
}

// slide casts a ray per vector. The edge check runs before every step, so a
// ray leaving column a or h stops instead of reappearing on the other side.
func slide(b *Board, p Piece, vectors []int, excluded exclusion) []Move {
	var moves []Move
	for _, offset := range vectors {
		candidate := p.Position()
		for candidate.IsValid() {
			if excluded(candidate, offset) {
				break
			}
			candidate += Coordinate(offset)
			if !candidate.IsValid() {
				break
			}

			t := b.Tile(candidate)
			if !t.IsOccupied() {
				moves = append(moves, NewQuietMove(b, p, candidate))
				continue
			}
			occupant := t.Piece()
			if occupant.Alliance() != p.Alliance() {
				moves = append(moves, NewCaptureMove(b, p, candidate, occupant))
			}
			break
		}
	}
	return moves
}
