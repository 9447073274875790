package board

// Candidate offsets of the leaping pieces.
var (
	knightOffsets = [...]int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = [...]int{-9, -8, -7, -1, 1, 7, 8, 9}
)

// Knight jumps two tiles in one direction and one tile sideways.
type Knight struct{ piece }

// King steps one tile in any direction. Castling is a game-state concern.
type King struct{ piece }

// NewKnight creates a knight on c.
func NewKnight(c Coordinate, a Alliance) Knight {
	return Knight{piece{position: c, alliance: a}}
}

// NewKing creates a king on c.
func NewKing(c Coordinate, a Alliance) King {
	return King{piece{position: c, alliance: a}}
}

func (p Knight) Type() PieceType { return KnightType }
func (p King) Type() PieceType   { return KingType }

func (p Knight) String() string { return p.fenString(KnightType) }
func (p King) String() string   { return p.fenString(KingType) }

// LegalMoves evaluates each knight offset independently.
func (p Knight) LegalMoves(b *Board) []Move {
	return leap(b, p, knightOffsets[:], isKnightExclusion)
}

// LegalMoves evaluates each adjacent tile independently.
func (p King) LegalMoves(b *Board) []Move {
	return leap(b, p, kingOffsets[:], isAdjacentExclusion)
}

// isKnightExclusion applies the column rule tied to each knight offset.
// A jump crossing two columns is forbidden from the two edge columns on
// that side, a jump crossing one column only from the edge column itself.
func isKnightExclusion(c Coordinate, offset int) bool {
	return isFirstColumnKnightExclusion(c, offset) ||
		isSecondColumnKnightExclusion(c, offset) ||
		isSeventhColumnKnightExclusion(c, offset) ||
		isEighthColumnKnightExclusion(c, offset)
}

func isFirstColumnKnightExclusion(c Coordinate, offset int) bool {
	return FirstColumn[c] && (offset == -17 || offset == -10 || offset == 6 || offset == 15)
}

func isSecondColumnKnightExclusion(c Coordinate, offset int) bool {
	return SecondColumn[c] && (offset == -10 || offset == 6)
}

func isSeventhColumnKnightExclusion(c Coordinate, offset int) bool {
	return SeventhColumn[c] && (offset == -6 || offset == 10)
}

func isEighthColumnKnightExclusion(c Coordinate, offset int) bool {
	return EighthColumn[c] && (offset == -15 || offset == -6 || offset == 10 || offset == 17)
}

// leap tests every offset once; there is no ray walking.
func leap(b *Board, p Piece, offsets []int, excluded exclusion) []Move {
	var moves []Move
	from := p.Position()
	for _, offset := range offsets {
		dest := from + Coordinate(offset)
		if !dest.IsValid() || excluded(from, offset) {
			continue
		}

		t := b.Tile(dest)
		if !t.IsOccupied() {
			moves = append(moves, NewQuietMove(b, p, dest))
			continue
		}
		if occupant := t.Piece(); occupant.Alliance() != p.Alliance() {
			moves = append(moves, NewCaptureMove(b, p, dest, occupant))
		}
	}
	return moves
}
