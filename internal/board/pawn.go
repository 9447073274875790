package board

// Pawn offsets in row-direction units: push, double push, two captures.
var pawnOffsets = [...]int{8, 16, 7, 9}

// Pawn pushes forward and captures diagonally. Promotion and en passant are
// left to the game-state layer.
type Pawn struct{ piece }

// NewPawn creates a pawn on c.
func NewPawn(c Coordinate, a Alliance) Pawn {
	return Pawn{piece{position: c, alliance: a}}
}

func (p Pawn) Type() PieceType { return PawnType }
func (p Pawn) String() string  { return p.fenString(PawnType) }

// isFirstMove returns true while the pawn stands on its home row.
func (p Pawn) isFirstMove() bool {
	if p.alliance == White {
		return SeventhRow[p.position]
	}
	return SecondRow[p.position]
}

// isPawnCaptureExclusion forbids diagonal steps that would leave the board
// sideways. The forbidden edge depends on the direction of travel.
func isPawnCaptureExclusion(c Coordinate, a Alliance, offset int) bool {
	switch offset {
	case 7:
		return EighthColumn[c] && a == White || FirstColumn[c] && a == Black
	case 9:
		return FirstColumn[c] && a == White || EighthColumn[c] && a == Black
	}
	return false
}

// LegalMoves returns the pushes onto empty tiles and the diagonal captures.
func (p Pawn) LegalMoves(b *Board) []Move {
	var moves []Move
	dir := p.alliance.Direction()
	for _, offset := range pawnOffsets {
		dest := p.position + Coordinate(dir*offset)
		if !dest.IsValid() {
			continue
		}

		switch offset {
		case 8:
			if !b.Tile(dest).IsOccupied() {
				moves = append(moves, NewQuietMove(b, p, dest))
			}
		case 16:
			if !p.isFirstMove() {
				continue
			}
			behind := p.position + Coordinate(dir*8)
			if !b.Tile(behind).IsOccupied() && !b.Tile(dest).IsOccupied() {
				moves = append(moves, NewQuietMove(b, p, dest))
			}
		default:
			if isPawnCaptureExclusion(p.position, p.alliance, offset) {
				continue
			}
			t := b.Tile(dest)
			if !t.IsOccupied() {
				continue
			}
			if occupant := t.Piece(); occupant.Alliance() != p.alliance {
				moves = append(moves, NewCaptureMove(b, p, dest, occupant))
			}
		}
	}
	return moves
}
