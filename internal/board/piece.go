package board

// Alliance is the side a piece belongs to.
type Alliance uint8

const (
	White Alliance = iota // first mover
	Black
)

// Opposite returns the other alliance.
func (a Alliance) Opposite() Alliance {
	return a ^ 1
}

// Direction returns the row step of the alliance's pawns.
// White moves toward row 0 (the eighth rank), Black toward row 7.
func (a Alliance) Direction() int {
	if a == White {
		return -1
	}
	return 1
}

// String returns the alliance name.
func (a Alliance) String() string {
	switch a {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// PieceType represents the kind of a chess piece.
type PieceType uint8

const (
	PawnType PieceType = iota
	KnightType
	BishopType
	RookType
	QueenType
	KingType
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case PawnType:
		return "Pawn"
	case KnightType:
		return "Knight"
	case BishopType:
		return "Bishop"
	case RookType:
		return "Rook"
	case QueenType:
		return "Queen"
	case KingType:
		return "King"
	default:
		return "None"
	}
}

// Char returns the FEN character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	if pt > KingType {
		return ' '
	}
	return "pnbrqk"[pt]
}

// Piece is a chess piece standing on a tile. Pieces are immutable values:
// enumerating moves never changes the piece or the board.
type Piece interface {
	Position() Coordinate
	Alliance() Alliance
	Type() PieceType

	// LegalMoves enumerates the geometrically reachable destinations of the
	// piece on b. Check and pin legality are left to the caller.
	LegalMoves(b *Board) []Move

	String() string
}

// piece holds the state shared by every piece kind.
type piece struct {
	position Coordinate
	alliance Alliance
}

func (p piece) Position() Coordinate { return p.position }
func (p piece) Alliance() Alliance   { return p.alliance }

// fenString returns the FEN character: uppercase for white, lowercase for black.
func (p piece) fenString(pt PieceType) string {
	c := pt.Char()
	if p.alliance == White {
		c -= 'a' - 'A'
	}
	return string(c)
}

// NewPiece creates a piece of the given type. It returns nil for an unknown type.
func NewPiece(pt PieceType, a Alliance, c Coordinate) Piece {
	switch pt {
	case PawnType:
		return NewPawn(c, a)
	case KnightType:
		return NewKnight(c, a)
	case BishopType:
		return NewBishop(c, a)
	case RookType:
		return NewRook(c, a)
	case QueenType:
		return NewQueen(c, a)
	case KingType:
		return NewKing(c, a)
	}
	return nil
}

// PieceFromChar converts a FEN character into a piece standing on c.
func PieceFromChar(ch byte, c Coordinate) (Piece, bool) {
	a := White
	if ch >= 'a' && ch <= 'z' {
		a = Black
		ch -= 'a' - 'A'
	}
	var pt PieceType
	switch ch {
	case 'P':
		pt = PawnType
	case 'N':
		pt = KnightType
	case 'B':
		pt = BishopType
	case 'R':
		pt = RookType
	case 'Q':
		pt = QueenType
	case 'K':
		pt = KingType
	default:
		return nil, false
	}
	return NewPiece(pt, a, c), true
}
