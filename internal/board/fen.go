package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses the piece placement and side to move of a FEN string.
// Castling, en passant and clock fields are accepted but ignored: they
// belong to the game-state layer, not to the board snapshot.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidFEN)
	}

	bb := NewBuilder()

	// Parse piece placement (field 0)
	if err := parsePiecePlacement(bb, parts[0]); err != nil {
		return nil, err
	}

	// Parse side to move (field 1, optional)
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			bb.SetMoveMaker(White)
		case "b":
			bb.SetMoveMaker(Black)
		default:
			return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, parts[1])
		}
	}

	return bb.Build()
}

// parsePiecePlacement parses the piece placement section of a FEN string.
// FEN ranks run from the eighth down, which matches the row order of
// coordinates.
func parsePiecePlacement(bb *Builder, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != NumTilesPerRow {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(rows))
	}

	for row, rowStr := range rows {
		column := 0

		for _, ch := range rowStr {
			if column > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, NumTilesPerRow-row)
			}

			if ch >= '1' && ch <= '8' {
				// Skip empty squares
				column += int(ch - '0')
				continue
			}

			if ch >= utf8.RuneSelf {
				return fmt.Errorf("%w: invalid piece character %q", ErrInvalidFEN, ch)
			}
			p, ok := PieceFromChar(byte(ch), NewCoordinate(row, column))
			if !ok {
				return fmt.Errorf("%w: invalid piece character %q", ErrInvalidFEN, ch)
			}
			bb.SetPiece(p)
			column++
		}

		if column != NumTilesPerRow {
			return fmt.Errorf("%w: invalid number of squares in rank %d: got %d", ErrInvalidFEN, NumTilesPerRow-row, column)
		}
	}

	return nil
}

// FEN returns the FEN representation of the board. Game-state fields are
// emitted with neutral values.
func (b *Board) FEN() string {
	var sb strings.Builder

	for row := 0; row < NumTilesPerRow; row++ {
		empty := 0
		for column := 0; column < NumTilesPerRow; column++ {
			t := b.tiles[NewCoordinate(row, column)]
			if !t.IsOccupied() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(t.Piece().String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < NumTilesPerRow-1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.moveMaker == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}
