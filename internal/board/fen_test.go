package board

import (
	"errors"
	"strings"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{StartFEN, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1"},
		{"8/8/8/8/8/8/8/8 b", "8/8/8/8/8/8/8/8 b - - 0 1"},
		{"4k3/8/8/8/8/8/8/4K3", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
	}

	for _, tc := range tests {
		b, err := ParseFEN(tc.in)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", tc.in, err)
		}
		if got := b.FEN(); got != tc.want {
			t.Errorf("FEN() = %q, want %q", got, tc.want)
		}
	}
}

func TestParseFENPlacement(t *testing.T) {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		t.Fatalf("Failed to parse FEN: %v", err)
	}

	tests := []struct {
		square string
		want   string
	}{
		{"a8", "r"},
		{"e8", "k"},
		{"d1", "Q"},
		{"g1", "N"},
		{"e2", "P"},
	}
	for _, tc := range tests {
		c, _ := ParseCoordinate(tc.square)
		tile := b.Tile(c)
		if !tile.IsOccupied() {
			t.Fatalf("%s is empty", tc.square)
		}
		if got := tile.Piece().String(); got != tc.want {
			t.Errorf("%s holds %q, want %q", tc.square, got, tc.want)
		}
		if tile.Piece().Position() != c {
			t.Errorf("%s piece reports position %s", tc.square, tile.Piece().Position())
		}
	}

	if len(b.ActivePieces(White)) != 16 || len(b.ActivePieces(Black)) != 16 {
		t.Errorf("active pieces = %d/%d, want 16/16", len(b.ActivePieces(White)), len(b.ActivePieces(Black)))
	}
	if !strings.HasPrefix(b.String(), "8 r n b q k b n r") {
		t.Errorf("unexpected board diagram:\n%s", b)
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w",
		"8/8/8/8/8/8/ŐŮ6/8 w",
		"8/8/8/8/8/8/7♔/8 w",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q) error = %v, want ErrInvalidFEN", fen, err)
		}
	}
}

func TestNotation(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		to   string
		want string
	}{
		{"knight", StartFEN, "g1", "f3", "Nf3"},
		{"pawn push", StartFEN, "e2", "e4", "e4"},
		{"pawn capture", "8/8/8/3p4/4P3/8/8/8 w", "e4", "d5", "exd5"},
		{"bishop capture", "8/8/8/4p3/8/8/1B6/8 w", "b2", "e5", "Bxe5"},
		{"file disambiguation", "8/8/8/8/8/8/8/R6R w", "a1", "d1", "Rad1"},
		{"rank disambiguation", "R7/8/8/8/8/8/8/R7 w", "a1", "a4", "R1a4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("Failed to parse FEN: %v", err)
			}
			from, _ := ParseCoordinate(tc.from)
			to, _ := ParseCoordinate(tc.to)
			moves, err := b.PieceMoves(from)
			if err != nil {
				t.Fatalf("PieceMoves failed: %v", err)
			}
			for _, m := range moves {
				if m.Destination() != to {
					continue
				}
				if got := Notation(m); got != tc.want {
					t.Errorf("Notation = %q, want %q", got, tc.want)
				}
				if got := m.String(); got != tc.from+tc.to {
					t.Errorf("String = %q, want %q", got, tc.from+tc.to)
				}
				return
			}
			t.Fatalf("no move %s%s among %v", tc.from, tc.to, moves)
		})
	}
}
