package board

import (
	"errors"
	"testing"
)

func TestIsValidTileCoordinate(t *testing.T) {
	for c := Coordinate(-20); c < 100; c++ {
		want := c >= 0 && c <= 63
		if got := IsValidTileCoordinate(c); got != want {
			t.Errorf("IsValidTileCoordinate(%d) = %v, want %v", c, got, want)
		}
	}
}

func TestColumnTables(t *testing.T) {
	tables := []struct {
		name   string
		table  [NumTiles]bool
		column int
	}{
		{"FirstColumn", FirstColumn, 0},
		{"SecondColumn", SecondColumn, 1},
		{"SeventhColumn", SeventhColumn, 6},
		{"EighthColumn", EighthColumn, 7},
	}

	for _, tc := range tables {
		t.Run(tc.name, func(t *testing.T) {
			for c := 0; c < NumTiles; c++ {
				want := c%8 == tc.column
				if tc.table[c] != want {
					t.Errorf("%s[%d] = %v, want %v", tc.name, c, tc.table[c], want)
				}
			}
		})
	}
}

func TestRowTables(t *testing.T) {
	for c := 0; c < NumTiles; c++ {
		if SecondRow[c] != (c/8 == 1) {
			t.Errorf("SecondRow[%d] = %v", c, SecondRow[c])
		}
		if SeventhRow[c] != (c/8 == 6) {
			t.Errorf("SeventhRow[%d] = %v", c, SeventhRow[c])
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		in   string
		want Coordinate
	}{
		{"a8", 0},
		{"h8", 7},
		{"e4", 36},
		{"a1", 56},
		{"h1", 63},
		{"d5", 27},
	}

	for _, tc := range tests {
		got, err := ParseCoordinate(tc.in)
		if err != nil {
			t.Fatalf("ParseCoordinate(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseCoordinate(%q) = %d, want %d", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Errorf("Coordinate(%d).String() = %q, want %q", got, got.String(), tc.in)
		}
	}

	for _, bad := range []string{"", "e", "e44", "i1", "a0", "a9", "E4", "44"} {
		if _, err := ParseCoordinate(bad); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("ParseCoordinate(%q) error = %v, want ErrInvalidCoordinate", bad, err)
		}
	}
}

func TestCoordinateString(t *testing.T) {
	if s := NoCoordinate.String(); s != "-" {
		t.Errorf("NoCoordinate.String() = %q, want \"-\"", s)
	}
	if s := Coordinate(64).String(); s != "-" {
		t.Errorf("Coordinate(64).String() = %q, want \"-\"", s)
	}
}
