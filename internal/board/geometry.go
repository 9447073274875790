// Package board implements a tile-based chess board and per-piece move generation.
package board

import "fmt"

// Board dimensions.
const (
	NumTiles       = 64
	NumTilesPerRow = 8
)

// Coordinate is a row-major tile index in [0, 63].
// Row 0 is the eighth rank, so a8=0, h8=7, a1=56 and h1=63.
type Coordinate int

// NoCoordinate marks the absence of a tile.
const NoCoordinate Coordinate = -1

// Column membership tables, indexed by coordinate.
var (
	FirstColumn   = initColumn(0)
	SecondColumn  = initColumn(1)
	SeventhColumn = initColumn(6)
	EighthColumn  = initColumn(7)
)

// Row membership tables. SecondRow holds the black pawns' home row and
// SeventhRow the white pawns' home row.
var (
	SecondRow  = initRow(1)
	SeventhRow = initRow(6)
)

func initColumn(column int) [NumTiles]bool {
	var table [NumTiles]bool
	for c := column; c < NumTiles; c += NumTilesPerRow {
		table[c] = true
	}
	return table
}

func initRow(row int) [NumTiles]bool {
	var table [NumTiles]bool
	start := row * NumTilesPerRow
	for c := start; c < start+NumTilesPerRow; c++ {
		table[c] = true
	}
	return table
}

// IsValidTileCoordinate returns true if c addresses a tile on the board.
func IsValidTileCoordinate(c Coordinate) bool {
	return c >= 0 && c < NumTiles
}

// IsValid returns true if the coordinate is on the board.
func (c Coordinate) IsValid() bool {
	return IsValidTileCoordinate(c)
}

// Row returns the row index (0 is the eighth rank).
func (c Coordinate) Row() int {
	return int(c) / NumTilesPerRow
}

// Column returns the column index (0 is the a-file).
func (c Coordinate) Column() int {
	return int(c) % NumTilesPerRow
}

// Rank returns the chess rank (1-8) of the coordinate.
func (c Coordinate) Rank() int {
	return NumTilesPerRow - c.Row()
}

// String returns the algebraic notation for the coordinate (e.g., "e4").
func (c Coordinate) String() string {
	if !c.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+c.Column(), c.Rank())
}

// NewCoordinate creates a coordinate from a row and a column (0-indexed).
func NewCoordinate(row, column int) Coordinate {
	return Coordinate(row*NumTilesPerRow + column)
}

// ParseCoordinate parses algebraic notation (e.g., "e4") into a Coordinate.
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return NoCoordinate, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	column := int(s[0] - 'a')
	rank := int(s[1] - '0')

	if column < 0 || column > 7 || rank < 1 || rank > 8 {
		return NoCoordinate, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}

	return NewCoordinate(NumTilesPerRow-rank, column), nil
}
