package board

import "fmt"

// Tile is a single board cell. It is either an EmptyTile or an OccupiedTile.
type Tile interface {
	Coordinate() Coordinate
	IsOccupied() bool

	// Piece returns the occupant. It panics on an empty tile.
	Piece() Piece

	tile()
}

// EmptyTile is a tile without a piece.
type EmptyTile struct {
	coordinate Coordinate
}

// OccupiedTile is a tile holding a piece.
type OccupiedTile struct {
	coordinate Coordinate
	piece      Piece
}

// emptyTiles holds the shared empty tile of every coordinate. It is built
// once at init and never written afterwards.
var emptyTiles = createAllEmptyTiles()

func createAllEmptyTiles() [NumTiles]*EmptyTile {
	var tiles [NumTiles]*EmptyTile
	for c := range tiles {
		tiles[c] = &EmptyTile{coordinate: Coordinate(c)}
	}
	return tiles
}

// NewTile returns an occupied tile when p is non-nil, otherwise the cached
// empty tile for c. It panics if c is off the board.
func NewTile(c Coordinate, p Piece) Tile {
	if !c.IsValid() {
		panic(fmt.Errorf("%w: %d", ErrInvalidCoordinate, c))
	}
	if p != nil {
		return &OccupiedTile{coordinate: c, piece: p}
	}
	return emptyTiles[c]
}

func (t *EmptyTile) Coordinate() Coordinate { return t.coordinate }
func (t *EmptyTile) IsOccupied() bool       { return false }

// Piece panics: an empty tile has no occupant.
func (t *EmptyTile) Piece() Piece {
	panic(fmt.Errorf("%w: %s", ErrEmptyTile, t.coordinate))
}

func (t *EmptyTile) String() string { return "-" }
func (t *EmptyTile) tile()          {}

func (t *OccupiedTile) Coordinate() Coordinate { return t.coordinate }
func (t *OccupiedTile) IsOccupied() bool       { return true }
func (t *OccupiedTile) Piece() Piece           { return t.piece }
func (t *OccupiedTile) String() string         { return t.piece.String() }
func (t *OccupiedTile) tile()                  {}
