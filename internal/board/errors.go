package board

import "errors"

var (
	// ErrInvalidCoordinate is returned (or panicked with) for coordinates outside [0, 63].
	ErrInvalidCoordinate = errors.New("invalid tile coordinate")

	// ErrEmptyTile signals an attempt to read the piece of an empty tile.
	ErrEmptyTile = errors.New("tile is empty")

	// ErrFriendlyCapture signals a capture move built against a piece of the same alliance.
	ErrFriendlyCapture = errors.New("capture of a friendly piece")

	// ErrInvalidFEN is wrapped by every FEN parsing failure.
	ErrInvalidFEN = errors.New("invalid FEN")
)
