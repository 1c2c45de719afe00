package rocks

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput indicates an unknown tile character or ragged rows.
	ErrMalformedInput = errors.New("rocks: malformed input")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("rocks: grid must have at least one row and one column")
	// ErrNoCycle indicates the history never repeated within the allowed cycles.
	ErrNoCycle = errors.New("rocks: no repeating state found")
	// ErrCycleIndex indicates a requested cycle number below 1.
	ErrCycleIndex = errors.New("rocks: cycle number out of range")
	// ErrInvalidConfig indicates a configuration value outside its domain.
	ErrInvalidConfig = errors.New("rocks: invalid config")
)

// Tile is the content of one grid position. The numeric value is also the
// palette index used when rendering.
type Tile uint8

const (
	Empty Tile = iota
	RollingRock
	FixedRock
)

// ParseTile maps an input character to its tile.
func ParseTile(r rune) (Tile, error) {
	switch r {
	case '.':
		return Empty, nil
	case 'O':
		return RollingRock, nil
	case '#':
		return FixedRock, nil
	}
	return Empty, fmt.Errorf("%w: unexpected character %q", ErrMalformedInput, r)
}

// Byte returns the canonical single-byte encoding of the tile.
func (t Tile) Byte() byte {
	switch t {
	case RollingRock:
		return 'O'
	case FixedRock:
		return '#'
	default:
		return '.'
	}
}

func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case RollingRock:
		return "rolling"
	case FixedRock:
		return "fixed"
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}
