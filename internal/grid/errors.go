package grid

import "errors"

// Sentinel errors for grid lookups and profile decoding. Callers should
// match with errors.Is; decode errors carry the offending field or index
// in the wrapped message.
var (
	// ErrPositionNotFound indicates a lookup for an index the grid does not hold.
	ErrPositionNotFound = errors.New("position not found")

	// ErrInvalidProfile indicates a profile document that is malformed,
	// missing required fields, or internally inconsistent.
	ErrInvalidProfile = errors.New("invalid profile")
)
