package layout

import "errors"

// Sentinel kinds for layout errors.
var (
	// ErrColumnOverlap signals that two events sharing time ended up in
	// the same column. It indicates an internal bug, never user input.
	ErrColumnOverlap = errors.New("overlapping events share a column")
)
