package relation

import "errors"

// ErrInvalidDimensions indicates that a Table was requested with an empty
// row or column domain.
var ErrInvalidDimensions = errors.New("relation: row and column domains must be non-empty")

// ErrUnknownValue indicates Set/Has was called with a token outside the
// table's row or column domain.
var ErrUnknownValue = errors.New("relation: value outside declared domain")
