package propagate

import "errors"

// ErrNotActive is returned by OnRetract when {i,j} is not currently
// active. Per spec.md §7 (RetractInactive) this is not fatal — the
// driver logs a warning and skips.
var ErrNotActive = errors.New("propagate: constraint not active")
