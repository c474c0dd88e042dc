package parse

import "errors"

// ErrInputParse is spec.md §7's InputParse error kind: a malformed
// line, a non-integer where an integer is required, an unknown op, or
// an odd-length pair-token sequence on an add. Fatal; callers should
// abort before any propagation.
var ErrInputParse = errors.New("parse: malformed input")

// ErrUnknownVariable is spec.md §7's UnknownVariable error kind: a
// constraint line references a variable outside 1..N or with no domain
// line. Fatal.
var ErrUnknownVariable = errors.New("parse: constraint references unknown variable")
