// Package parse reads the line-oriented input file format of spec.md
// §6: a variable count, one domain line per variable, and zero or more
// constraint lines scheduling adds and retracts across time steps.
//
// This is plumbing, not core (spec.md §1 names it an external
// collaborator): it hands the core the data it needs — an Instance —
// and nothing else. No ecosystem dependency in the retrieval pack does
// line-oriented custom-format parsing, so Parse is built directly on
// bufio.Scanner and strconv, the way the teacher reaches for stdlib
// lexical helpers rather than a parser-combinator library wherever no
// such library appears in its own dependency stack.
package parse
