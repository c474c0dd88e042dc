// Package report writes the human-readable output artifact of spec.md
// §6: a parameters header, then per time step the edits applied, the
// live domains after propagation, and either the resulting complete
// assignment or a "no assignment" notice.
//
// Formatting follows the original Python reference's banners — a
// "---CSP Parameters---" header and a "---Time: t = N---" line per
// step (see SUPPLEMENTED FEATURES) — since spec.md §6 leaves exact
// formatting unspecified beyond "one fact per line" and pinning a
// concrete format gives this package something testable. Writer is a
// thin io.Writer wrapper using fmt.Fprintf, matching the teacher's own
// flow.FlowOptions.Verbose convention of writing progress with fmt
// rather than a structured logging library (flow imports none).
package report
