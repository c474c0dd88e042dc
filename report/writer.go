package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/dycsp/parse"
	"github.com/katalvlaran/dycsp/search"
)

// Writer is anything that can render a solve's progress as text.
// driver.Run takes a Writer so it never depends on an *os.File
// directly.
type Writer interface {
	Header(n int, origin map[int][]string) error
	StepBanner(t int) error
	LogEdit(e parse.Edit) error
	Domains(n int, live map[int][]string) error
	Assignment(n int, a search.Assignment, ok bool) error
	Footer(elapsed time.Duration) error
}

// TextWriter is the concrete Writer, rendering to an io.Writer exactly
// as the original Python reference does.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter wraps w as a Writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// Header prints the parameters banner: the variable count and each
// variable's origin domain, in index order.
func (t *TextWriter) Header(n int, origin map[int][]string) error {
	if _, err := fmt.Fprintln(t.w, "---CSP Parameters---"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(t.w, "Variables: %d\n", n); err != nil {
		return err
	}
	for i := 1; i <= n; i++ {
		if _, err := fmt.Fprintf(t.w, "Domain(%d): %s\n", i, strings.Join(origin[i], ", ")); err != nil {
			return err
		}
	}
	return nil
}

// StepBanner prints the per-time-step banner.
func (t *TextWriter) StepBanner(step int) error {
	_, err := fmt.Fprintf(t.w, "---Time: t = %d---\n", step)
	return err
}

// LogEdit renders one applied edit.
func (t *TextWriter) LogEdit(e parse.Edit) error {
	switch e.Op {
	case 'a':
		pairs := make([]string, 0, len(e.Pairs))
		for _, p := range e.Pairs {
			pairs = append(pairs, fmt.Sprintf("(%s,%s)", p[0], p[1]))
		}
		_, err := fmt.Fprintf(t.w, "add(%d,%d): %s\n", e.I, e.J, strings.Join(pairs, " "))
		return err
	default:
		_, err := fmt.Fprintf(t.w, "retract(%d,%d)\n", e.I, e.J)
		return err
	}
}

// Domains renders the live domain of every variable 1..n, one per
// line, values comma-separated.
func (t *TextWriter) Domains(n int, live map[int][]string) error {
	for i := 1; i <= n; i++ {
		if _, err := fmt.Fprintf(t.w, "D(%d) = {%s}\n", i, strings.Join(live[i], ", ")); err != nil {
			return err
		}
	}
	return nil
}

// Assignment renders the complete assignment in variable-index order,
// or a "no assignment" notice.
func (t *TextWriter) Assignment(n int, a search.Assignment, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(t.w, "no assignment")
		return err
	}
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, fmt.Sprintf("%d: %s", i, a[i]))
	}
	_, err := fmt.Fprintf(t.w, "assignment: (%s)\n", strings.Join(parts, ", "))
	return err
}

// Footer prints the wall-clock timing line (spec.md SUPPLEMENTED
// FEATURES: driver.Options.Timing gates whether this is called at all).
func (t *TextWriter) Footer(elapsed time.Duration) error {
	_, err := fmt.Fprintf(t.w, "\nTime elapsed: %s\n", elapsed)
	return err
}
