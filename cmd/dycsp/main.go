// Command dycsp is the CLI front-end named out of scope by spec.md §1:
// it reads an input file, selects DnAC-4 or DnAC-6, runs the time-step
// driver, and writes the report file. No ecosystem CLI-framework
// dependency is wired in (none appears anywhere in the retrieval pack;
// see DESIGN.md), so flag parsing uses the stdlib flag package, exactly
// as spec.md §6 describes: positional input/output paths, a -algo flag
// defaulting to "dnac4".
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/dycsp/driver"
	"github.com/katalvlaran/dycsp/engine"
	"github.com/katalvlaran/dycsp/parse"
	"github.com/katalvlaran/dycsp/propagate"
	"github.com/katalvlaran/dycsp/report"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is main's testable core: it never calls os.Exit directly so
// tests can assert on the returned code.
func run(args []string) int {
	fs := flag.NewFlagSet("dycsp", flag.ContinueOnError)
	algo := fs.String("algo", "dnac4", "propagation algorithm: dnac4 or dnac6")
	verbose := fs.Bool("verbose", false, "log skipped ReAdd/RetractInactive edits")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	positional := fs.Args()
	if len(positional) != 2 {
		fmt.Fprintln(os.Stderr, "usage: dycsp [-algo dnac4|dnac6] [-verbose] <input> <output>")
		return 2
	}
	inputPath, outputPath := positional[0], positional[1]

	if *algo != "dnac4" && *algo != "dnac6" {
		fmt.Fprintf(os.Stderr, "dycsp: unknown -algo %q (want dnac4 or dnac6)\n", *algo)
		return 2
	}

	in, err := os.Open(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dycsp: %v\n", err)
		return 1
	}
	defer in.Close()

	inst, err := parse.Parse(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dycsp: %v\n", err)
		return 1
	}

	p, err := engine.NewProblem(inst.N, inst.Origin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dycsp: %v\n", err)
		return 1
	}

	var prop propagate.Propagator
	if *algo == "dnac6" {
		prop = propagate.NewDnAC6(p)
	} else {
		prop = propagate.NewDnAC4(p)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dycsp: %v\n", err)
		return 1
	}
	defer out.Close()

	w := report.NewTextWriter(out)
	if err := driver.Run(p, prop, inst, w, driver.WithVerbose(*verbose)); err != nil {
		fmt.Fprintf(os.Stderr, "dycsp: %v\n", err)
		return 1
	}

	return 0
}
