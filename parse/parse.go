package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads the line-oriented format of spec.md §6 from r and returns
// the resulting Instance. The first line is the variable count N;
// subsequent lines are domain lines (first field a decimal integer) or
// constraint lines (first field a non-numeric tag).
//
// Parse returns ErrInputParse wrapped with line context for any
// malformed line, and ErrUnknownVariable if a constraint references a
// variable outside 1..N or with no domain line.
func Parse(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: empty input, expected variable count on line 1", ErrInputParse)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("%w: line 1: variable count must be an integer: %v", ErrInputParse, err)
	}

	inst := &Instance{
		N:      n,
		Origin: make(map[int][]string, n),
		Edits:  make(map[int][]Edit),
	}

	referenced := make(map[int]bool)
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if isDecimal(fields[0]) {
			if err := parseDomainLine(inst, fields, lineNo); err != nil {
				return nil, err
			}
			continue
		}

		if err := parseConstraintLine(inst, fields, lineNo, referenced); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputParse, err)
	}

	for i := range referenced {
		if i < 1 || i > inst.N {
			return nil, fmt.Errorf("%w: variable %d out of range 1..%d", ErrUnknownVariable, i, inst.N)
		}
		if _, ok := inst.Origin[i]; !ok {
			return nil, fmt.Errorf("%w: variable %d has no domain line", ErrUnknownVariable, i)
		}
	}

	return inst, nil
}

func isDecimal(tok string) bool {
	if tok == "" {
		return false
	}
	start := 0
	if tok[0] == '-' || tok[0] == '+' {
		start = 1
	}
	if start == len(tok) {
		return false
	}
	for _, r := range tok[start:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseDomainLine(inst *Instance, fields []string, lineNo int) error {
	i, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("%w: line %d: variable id must be an integer: %v", ErrInputParse, lineNo, err)
	}
	inst.Origin[i] = append([]string(nil), fields[1:]...)
	return nil
}

func parseConstraintLine(inst *Instance, fields []string, lineNo int, referenced map[int]bool) error {
	if len(fields) < 5 {
		return fmt.Errorf("%w: line %d: constraint line needs at least tag, t, op, i, j", ErrInputParse, lineNo)
	}

	t, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w: line %d: time step must be an integer: %v", ErrInputParse, lineNo, err)
	}
	opTok := fields[2]
	if len(opTok) != 1 || (opTok[0] != 'a' && opTok[0] != 'r') {
		return fmt.Errorf("%w: line %d: unknown op %q (want \"a\" or \"r\")", ErrInputParse, lineNo, opTok)
	}
	op := rune(opTok[0])

	i, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("%w: line %d: variable i must be an integer: %v", ErrInputParse, lineNo, err)
	}
	j, err := strconv.Atoi(fields[4])
	if err != nil {
		return fmt.Errorf("%w: line %d: variable j must be an integer: %v", ErrInputParse, lineNo, err)
	}
	referenced[i] = true
	referenced[j] = true

	edit := Edit{Op: op, I: i, J: j}
	if op == 'r' {
		if len(fields) != 5 {
			return fmt.Errorf("%w: line %d: retract takes no pair tokens", ErrInputParse, lineNo)
		}
	} else {
		rest := fields[5:]
		if len(rest)%2 != 0 {
			return fmt.Errorf("%w: line %d: add needs an even number of pair tokens, got %d", ErrInputParse, lineNo, len(rest))
		}
		pairs := make([][2]string, 0, len(rest)/2)
		for k := 0; k < len(rest); k += 2 {
			pairs = append(pairs, [2]string{rest[k], rest[k+1]})
		}
		edit.Pairs = pairs
	}

	inst.Edits[t] = append(inst.Edits[t], edit)
	if t > inst.MaxT {
		inst.MaxT = t
	}
	return nil
}
