// SPDX-License-Identifier: MIT
// Package: aigfm/aiger
//
// parse.go — the ASCII AIGER reader.
//
// Grammar:
//
//	aag M I L O A
//	<I input literals>
//	<L latch lines: "cur next">
//	<O output literals>
//	<A and-gate lines: "out a b">
//	[symbol table: lines "i<idx> label" / "o<idx> label" / "l<idx> label"]
//	[c-line terminates the symbol table; anything after is a free comment]
//
// "#" starts a trailing line comment anywhere in the body. Blank lines in
// the body are skipped. The header itself is exactly one line with the
// "aag" magic followed by exactly five decimal numbers; fewer is reported
// as ErrMissingHeader, and a sixth number would belong to the AIGER 1.9
// binary-extension header (B, C, J, F) which this reader rejects outright
// rather than silently truncating.
package aiger

import (
	"fmt"
	"strconv"
	"strings"
)

const magic = "aag"

// Parse reads the full contents of an ASCII aag file and returns its typed
// representation, or the first error encountered.
//
// Complexity: O(n) in the length of content.
func Parse(content string) (*Aiger, error) {
	lines := splitLines(content)

	// Stage 1: header.
	hdrIdx, hdr, err := parseHeader(lines)
	if err != nil {
		return nil, err
	}

	a := &Aiger{Header: hdr}
	cur := hdrIdx + 1

	// Stage 2: inputs.
	cur, a.Inputs, err = readLits(lines, cur, hdr.NumIn, hdr.MaxVar)
	if err != nil {
		return nil, err
	}

	// Stage 3: latches (parsed, never consumed by the netlist builder).
	cur, a.Latches, err = readLatches(lines, cur, hdr.NumLatch, hdr.MaxVar)
	if err != nil {
		return nil, err
	}

	// Stage 4: outputs.
	cur, a.Outputs, err = readLits(lines, cur, hdr.NumOut, hdr.MaxVar)
	if err != nil {
		return nil, err
	}

	// Stage 5: and-gates.
	cur, a.Ands, err = readAnds(lines, cur, hdr.NumAnd, hdr.MaxVar)
	if err != nil {
		return nil, err
	}

	// Stage 6: optional symbol table, terminated by a "c" line or EOF.
	a.InputLabels, a.LatchLabels, a.OutputLabels, err = readSymbols(lines, cur, hdr)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// splitLines splits content into raw lines, stripping "#" comments and
// trailing whitespace but preserving blank lines so error messages can
// report accurate 1-based line numbers.
func splitLines(content string) []string {
	raw := strings.Split(content, "\n")
	out := make([]string, len(raw))
	for i, l := range raw {
		if idx := strings.IndexByte(l, '#'); idx >= 0 {
			l = l[:idx]
		}
		out[i] = strings.TrimRight(l, " \t\r")
	}
	return out
}

// nextNonBlank returns the index of the next non-empty line at or after
// from, or -1 if none remains.
func nextNonBlank(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "" {
			return i
		}
	}
	return -1
}

func parseHeader(lines []string) (int, Header, error) {
	idx := nextNonBlank(lines, 0)
	if idx < 0 {
		return 0, Header{}, ErrMissingHeader
	}
	fields := strings.Fields(lines[idx])
	if len(fields) == 0 || fields[0] != magic {
		return 0, Header{}, ErrNoMagic
	}
	nums := fields[1:]
	if len(nums) > 5 {
		return 0, Header{}, ErrUnsupportedVersion
	}
	if len(nums) < 5 {
		return 0, Header{}, fmt.Errorf("aiger: header line %d: %w", idx+1, ErrMissingHeader)
	}

	var vals [5]uint64
	for i, tok := range nums {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return 0, Header{}, fmt.Errorf("aiger: header line %d: %w", idx+1, ErrMalformedLiteral)
		}
		vals[i] = v
	}

	return idx, Header{
		MaxVar:   vals[0],
		NumIn:    vals[1],
		NumLatch: vals[2],
		NumOut:   vals[3],
		NumAnd:   vals[4],
	}, nil
}

// parseLit validates that tok is a well-formed literal within the bound
// implied by maxVar (literal <= 2*maxVar+1).
func parseLit(tok string, lineNo int, maxVar uint64) (Lit, error) {
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("aiger: line %d: %w", lineNo, ErrMalformedLiteral)
	}
	if v > 2*maxVar+1 {
		return 0, fmt.Errorf("aiger: line %d: literal %d: %w", lineNo, v, ErrTooManyLiterals)
	}
	return Lit(v), nil
}

func readLits(lines []string, from int, n, maxVar uint64) (int, []Lit, error) {
	out := make([]Lit, 0, n)
	cur := from
	for i := uint64(0); i < n; i++ {
		cur = nextNonBlank(lines, cur)
		if cur < 0 {
			return 0, nil, ErrTruncatedBody
		}
		fields := strings.Fields(lines[cur])
		if len(fields) != 1 {
			return 0, nil, fmt.Errorf("aiger: line %d: %w", cur+1, ErrMalformedLiteral)
		}
		lit, err := parseLit(fields[0], cur+1, maxVar)
		if err != nil {
			return 0, nil, err
		}
		out = append(out, lit)
		cur++
	}
	return cur, out, nil
}

func readLatches(lines []string, from int, n, maxVar uint64) (int, []Latch, error) {
	out := make([]Latch, 0, n)
	cur := from
	for i := uint64(0); i < n; i++ {
		cur = nextNonBlank(lines, cur)
		if cur < 0 {
			return 0, nil, ErrTruncatedBody
		}
		fields := strings.Fields(lines[cur])
		if len(fields) < 2 {
			return 0, nil, fmt.Errorf("aiger: line %d: %w", cur+1, ErrMalformedLiteral)
		}
		curLit, err := parseLit(fields[0], cur+1, maxVar)
		if err != nil {
			return 0, nil, err
		}
		nextLit, err := parseLit(fields[1], cur+1, maxVar)
		if err != nil {
			return 0, nil, err
		}
		out = append(out, Latch{Cur: curLit, Next: nextLit})
		cur++
	}
	return cur, out, nil
}

func readAnds(lines []string, from int, n, maxVar uint64) (int, []AndGate, error) {
	out := make([]AndGate, 0, n)
	cur := from
	for i := uint64(0); i < n; i++ {
		cur = nextNonBlank(lines, cur)
		if cur < 0 {
			return 0, nil, ErrTruncatedBody
		}
		fields := strings.Fields(lines[cur])
		if len(fields) != 3 {
			return 0, nil, fmt.Errorf("aiger: line %d: %w", cur+1, ErrMalformedLiteral)
		}
		out1, err := parseLit(fields[0], cur+1, maxVar)
		if err != nil {
			return 0, nil, err
		}
		a, err := parseLit(fields[1], cur+1, maxVar)
		if err != nil {
			return 0, nil, err
		}
		b, err := parseLit(fields[2], cur+1, maxVar)
		if err != nil {
			return 0, nil, err
		}
		out = append(out, AndGate{Out: out1, A: a, B: b})
		cur++
	}
	return cur, out, nil
}

// readSymbols consumes the optional symbol table starting at line from,
// stopping at a line beginning with "c" or at EOF. Each retained line must
// begin with 'i', 'o', or 'l'.
func readSymbols(lines []string, from int, hdr Header) (map[int]string, map[int]string, map[int]string, error) {
	inLabels := make(map[int]string)
	latLabels := make(map[int]string)
	outLabels := make(map[int]string)

	cur := from
	for {
		cur = nextNonBlank(lines, cur)
		if cur < 0 {
			break
		}
		line := strings.TrimSpace(lines[cur])
		switch line[0] {
		case 'c':
			return inLabels, latLabels, outLabels, nil
		case 'i', 'o', 'l':
			if err := parseSymbolLine(line, cur+1, hdr, inLabels, latLabels, outLabels); err != nil {
				return nil, nil, nil, err
			}
		default:
			return nil, nil, nil, fmt.Errorf("aiger: line %d: %w", cur+1, ErrInvalidSymbolTarget)
		}
		cur++
	}
	return inLabels, latLabels, outLabels, nil
}

func parseSymbolLine(line string, lineNo int, hdr Header, inLabels, latLabels, outLabels map[int]string) error {
	target := line[0]
	rest := line[1:]
	if rest == "" {
		return fmt.Errorf("aiger: line %d: %w", lineNo, ErrSymbolTooShort)
	}

	digitEnd := 0
	for digitEnd < len(rest) && rest[digitEnd] >= '0' && rest[digitEnd] <= '9' {
		digitEnd++
	}
	if digitEnd == 0 {
		return fmt.Errorf("aiger: line %d: %w", lineNo, ErrSymbolMissingIndex)
	}

	idx, err := strconv.Atoi(rest[:digitEnd])
	if err != nil {
		return fmt.Errorf("aiger: line %d: %w", lineNo, ErrSymbolMissingIndex)
	}

	label := strings.TrimSpace(rest[digitEnd:])
	if label == "" {
		return fmt.Errorf("aiger: line %d: %w", lineNo, ErrSymbolMissingLabel)
	}

	var bound uint64
	var dst map[int]string
	switch target {
	case 'i':
		bound, dst = hdr.NumIn, inLabels
	case 'o':
		bound, dst = hdr.NumOut, outLabels
	case 'l':
		bound, dst = hdr.NumLatch, latLabels
	}
	if idx < 0 || uint64(idx) >= bound {
		return fmt.Errorf("aiger: line %d: %w", lineNo, ErrSymbolInvalidIndex)
	}

	dst[idx] = label
	return nil
}
