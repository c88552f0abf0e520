// SPDX-License-Identifier: MIT
package aiger_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jaschutte/aigfm/aiger"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzParse drives a structured consumer over the aag grammar: rather than
// handing Parse raw bytes (which would spend the whole corpus rejecting
// ErrNoMagic), go-fuzz-utils carves the fuzzer-provided bytes into the
// shape of a well-formed header plus a body of literal-like tokens, so
// mutation pressure lands on the interesting boundaries (M/I/L/O/A counts,
// literal values near 2*M+1, and symbol-table lines).
func FuzzParse(f *testing.F) {
	f.Add([]byte("aag 5 2 0 2 3\n2\n4\n10\n6\n6 2 4\n8 3 5\n10 6 8\n"))
	f.Add([]byte("aag 0 0 0 0 0\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		m, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}
		numIn, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}
		numOut, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}
		numAnd, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "aag %d %d 0 %d %d\n", m%64, numIn%8, numOut%8, numAnd%8)
		for i := uint16(0); i < numIn%8; i++ {
			v, _ := tp.GetUint16()
			fmt.Fprintf(&sb, "%d\n", v)
		}
		for i := uint16(0); i < numOut%8; i++ {
			v, _ := tp.GetUint16()
			fmt.Fprintf(&sb, "%d\n", v)
		}
		for i := uint16(0); i < numAnd%8; i++ {
			out, _ := tp.GetUint16()
			a, _ := tp.GetUint16()
			b, _ := tp.GetUint16()
			fmt.Fprintf(&sb, "%d %d %d\n", out, a, b)
		}

		// Parse must never panic, regardless of how malformed the body is;
		// any returned error is acceptable.
		_, _ = aiger.Parse(sb.String())
	})
}
