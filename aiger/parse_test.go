// SPDX-License-Identifier: MIT
package aiger_test

import (
	"errors"
	"testing"

	"github.com/jaschutte/aigfm/aiger"
	"github.com/stretchr/testify/require"
)

// TestParse_HalfAdder verifies the canonical half-adder scenario from the
// end-to-end test list: 2 inputs, 0 latches, 2 outputs, 3 and-gates.
func TestParse_HalfAdder(t *testing.T) {
	const src = `aag 5 2 0 2 3
2
4
10
6
6 2 4
8 3 5
10 6 8
i0 a
i1 b
o0 sum
o1 carry
c
half adder
`
	a, err := aiger.Parse(src)
	require.NoError(t, err)
	require.Equal(t, uint64(5), a.Header.MaxVar)
	require.Len(t, a.Inputs, 2)
	require.Len(t, a.Outputs, 2)
	require.Len(t, a.Ands, 3)
	require.Equal(t, "a", a.InputLabels[0])
	require.Equal(t, "carry", a.OutputLabels[1])
}

// TestParse_Degenerate verifies "aag 0 0 0 0 0" parses to an empty graph.
func TestParse_Degenerate(t *testing.T) {
	a, err := aiger.Parse("aag 0 0 0 0 0\n")
	require.NoError(t, err)
	require.Empty(t, a.Inputs)
	require.Empty(t, a.Outputs)
	require.Empty(t, a.Latches)
	require.Empty(t, a.Ands)
}

// TestParse_SharedVariableBothPolarities covers a single and-gate whose
// inputs are both polarities of the same variable (literals 2 and 3, i.e.
// variable 1), under the header "aag 2 2 0 0 1" with no outputs.
func TestParse_SharedVariableBothPolarities(t *testing.T) {
	const src = `aag 2 2 0 0 1
2
4
4 2 3
`
	a, err := aiger.Parse(src)
	require.NoError(t, err)
	require.Len(t, a.Ands, 1)
	require.Equal(t, aiger.Lit(2), a.Ands[0].A)
	require.Equal(t, aiger.Lit(3), a.Ands[0].B)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", aiger.ErrMissingHeader},
		{"no magic", "xyz 0 0 0 0 0\n", aiger.ErrNoMagic},
		{"too many header numbers", "aag 0 0 0 0 0 0 0 0 0\n", aiger.ErrUnsupportedVersion},
		{"bad literal", "aag 1 1 0 0 0\nnotanumber\n", aiger.ErrMalformedLiteral},
		{"literal too large", "aag 1 1 0 0 0\n9\n", aiger.ErrTooManyLiterals},
		{"truncated body", "aag 1 1 0 0 0\n", aiger.ErrTruncatedBody},
		{"bad symbol target", "aag 0 0 0 0 0\nx0 foo\n", aiger.ErrInvalidSymbolTarget},
		{"symbol missing index", "aag 1 1 0 0 0\n2\ni foo\n", aiger.ErrSymbolMissingIndex},
		{"symbol missing label", "aag 1 1 0 0 0\n2\ni0\n", aiger.ErrSymbolMissingLabel},
		{"symbol index out of range", "aag 1 1 0 0 0\n2\ni5 foo\n", aiger.ErrSymbolInvalidIndex},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := aiger.Parse(tc.src)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestParse_CommentsAndBlankLines verifies "#" trailing comments and blank
// body lines are tolerated.
func TestParse_CommentsAndBlankLines(t *testing.T) {
	const src = `aag 1 1 0 1 0 # header
2 # the sole input

2 # the sole output
`
	a, err := aiger.Parse(src)
	require.NoError(t, err)
	require.Equal(t, []aiger.Lit{2}, a.Inputs)
	require.Equal(t, []aiger.Lit{2}, a.Outputs)
}
