// SPDX-License-Identifier: MIT
// Package: aigfm/aiger
//
// errors.go — sentinel errors for the ASCII AIGER reader.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Parse attaches line-number context via %w at the call site.
package aiger

import "errors"

// ErrMissingHeader indicates the file has no header line at all (empty
// input), or a header line with fewer than five numbers.
var ErrMissingHeader = errors.New("aiger: missing header")

// ErrNoMagic indicates the header line does not begin with the "aag" magic.
var ErrNoMagic = errors.New("aiger: missing \"aag\" magic")

// ErrUnsupportedVersion indicates more than the five classical header
// numbers (M I L O A) were present, i.e. an AIGER 1.9 binary-extension
// header (B, C, J, F counts) that this reader does not support.
var ErrUnsupportedVersion = errors.New("aiger: unsupported header version")

// ErrTooManyLiterals indicates a literal exceeds the maximum addressable
// value implied by the header's declared max variable index M.
var ErrTooManyLiterals = errors.New("aiger: literal exceeds header bound")

// ErrMalformedLiteral indicates a body token that does not parse as a
// non-negative integer literal.
var ErrMalformedLiteral = errors.New("aiger: malformed literal")

// ErrTruncatedBody indicates the file ended before all declared inputs,
// latches, outputs, or and-gates were read.
var ErrTruncatedBody = errors.New("aiger: truncated body")

// ErrInvalidSymbolTarget indicates a symbol-table line whose first byte is
// not one of 'i', 'o', 'l', or the terminating 'c'.
var ErrInvalidSymbolTarget = errors.New("aiger: invalid symbol target")

// ErrSymbolTooShort indicates a symbol-table line with no content after
// its target byte.
var ErrSymbolTooShort = errors.New("aiger: symbol line too short")

// ErrSymbolMissingIndex indicates a symbol-table line whose target byte is
// not followed by any decimal digits.
var ErrSymbolMissingIndex = errors.New("aiger: symbol line missing index")

// ErrSymbolMissingLabel indicates a symbol-table line whose index is not
// followed by a non-empty label.
var ErrSymbolMissingLabel = errors.New("aiger: symbol line missing label")

// ErrSymbolInvalidIndex indicates a symbol-table index that is not a valid
// position for its target kind (negative, or beyond the declared count).
var ErrSymbolInvalidIndex = errors.New("aiger: symbol line invalid index")
