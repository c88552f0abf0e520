// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site;
//     implementations attach context with %w at the call site instead.
//   • Constructors MUST NOT panic at runtime.

package builder

import "errors"

// ErrTooFewVertices indicates that a constructor's n parameter is smaller
// than the allowed minimum for the requested topology.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that BuildGraph was handed a nil Constructor.
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix call site */ }.
var ErrConstructFailed = errors.New("builder: construction failed")
