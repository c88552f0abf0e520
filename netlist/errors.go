// SPDX-License-Identifier: MIT
package netlist

import "errors"

// ErrNilAiger indicates FromAiger was called with a nil *aiger.Aiger.
var ErrNilAiger = errors.New("netlist: aiger is nil")
