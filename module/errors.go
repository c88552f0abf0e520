// SPDX-License-Identifier: MIT
package module

import "errors"

// ErrNilNetlist indicates FromNetlist was called with a nil *netlist.Netlist.
var ErrNilNetlist = errors.New("module: netlist is nil")
