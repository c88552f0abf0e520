// SPDX-License-Identifier: MIT
package partition

import "errors"

// ErrEmptyModule indicates Initial was called on a Module with no nodes.
// Returned early rather than letting BFS seeding fail on a missing start
// vertex.
var ErrEmptyModule = errors.New("partition: module has no nodes")
