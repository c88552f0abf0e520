// Package matrix provides Dense, a row-major float64 matrix. In this
// module it backs one thing only: the node x hypernet binary membership
// view exposed by module.Module.IncidenceMatrix(), a diagnostic view that
// neither the partitioner nor the CLI consults.
package matrix
