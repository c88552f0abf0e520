// SPDX-License-Identifier: MIT
// algorithm.go — FMAlgorithm, the FM driver: repeat FM
// passes until one returns G* <= 0. The driver never perturbs the
// partition between passes; cut is monotone non-increasing because every
// committed pass prefix had a strictly positive cumulative gain.
package partition

// FMAlgorithm mutates p in place, running FMStep until a pass returns
// G* <= 0, and returns the sequence of G* values observed (one per pass,
// including the terminating non-positive one).
func FMAlgorithm(p *Partition) []int {
	var history []int
	for {
		g := FMStep(p)
		history = append(history, g)
		if g <= 0 {
			break
		}
	}
	return history
}
