package collatz

import "math"

// maxTriple is the largest n for which 3n+1 still fits in int64.
const maxTriple = (math.MaxInt64 - 1) / 3

// Step applies one Collatz step: n/2 for even n, 3n+1 for odd n.
func Step(n int64) int64 {
	if n%2 == 0 {
		return n / 2
	}
	return n*3 + 1
}

// checkedStep is Step with overflow detection for the odd branch.
func checkedStep(n int64) (int64, bool) {
	if n%2 == 0 {
		return n / 2, true
	}
	if n > maxTriple {
		return n, false
	}
	return n*3 + 1, true
}
