package common

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

func inRange[T constraints.Integer](v, lo, hi T) bool {
	return lo <= v && v <= hi
}

// checkRange is the single fallible path for turning raw integers into
// board coordinates and piece identities.
func checkRange[T constraints.Integer](what string, v, lo, hi T) error {
	if !inRange(v, lo, hi) {
		return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrOutOfRange, what, v, lo, hi)
	}
	return nil
}

func absDelta[T constraints.Integer](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}
