package collatz

import (
	"errors"
	"fmt"
)

// Domain errors for engine operations.
var (
	// ErrNoSeeds indicates an empty starting set.
	ErrNoSeeds = errors.New("collatz: at least one starting value is required")

	// ErrInvalidSeed indicates a starting value that is not a positive integer.
	ErrInvalidSeed = errors.New("collatz: starting value must be a positive integer")

	// ErrInvalidIterations indicates a sequence length below one.
	ErrInvalidIterations = errors.New("collatz: iterations must be at least 1")

	// ErrNotConverged indicates a trajectory that did not reach 1 within the step cap.
	ErrNotConverged = errors.New("collatz: trajectory did not reach 1")

	// ErrOverflow indicates 3n+1 would leave the int64 range.
	ErrOverflow = errors.New("collatz: value overflows int64")
)

// InvalidSeedError reports which starting value was rejected.
type InvalidSeedError struct {
	Index int
	Seed  int64
}

func (e *InvalidSeedError) Error() string {
	return fmt.Sprintf("%v: seeds[%d] = %d", ErrInvalidSeed, e.Index, e.Seed)
}

func (e *InvalidSeedError) Unwrap() error {
	return ErrInvalidSeed
}

// NonConvergenceError wraps ErrNotConverged with the seed and the number of
// states visited before the cap was hit.
type NonConvergenceError struct {
	Seed  int64
	Steps int
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%v: seed %d after %d steps", ErrNotConverged, e.Seed, e.Steps)
}

func (e *NonConvergenceError) Unwrap() error {
	return ErrNotConverged
}

// OverflowError records where on a trajectory the overflow happened.
type OverflowError struct {
	Seed  int64
	Step  int
	Value int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: seed %d at step %d (value %d)", ErrOverflow, e.Seed, e.Step, e.Value)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}
