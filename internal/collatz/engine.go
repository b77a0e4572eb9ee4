package collatz

// Engine computes trajectory properties for a fixed starting set. The set is
// copied on construction and never mutated; every call recomputes from it.
type Engine struct {
	seeds Seeds
	cfg   Config
}

func New(in Input, cfg Config) (*Engine, error) {
	if in == nil {
		return nil, ErrNoSeeds
	}
	seeds := in.seeds()
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	for i, s := range seeds {
		if s <= 0 {
			return nil, &InvalidSeedError{Index: i, Seed: s}
		}
	}
	if cfg.MaxSteps < 0 {
		cfg.MaxSteps = 0
	}
	return &Engine{seeds: seeds, cfg: cfg}, nil
}

func (e *Engine) Seeds() Seeds { return e.seeds.Clone() }

// Sequence returns exactly iterations rows. Row 0 is the starting set and each
// later row applies Step to the row above, so seeds that reach 1 early keep
// cycling through 4, 2, 1.
func (e *Engine) Sequence(iterations int) (Matrix, error) {
	if iterations < 1 {
		return nil, ErrInvalidIterations
	}

	m := make(Matrix, iterations)
	m[0] = make([]int64, len(e.seeds))
	copy(m[0], e.seeds)

	for i := 1; i < iterations; i++ {
		prev := m[i-1]
		row := make([]int64, len(prev))
		for j, v := range prev {
			next, ok := checkedStep(v)
			if !ok {
				return nil, &OverflowError{Seed: e.seeds[j], Step: i, Value: v}
			}
			row[j] = next
		}
		m[i] = row
	}

	return m, nil
}

// StoppingTimes returns, per seed, the number of states up to and including
// the first 1. The seed itself counts as the first state.
func (e *Engine) StoppingTimes() ([]int, error) {
	times := make([]int, len(e.seeds))
	for i, s := range e.seeds {
		st, err := e.walk(s)
		if err != nil {
			return nil, err
		}
		times[i] = st.StoppingTime
	}
	return times, nil
}

// MaxValues returns, per seed, the largest value seen while taking as many
// steps as the seed's stopping time. That walk ends one step past the first 1,
// so seeds 1 and 2 report 4. The result is never below the seed.
func (e *Engine) MaxValues() ([]int64, error) {
	maxes := make([]int64, len(e.seeds))
	for i, s := range e.seeds {
		st, err := e.walk(s)
		if err != nil {
			return nil, err
		}
		maxes[i] = st.Max
	}
	return maxes, nil
}

// Analyze computes stopping time and maximum for every seed in one pass.
func (e *Engine) Analyze() ([]Stats, error) {
	out := make([]Stats, len(e.seeds))
	for i, s := range e.seeds {
		st, err := e.walk(s)
		if err != nil {
			return nil, err
		}
		out[i] = st
	}
	return out, nil
}

func (e *Engine) walk(seed int64) (Stats, error) {
	st := Stats{Seed: seed, StoppingTime: 1, Max: seed}
	v := seed
	for v != 1 {
		if e.cfg.MaxSteps > 0 && st.StoppingTime >= e.cfg.MaxSteps {
			return Stats{}, &NonConvergenceError{Seed: seed, Steps: st.StoppingTime}
		}
		next, ok := checkedStep(v)
		if !ok {
			return Stats{}, &OverflowError{Seed: seed, Step: st.StoppingTime, Value: v}
		}
		v = next
		st.StoppingTime++
		if v >= st.Max {
			st.Max = v
		}
	}
	// the max walk takes StoppingTime steps, so its last step leaves 1
	if next := Step(v); next >= st.Max {
		st.Max = next
	}
	return st, nil
}

// Trajectory returns the path from seed down to the first 1, inclusive.
// maxSteps <= 0 disables the cap.
func Trajectory(seed int64, maxSteps int) ([]int64, error) {
	if seed <= 0 {
		return nil, &InvalidSeedError{Seed: seed}
	}
	path := []int64{seed}
	v := seed
	for v != 1 {
		if maxSteps > 0 && len(path) >= maxSteps {
			return path, &NonConvergenceError{Seed: seed, Steps: len(path)}
		}
		next, ok := checkedStep(v)
		if !ok {
			return path, &OverflowError{Seed: seed, Step: len(path), Value: v}
		}
		v = next
		path = append(path, v)
	}
	return path, nil
}
