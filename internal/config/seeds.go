package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/collatz/internal/collatz"
)

var ErrSeedSyntax = errors.New("config: malformed seed")

// MaxRangeLen caps how many seeds a single range may expand to.
const MaxRangeLen = 10_000_000

// ParseSeeds turns arguments such as "6", "6,27" or "1..100..3" into an
// ordered seed list. Ranges are inclusive; the optional third part is the step.
func ParseSeeds(args []string) (collatz.Ints, error) {
	seeds := make(collatz.Ints, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			vals, err := parseField(field)
			if err != nil {
				return nil, err
			}
			seeds = append(seeds, vals...)
		}
	}
	return seeds, nil
}

func parseField(field string) ([]int64, error) {
	parts := strings.Split(field, "..")
	nums := make([]int64, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q", ErrSeedSyntax, field)
		}
		nums[i] = n
	}

	switch len(nums) {
	case 1:
		return nums, nil
	case 2, 3:
		lo, hi, step := nums[0], nums[1], int64(1)
		if len(nums) == 3 {
			step = nums[2]
		}
		if step < 1 || hi < lo {
			return nil, fmt.Errorf("%w %q: want lo..hi[..step] with lo <= hi and step >= 1", ErrSeedSyntax, field)
		}
		// unsigned span stays exact across the whole int64 range
		steps := (uint64(hi) - uint64(lo)) / uint64(step)
		if steps >= MaxRangeLen {
			return nil, fmt.Errorf("%w %q: range expands to more than %d seeds", ErrSeedSyntax, field, MaxRangeLen)
		}
		out := make([]int64, steps+1)
		for i := range out {
			out[i] = lo + int64(i)*step
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrSeedSyntax, field)
	}
}
