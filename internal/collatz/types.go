package collatz

// DefaultIterations is the sequence length used when the caller has no preference.
const DefaultIterations = 100

// Input is either a single starting value (Int) or an ordered list (Ints).
type Input interface {
	seeds() Seeds
}

// Int is a single starting value.
type Int int64

func (i Int) seeds() Seeds { return Seeds{int64(i)} }

// Ints is an ordered list of starting values; duplicates are allowed.
type Ints []int64

func (s Ints) seeds() Seeds { return Seeds(s).Clone() }

type Seeds []int64

func (s Seeds) Clone() Seeds {
	c := make(Seeds, len(s))
	copy(c, s)
	return c
}

// Matrix holds one row per iteration and one column per seed.
type Matrix [][]int64

func (m Matrix) Rows() int { return len(m) }

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Column returns the trajectory of the j-th seed.
func (m Matrix) Column(j int) []int64 {
	col := make([]int64, len(m))
	for i, row := range m {
		col[i] = row[j]
	}
	return col
}

type Stats struct {
	Seed         int64 `json:"seed" yaml:"seed"`
	StoppingTime int   `json:"stopping_time" yaml:"stopping_time"`
	Max          int64 `json:"max" yaml:"max"`
}

type Config struct {
	// MaxSteps caps the number of states walked per seed. Zero means no cap,
	// in which case a seed that never reaches 1 loops forever.
	MaxSteps int
	// Workers bounds the goroutines used by AnalyzeContext. Zero or less
	// means runtime.GOMAXPROCS(0).
	Workers int
}

func DefaultConfig() Config {
	return Config{
		MaxSteps: 0,
		Workers:  0,
	}
}
