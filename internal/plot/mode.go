package plot

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects how stopping times are drawn.
type Mode int

const (
	ModeNone Mode = iota
	ModeScatter
	ModeHistogram
)

func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeHistogram:
		return "hist"
	default:
		return "none"
	}
}

var ErrInvalidMode = errors.New("plot: invalid mode")

type ModeError struct {
	Value string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid plot mode %q: use none, scatter or hist", e.Value)
}

func (e *ModeError) Unwrap() error { return ErrInvalidMode }

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "false", "off":
		return ModeNone, nil
	case "scatter":
		return ModeScatter, nil
	case "hist", "histogram":
		return ModeHistogram, nil
	}
	return ModeNone, &ModeError{Value: s}
}
