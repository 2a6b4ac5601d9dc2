package numeric

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// RoundingMode selects which of the two representable neighbours an inexact
// result is rounded to.
type RoundingMode int

const (
	// HalfEven rounds to the nearest neighbour, ties to the even one.
	HalfEven RoundingMode = iota
	// HalfUp rounds to the nearest neighbour, ties away from zero.
	HalfUp
	// Down truncates towards zero.
	Down
	// Up rounds away from zero.
	Up
	// Ceiling rounds towards positive infinity.
	Ceiling
	// Floor rounds towards negative infinity.
	Floor
)

var roundingNames = map[RoundingMode]string{
	HalfEven: "half_even",
	HalfUp:   "half_up",
	Down:     "down",
	Up:       "up",
	Ceiling:  "ceiling",
	Floor:    "floor",
}

// String implements fmt.Stringer.
func (m RoundingMode) String() string {
	if s, ok := roundingNames[m]; ok {
		return s
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// ParseRoundingMode maps a mode name ("half_even", "half_up", "down", "up",
// "ceiling", "floor") to its RoundingMode. Matching ignores case and accepts
// '-' in place of '_'.
func ParseRoundingMode(s string) (RoundingMode, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for m, n := range roundingNames {
		if n == name {
			return m, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "unknown rounding mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m RoundingMode) MarshalText() ([]byte, error) {
	if _, ok := roundingNames[m]; !ok {
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown rounding mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both the YAML and the
// environment loaders go through it.
func (m *RoundingMode) UnmarshalText(text []byte) error {
	parsed, err := ParseRoundingMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
