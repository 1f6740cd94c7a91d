// Package dispatch selects the channel set a metric is evaluated on and how
// per-channel scores are aggregated.
package dispatch

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects channel set and aggregation.
type Mode int

const (
	ModeLuma            Mode = iota // Y only
	ModeMeanLumaChroma              // mean of Y, U, V
	ModeMeanRGB                     // mean of R, G, B
	ModeEachLumaChroma              // Y, U, V reported separately
	ModeEachRGB                     // R, G, B reported separately
)

// DefaultMode is used when no mode argument is given.
const DefaultMode = ModeLuma

// Modes lists every valid mode in order.
var Modes = []Mode{ModeLuma, ModeMeanLumaChroma, ModeMeanRGB, ModeEachLumaChroma, ModeEachRGB}

func (m Mode) String() string {
	switch m {
	case ModeLuma:
		return "only Y"
	case ModeMeanLumaChroma:
		return "mean YUV"
	case ModeMeanRGB:
		return "mean RGB"
	case ModeEachLumaChroma:
		return "for each YUV"
	case ModeEachRGB:
		return "for each RGB"
	default:
		return "invalid"
	}
}

// Valid reports whether m is one of Modes.
func (m Mode) Valid() bool {
	return m >= ModeLuma && m <= ModeEachRGB
}

// ParseMode converts a positional mode argument.
func ParseMode(s string) (Mode, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InvalidModeError{Value: s}
	}
	m := Mode(v)
	if !m.Valid() {
		return 0, &InvalidModeError{Value: s}
	}
	return m, nil
}

// ErrInvalidMode matches any *InvalidModeError via errors.Is.
var ErrInvalidMode = &InvalidModeError{}

// InvalidModeError is returned for a mode outside 0-4 or a non-integer mode.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	if e.Value == "" {
		return "invalid mode"
	}
	return fmt.Sprintf("invalid mode %q (want 0-4)", e.Value)
}

func (e *InvalidModeError) Is(target error) bool {
	_, ok := target.(*InvalidModeError)
	return ok
}

// Usage renders the mode table shown in command help.
func Usage() string {
	var sb strings.Builder
	for i, m := range Modes {
		if i == 0 {
			fmt.Fprintf(&sb, "mode %d: %s\n", int(m), m)
			continue
		}
		fmt.Fprintf(&sb, "     %d: %s\n", int(m), m)
	}
	return sb.String()
}
