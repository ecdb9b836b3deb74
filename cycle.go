package glyphgrad

import (
	"fmt"
	"math"
	"strings"
)

// CycleMode controls how a gradient repeats across its span.
type CycleMode int

// Cycle modes.
const (
	CycleNone    CycleMode = iota // single pass from start to end
	CycleRepeat                   // start→end, start→end, ...
	CycleReflect                  // start→end→start→... (triangle wave)
)

// String returns the configuration name of the mode.
func (m CycleMode) String() string {
	switch m {
	case CycleNone:
		return "none"
	case CycleRepeat:
		return "repeat"
	case CycleReflect:
		return "reflect"
	default:
		return fmt.Sprintf("CycleMode(%d)", int(m))
	}
}

// ParseCycleMode parses "none", "repeat" or "reflect" (case-insensitive).
// The empty string is "none".
func ParseCycleMode(s string) (CycleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CycleNone, nil
	case "repeat":
		return CycleRepeat, nil
	case "reflect":
		return CycleReflect, nil
	}
	return CycleNone, &ConfigError{Field: "mode", Value: s, Reason: "want none, repeat or reflect"}
}

// Remap reshapes ratio into count cycles according to mode. It is the
// identity when mode is CycleNone or count is at most 1.
func Remap(ratio float64, count int, mode CycleMode) float64 {
	if mode == CycleNone || count <= 1 {
		return ratio
	}
	scaled := ratio * float64(count)
	f := math.Mod(scaled, 1)
	switch mode {
	case CycleRepeat:
		return f
	case CycleReflect:
		if int(math.Floor(scaled))%2 == 0 {
			return f
		}
		return 1 - f
	}
	return ratio
}
