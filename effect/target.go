package effect

import (
	"fmt"
	"strconv"
	"strings"
)

type targetMode int

const (
	modeNone targetMode = iota
	modeRatio
	modeAbsolute
)

// Target describes how an effect sizes its output: either as scale
// factors relative to the current dimensions (ratio mode) or as exact
// pixel dimensions (absolute mode).
//
// The zero value is unclassified and rejected by the effect constructors;
// build targets with Ratio, Ratios, Size, TargetFrom or ParseTarget.
type Target struct {
	mode           targetMode
	ratioW, ratioH float64
	width, height  int
}

// Ratio builds a ratio-mode target scaling both axes by r.
func Ratio(r float64) Target {
	return Ratios(r, r)
}

// Ratios builds a ratio-mode target with independent per-axis factors.
func Ratios(rw, rh float64) Target {
	return Target{mode: modeRatio, ratioW: rw, ratioH: rh}
}

// Size builds an absolute-mode target with exact pixel dimensions.
func Size(width, height int) Target {
	return Target{mode: modeAbsolute, width: width, height: height}
}

// IsRatio reports whether the target is in ratio mode.
func (t Target) IsRatio() bool { return t.mode == modeRatio }

// TargetFrom classifies loosely typed target values the way a dynamic
// call site would:
//
//   - a single float64 → uniform ratio on both axes
//   - two float64 values → independent per-axis ratios
//   - two int values → absolute pixel dimensions
//
// Anything else — a single int, a mixed int/float pair, the wrong arity —
// fails with ErrInvalidTarget. Classification only inspects shape; value
// range checks happen when the effect is applied.
func TargetFrom(values ...interface{}) (Target, error) {
	switch len(values) {
	case 1:
		if r, ok := values[0].(float64); ok {
			return Ratio(r), nil
		}
	case 2:
		if rw, ok := values[0].(float64); ok {
			if rh, ok := values[1].(float64); ok {
				return Ratios(rw, rh), nil
			}
		} else if w, ok := values[0].(int); ok {
			if h, ok := values[1].(int); ok {
				return Size(w, h), nil
			}
		}
	}
	return Target{}, fmt.Errorf("%w: %v", ErrInvalidTarget, values)
}

// ParseTarget parses a textual target such as "0.5", "0.5,0.25" or
// "300,200". A value containing a decimal point is a ratio, otherwise an
// absolute dimension; the same classification rules as TargetFrom apply,
// so mixing the two kinds in one pair fails with ErrInvalidTarget.
func ParseTarget(s string) (Target, error) {
	parts := strings.Split(s, ",")
	values := make([]interface{}, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if strings.Contains(p, ".") {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
			}
			values = append(values, f)
		} else {
			n, err := strconv.Atoi(p)
			if err != nil {
				return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
			}
			values = append(values, n)
		}
	}
	return TargetFrom(values...)
}
