package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultDimension is the axis length used when none is configured.
const DefaultDimension = 1024

// ErrDimension is returned for an axis that cannot span [0, 1].
var ErrDimension = errors.New("dimension must be greater than 1")

// NormalizedAxis returns d evenly spaced values over [0, 1], computed as
// i/(d-1) in float32.
func NormalizedAxis(d int) ([]float32, error) {
	if d < 2 {
		return nil, errors.Wrapf(ErrDimension, "got %d", d)
	}
	axis := make([]float32, d)
	last := float32(d - 1)
	for i := range axis {
		axis[i] = float32(i) / last
	}
	return axis, nil
}

// Axes returns the x and y axes for dimension d. They hold equal values
// but never share storage.
func Axes(d int) (x, y []float32, err error) {
	if x, err = NormalizedAxis(d); err != nil {
		return nil, nil, err
	}
	y = make([]float32, len(x))
	copy(y, x)
	return x, y, nil
}

// FormatCoord renders v with the fewest digits that read back as the
// same float32. Whole numbers keep a ".0" and values under 1e-4 switch to
// exponent form, e.g. "0.0", "0.33333334", "1e-05".
func FormatCoord(v float32) string {
	if v != 0 && v < 1e-4 && v > -1e-4 {
		return strconv.FormatFloat(float64(v), 'e', -1, 32)
	}
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
