package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrInvalidWindowSize = errors.New("invalid window size")

// WindowSize is the width of an aggregation window, in the unit of the time
// column it is applied to (milliseconds for every built-in source).
type WindowSize float64

func NewWindowSize(width float64) (WindowSize, error) {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWindowSize, width)
	}
	return WindowSize(width), nil
}

// Bucket returns the window start floor(t/w)*w for t.
func (w WindowSize) Bucket(t float64) float64 {
	width := float64(w)
	return math.Floor(t/width) * width
}

func (w WindowSize) String() string {
	return strconv.FormatFloat(float64(w), 'f', -1, 64) + "ms"
}
