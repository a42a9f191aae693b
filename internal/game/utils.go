package game

import (
	"math"
	"strconv"
	"time"
)

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatValue prints a parameter value the way a slider readout shows it:
// shortest representation, no trailing zeros.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// formatMillis formats a duration as milliseconds with one decimal.
func formatMillis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 1, 64) + "ms"
}
