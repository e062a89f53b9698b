// Package metric reduces simulation grids to scalar observations.
package metric

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Total returns floor(sum of all values). An empty slice totals zero.
func Total(values []float64) int64 {
	if len(values) == 0 {
		return 0
	}
	return int64(math.Floor(floats.Sum(values)))
}

// Summary holds distribution statistics for one grid at one tick.
type Summary struct {
	Total   int64
	Sum     float64
	Mean    float64
	StdDev  float64
	Max     float64
	Nonzero int
}

// Summarize computes a Summary over values.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := Summary{
		Sum: floats.Sum(values),
		Max: floats.Max(values),
	}
	s.Total = int64(math.Floor(s.Sum))
	if len(values) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	} else {
		s.Mean = values[0]
	}
	for _, v := range values {
		if v != 0 {
			s.Nonzero++
		}
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("total", s.Total),
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.StdDev),
		slog.Float64("max", s.Max),
		slog.Int("nonzero", s.Nonzero),
	)
}
