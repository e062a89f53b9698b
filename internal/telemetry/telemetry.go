// Package telemetry records per-tick aggregate statistics as CSV.
package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"spread-ca/internal/engine"
	"spread-ca/internal/metric"
)

// TickRecord is one CSV row.
type TickRecord struct {
	Tick     uint64  `csv:"tick"`
	UnixMS   int64   `csv:"unix_ms"`
	Total    int64   `csv:"total"`
	Mean     float64 `csv:"mean"`
	StdDev   float64 `csv:"stddev"`
	Max      float64 `csv:"max"`
	Nonzero  int     `csv:"nonzero"`
	Sim      string  `csv:"sim"`
	Interval int64   `csv:"interval_ms"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r TickRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("tick", r.Tick),
		slog.Int64("total", r.Total),
		slog.Float64("max", r.Max),
		slog.Int("nonzero", r.Nonzero),
	)
}

// Recorder writes every Nth tick to a CSV stream and implements
// engine.Observer.
type Recorder struct {
	w             io.Writer
	closer        io.Closer
	sim           string
	every         uint64
	headerWritten bool
	rows          int
	log           *slog.Logger
}

var _ engine.Observer = (*Recorder)(nil)

// NewRecorder writes to w. every < 1 records every tick.
func NewRecorder(w io.Writer, sim string, every int) *Recorder {
	if every < 1 {
		every = 1
	}
	return &Recorder{w: w, sim: sim, every: uint64(every), log: slog.Default()}
}

// Create opens dir/ticks.csv for writing, creating dir as needed. It returns
// nil when dir is empty, meaning telemetry is disabled.
func Create(dir, sim string, every int) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "ticks.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating ticks.csv: %w", err)
	}
	r := NewRecorder(f, sim, every)
	r.closer = f
	return r, nil
}

// SetLogger routes per-row debug logs to l.
func (r *Recorder) SetLogger(l *slog.Logger) { r.log = l }

// Rows returns the number of records written.
func (r *Recorder) Rows() int { return r.rows }

// Observe writes a row for ticks that fall on the sampling stride.
func (r *Recorder) Observe(state engine.State, s metric.Summary) error {
	if r == nil || state.Tick%r.every != 0 {
		return nil
	}
	rec := TickRecord{
		Tick:     state.Tick,
		UnixMS:   state.LastUpdate.UnixMilli(),
		Total:    s.Total,
		Mean:     s.Mean,
		StdDev:   s.StdDev,
		Max:      s.Max,
		Nonzero:  s.Nonzero,
		Sim:      r.sim,
		Interval: state.Interval.Milliseconds(),
	}
	return r.Write(rec)
}

// Write appends rec, emitting the header on the first call.
func (r *Recorder) Write(rec TickRecord) error {
	records := []TickRecord{rec}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		r.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
	}
	r.rows++
	r.log.Debug("tick recorded", "record", rec)
	return nil
}

// Close closes the underlying file when the recorder owns one.
func (r *Recorder) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ReadAll parses a ticks.csv stream back into records.
func ReadAll(in io.Reader) ([]TickRecord, error) {
	var out []TickRecord
	if err := gocsv.Unmarshal(in, &out); err != nil {
		return nil, fmt.Errorf("reading telemetry: %w", err)
	}
	return out, nil
}
