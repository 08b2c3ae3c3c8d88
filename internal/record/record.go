// Package record logs raw and filtered sensor sequences as CSV files.
//
// Files are written to a temporary file next to the destination and renamed
// into place on success, so readers never observe a partially written log.
package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/renameio"
)

// Column names.
const (
	ColTime          = "time_s"
	ColRaw           = "raw"
	ColMovingAverage = "moving_average"
	ColLowPass       = "low_pass"
)

var (
	// ErrLengthMismatch is returned when the columns of a Series differ in length.
	ErrLengthMismatch = errors.New("record: series lengths differ")
	// ErrBadHeader is returned when a CSV file does not start with the expected header.
	ErrBadHeader = errors.New("record: unexpected header")
)

// Series is a set of positionally aligned columns. LowPass may be nil.
type Series struct {
	Times         []float64
	Raw           []float64
	MovingAverage []float64
	LowPass       []float64
}

func formatTime(t float64) string  { return strconv.FormatFloat(t, 'f', 4, 64) }
func formatValue(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// WriteRaw writes the time_s,raw log.
func WriteRaw(path string, times, raw []float64) error {
	if len(times) != len(raw) {
		return fmt.Errorf("%w: times %d, raw %d", ErrLengthMismatch, len(times), len(raw))
	}
	return writeAtomic(path, func(w *csv.Writer) error {
		if err := w.Write([]string{ColTime, ColRaw}); err != nil {
			return err
		}
		for i, t := range times {
			if err := w.Write([]string{formatTime(t), formatValue(raw[i])}); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteFiltered writes the time_s,raw,moving_average[,low_pass] log. The
// low_pass column is present only when s.LowPass is non-nil.
func WriteFiltered(path string, s Series) error {
	n := len(s.Times)
	if len(s.Raw) != n || len(s.MovingAverage) != n || (s.LowPass != nil && len(s.LowPass) != n) {
		return fmt.Errorf("%w: times %d, raw %d, moving average %d, low pass %d",
			ErrLengthMismatch, n, len(s.Raw), len(s.MovingAverage), len(s.LowPass))
	}

	header := []string{ColTime, ColRaw, ColMovingAverage}
	if s.LowPass != nil {
		header = append(header, ColLowPass)
	}

	return writeAtomic(path, func(w *csv.Writer) error {
		if err := w.Write(header); err != nil {
			return err
		}
		row := make([]string, len(header))
		for i, t := range s.Times {
			row[0] = formatTime(t)
			row[1] = formatValue(s.Raw[i])
			row[2] = formatValue(s.MovingAverage[i])
			if s.LowPass != nil {
				row[3] = formatValue(s.LowPass[i])
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeAtomic(path string, fill func(w *csv.Writer) error) error {
	f, err := renameio.TempFile(filepath.Dir(path), path)
	if err != nil {
		return fmt.Errorf("record: creating %s: %w", path, err)
	}
	defer f.Cleanup()

	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("record: chmod %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := fill(w); err != nil {
		return fmt.Errorf("record: writing %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("record: writing %s: %w", path, err)
	}

	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("record: replacing %s: %w", path, err)
	}
	return nil
}

// ReadRaw reads a log produced by WriteRaw. Extra columns after raw are
// ignored, so a filtered log can be read back as well.
func ReadRaw(path string) (times, raw []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("record: opening %s: %w", path, err)
	}
	defer f.Close()

	return readRaw(f)
}

func readRaw(r io.Reader) (times, raw []float64, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("record: reading header: %w", err)
	}
	if len(header) < 2 || header[0] != ColTime || header[1] != ColRaw {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadHeader, header)
	}

	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("record: line %d: %w", line, err)
		}
		if len(rec) < 2 {
			return nil, nil, fmt.Errorf("record: line %d: want at least 2 fields, got %d", line, len(rec))
		}
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("record: line %d: %w", line, err)
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("record: line %d: %w", line, err)
		}
		times = append(times, t)
		raw = append(raw, v)
	}
	return times, raw, nil
}
