// Package stats aggregates columns of decimal scores.
package stats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/numprec"
)

var (
	ErrNoScores       = errors.New("no scores")
	ErrColumnNotFound = errors.New("column not found")
)

// utf8BOM is the byte order mark some spreadsheet exports put in front of the header.
const utf8BOM = "\ufeff"

// Summary describes a set of scores.
type Summary struct {
	Count int
	Sum   float64
	Mean  float64
	Min   float64
	Max   float64
}

// Summarize computes the summary of scores using c.
// The mean is rounded to the given number of digits after the decimal point
// using "half away from zero" rule.
func Summarize(c numprec.Calc, scores []float64, places int) (Summary, error) {
	if len(scores) == 0 {
		return Summary{}, ErrNoScores
	}
	s := Summary{
		Count: len(scores),
		Sum:   scores[0],
		Min:   scores[0],
		Max:   scores[0],
	}
	var err error
	for i, v := range scores[1:] {
		s.Sum, err = c.Add(s.Sum, v)
		if err != nil {
			return Summary{}, fmt.Errorf("adding score %v: %w", i+1, err)
		}
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean, err = mean(c, s.Sum, s.Count, places)
	if err != nil {
		return Summary{}, fmt.Errorf("computing mean: %w", err)
	}
	return s, nil
}

// mean returns sum / count rounded to places.
// The sum is scaled before dividing, because rounding a repeating quotient
// directly would rescale all of its significant digits and overflow the safe
// integer range.
func mean(c numprec.Calc, sum float64, count, places int) (float64, error) {
	base := math.Pow10(places)
	scaled, err := c.Mul(sum, base)
	if err != nil {
		return 0, err
	}
	q, err := c.Quo(scaled, float64(count))
	if err != nil {
		return 0, err
	}
	m, err := c.Quo(math.Round(q), base)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return 0, nil
	}
	return m, nil
}

// ReadScores reads scores from CSV data with a header row.
// The column is selected by header name, ignoring case and surrounding
// white space, or by zero-based index if no header matches.
// Empty cells are skipped.
func ReadScores(r io.Reader, column string) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoScores
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	idx, err := columnIndex(header, column)
	if err != nil {
		return nil, err
	}

	var scores []float64
	for row := 2; ; row++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %v: %w", row, err)
		}
		if idx >= len(record) || strings.TrimSpace(record[idx]) == "" {
			continue
		}
		v, err := numprec.Parse(record[idx])
		if err != nil {
			return nil, fmt.Errorf("row %v: %w", row, err)
		}
		scores = append(scores, v)
	}
	if len(scores) == 0 {
		return nil, ErrNoScores
	}
	return scores, nil
}

func columnIndex(header []string, column string) (int, error) {
	name := strings.TrimSpace(column)
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < len(header) {
		return i, nil
	}
	return 0, fmt.Errorf("%q in %v: %w", column, header, ErrColumnNotFound)
}
