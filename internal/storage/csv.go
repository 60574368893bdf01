// Package storage persists the appliance list as a CSV file.
package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jgoulah/energytracker/pkg/models"
)

// DefaultPath is the data file used when none is configured
const DefaultPath = "appliances.csv"

// Column names, in the order they are written
const (
	ColumnName        = "name"
	ColumnWatts       = "watts"
	ColumnHoursPerDay = "hours_per_day"
)

// Header is the first row of every saved file
var Header = []string{ColumnName, ColumnWatts, ColumnHoursPerDay}

// ParseError reports a row of an existing data file that could not be loaded
type ParseError struct {
	Path   string
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: column %s (%q): %v", e.Path, e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Save overwrites path with the appliances in list order
func Save(path string, appliances []models.Appliance) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating data file: %w", err)
	}

	if err := Write(f, appliances); err != nil {
		f.Close()
		return fmt.Errorf("writing data file: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing data file: %w", err)
	}
	return nil
}

// Write encodes appliances as CSV with a header row
func Write(w io.Writer, appliances []models.Appliance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, a := range appliances {
		row := []string{
			a.Name,
			strconv.FormatFloat(a.Watts, 'f', -1, 64),
			strconv.FormatFloat(a.HoursPerDay, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Load reads the appliances stored at path.
// A missing file yields an empty list. Any row that does not hold a valid
// appliance fails the whole load with a *ParseError.
func Load(path string) ([]models.Appliance, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Appliance{}, nil
		}
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	appliances, err := Read(f)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
			return nil, perr
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	return appliances, nil
}

// Read decodes CSV produced by Write. Columns are matched by header name,
// so their order does not matter and unknown columns are ignored.
func Read(r io.Reader) ([]models.Appliance, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []models.Appliance{}, nil
	}
	if err != nil {
		return nil, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range Header {
		if _, ok := columns[name]; !ok {
			return nil, &ParseError{Line: 1, Err: fmt.Errorf("missing column %q", name)}
		}
	}

	appliances := []models.Appliance{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := reader.FieldPos(0)
		a, err := parseRecord(record, columns, line)
		if err != nil {
			return nil, err
		}
		appliances = append(appliances, a)
	}

	return appliances, nil
}

func parseRecord(record []string, columns map[string]int, line int) (models.Appliance, error) {
	field := func(name string) string {
		if i := columns[name]; i < len(record) {
			return record[i]
		}
		return ""
	}

	name := strings.TrimSpace(field(ColumnName))
	if name == "" {
		return models.Appliance{}, &ParseError{Line: line, Column: ColumnName, Err: models.ErrEmptyName}
	}

	watts, err := parseNumber(field(ColumnWatts))
	if err != nil {
		return models.Appliance{}, &ParseError{Line: line, Column: ColumnWatts, Value: field(ColumnWatts), Err: err}
	}

	hours, err := parseNumber(field(ColumnHoursPerDay))
	if err != nil {
		return models.Appliance{}, &ParseError{Line: line, Column: ColumnHoursPerDay, Value: field(ColumnHoursPerDay), Err: err}
	}

	return models.Appliance{Name: name, Watts: watts, HoursPerDay: hours}, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, models.ErrNotNumber
	}
	if !(v > 0) {
		return 0, models.ErrNonPositive
	}
	return v, nil
}
