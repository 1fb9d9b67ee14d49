package dataset

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// missingValues are the records that gota or the source csv use for an empty cell
var missingValues = map[string]struct{}{
	"":    {},
	"NaN": {},
	"NA":  {},
}

// Table trips of a city. A Table is a value: Filter returns a new Table and the receiver
// is never modified
type Table struct {
	city  string
	frame dataframe.DataFrame
}

func NewTable(city string, frame dataframe.DataFrame) Table {
	return Table{
		city:  city,
		frame: frame,
	}
}

func (t Table) City() string {
	return t.city
}

// Len returns the amount of rows
func (t Table) Len() int {
	return t.frame.Nrow()
}

func (t Table) IsEmpty() bool {
	return t.Len() == 0
}

func (t Table) Columns() []string {
	return t.frame.Names()
}

// HasColumn reports whether the dataset has the column. Some datasets, e.g. washington, lack optional columns
func (t Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns(), name)
}

// Strings returns every record of the column, missing values included
func (t Table) Strings(name string) ([]string, error) {
	column, err := t.column(name)
	if err != nil {
		return nil, err
	}
	return column.Records(), nil
}

// Values returns the records of the column skipping the missing ones
func (t Table) Values(name string) ([]string, error) {
	records, err := t.Strings(name)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(records))
	for _, record := range records {
		if IsMissing(record) {
			continue
		}
		values = append(values, record)
	}
	return values, nil
}

func (t Table) Ints(name string) ([]int, error) {
	column, err := t.column(name)
	if err != nil {
		return nil, err
	}

	values, err := column.Int()
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", name, err)
	}
	return values, nil
}

// WholeNumbers parses the records of the column as numbers and truncates them, missing values are skipped.
// Birth years are stored as floats, e.g 1989.0
func (t Table) WholeNumbers(name string) ([]int, error) {
	records, err := t.Values(name)
	if err != nil {
		return nil, err
	}

	numbers := make([]int, 0, len(records))
	for _, record := range records {
		number, err := strconv.ParseFloat(record, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %s has a non numeric value %q", ErrInvalidDataset, name, record)
		}
		numbers = append(numbers, int(number))
	}
	return numbers, nil
}

// Filter returns a Table with the rows whose column is equal to value
func (t Table) Filter(name string, value int) (Table, error) {
	if _, err := t.column(name); err != nil {
		return Table{}, err
	}

	if t.IsEmpty() {
		return t, nil
	}

	filtered := t.frame.Filter(dataframe.F{
		Colname:    name,
		Comparator: series.Eq,
		Comparando: value,
	})
	if filtered.Err != nil {
		return Table{}, fmt.Errorf("error filtering %s == %v: %w", name, value, filtered.Err)
	}

	return NewTable(t.city, filtered), nil
}

func (t Table) column(name string) (series.Series, error) {
	if !t.HasColumn(name) {
		return series.Series{}, fmt.Errorf("%w: %s", ErrMissingColumn, name)
	}
	return t.frame.Col(name), nil
}

func IsMissing(record string) bool {
	_, ok := missingValues[record]
	return ok
}
