package types

import (
	"database/sql/driver"
	"fmt"

	"github.com/lib/pq"
)

// StringArray maps a Go string slice to a postgres text[] column. An empty
// slice is stored as '{}' so the column never holds NULL for a written row.
type StringArray []string

func (s StringArray) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "{}", nil
	}
	return pq.Array([]string(s)).Value()
}

func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}

	var strs []string
	if err := pq.Array(&strs).Scan(value); err != nil {
		return fmt.Errorf("failed to scan string array: %w", err)
	}
	if strs == nil {
		strs = []string{}
	}
	*s = strs
	return nil
}
