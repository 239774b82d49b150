package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ScoresJSON is a name -> score map persisted as jsonb.
type ScoresJSON map[string]float64

func (s ScoresJSON) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

func (s *ScoresJSON) Scan(value interface{}) error {
	if value == nil {
		*s = ScoresJSON{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, s)
}
