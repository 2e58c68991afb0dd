package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonColumn stores V in a MySQL JSON column.
type jsonColumn[T any] struct {
	V T
}

func (c jsonColumn[T]) Value() (driver.Value, error) {
	raw, err := json.Marshal(c.V)
	if err != nil {
		return nil, err
	}
	// MySQL rejects binary strings for JSON columns.
	return string(raw), nil
}

func (c *jsonColumn[T]) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		var zero T
		c.V = zero
		return nil
	case []byte:
		return json.Unmarshal(value, &c.V)
	case string:
		return json.Unmarshal([]byte(value), &c.V)
	default:
		return fmt.Errorf("unsupported json column source %T", src)
	}
}
