// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a list of short strings (skills, subjects) persisted as a
// JSON array in a jsonb column.
type StringList []string

// Value implements [driver.Valuer]. A nil list is stored as an empty array.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}

	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("error marshaling string list: %w", err)
	}

	return b, nil
}

// Scan implements [sql.Scanner] for jsonb values delivered as []byte or string.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("error unmarshaling string list: %w", err)
	}
	if items == nil {
		items = []string{}
	}

	*l = items
	return nil
}
