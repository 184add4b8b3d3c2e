package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// User represents a user account row
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProgressRecord represents a user's stored course completion state
type ProgressRecord struct {
	UserID           uuid.UUID   `json:"user_id"`
	CompletedCourses StringArray `json:"completed_courses"` // JSONB array of course IDs
	PhaseTotals      IntMap      `json:"phase_totals"`      // JSONB map of phase -> course count
	UpdatedAt        time.Time   `json:"updated_at"`
}

// StringArray handles JSONB string arrays
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src interface{}) error {
	if src == nil {
		*a = []string{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, a)
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// IntMap handles JSONB string-keyed integer maps
type IntMap map[string]int

// Scan implements the Scanner interface for IntMap
func (m *IntMap) Scan(src interface{}) error {
	if src == nil {
		*m = map[string]int{}
		return nil
	}
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, m)
}

// Value implements the Valuer interface for IntMap
func (m IntMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}
