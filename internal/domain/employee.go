package domain

import (
	"encoding/json"
	"time"
)

// Employee is a staff record keyed by a client-supplied identifier. Salary is
// a string for wire compatibility with existing consumers.
type Employee struct {
	EmployeeID string          `json:"employeeId"`
	Name       string          `json:"name"`
	Salary     string          `json:"salary"`
	Position   string          `json:"position,omitempty"`
	Skills     json.RawMessage `json:"skills,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"-"`
}
