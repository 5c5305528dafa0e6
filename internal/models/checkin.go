package models

import "time"

// CheckIn is a single daily health check-in entry.
type CheckIn struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood,omitempty"`
	Symptoms  []string  `json:"symptoms"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Normalize fills defaults on a decoded check-in.
func (c *CheckIn) Normalize() {
	if c.Symptoms == nil {
		c.Symptoms = []string{}
	}
}
