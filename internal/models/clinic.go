package models

// ClinicService is a named service offered at a clinic or resource site.
type ClinicService struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	FreeOfCharge bool   `json:"freeOfCharge"`
}

// OpeningHours describes a site's hours for a range of weekdays.
type OpeningHours struct {
	Days  string `json:"days"`
	Hours string `json:"hours"`
}

// Clinic is a read-only directory entry: a clinic, employment center or
// housing resource. DistanceKm is transient, computed at query time and never
// persisted with the entry.
type Clinic struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	City           string          `json:"city,omitempty"`
	ZipCode        string          `json:"zipCode,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Website        string          `json:"website,omitempty"`
	Areas          []ServiceArea   `json:"areas"`
	Services       []ClinicService `json:"services"`
	Hours          []OpeningHours  `json:"hours"`
	Languages      []string        `json:"languages,omitempty"`
	AcceptsWalkIns bool            `json:"acceptsWalkIns"`
	SlidingScale   bool            `json:"slidingScale"`
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	DistanceKm     float64         `json:"distanceKm,omitempty"`
}

// Snapshot copies the contact fields into a reminder-side snapshot.
func (c *Clinic) Snapshot() ClinicSnapshot {
	return ClinicSnapshot{
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
	}
}

// ServesArea reports whether the entry belongs to the given service area.
func (c *Clinic) ServesArea(a ServiceArea) bool {
	for _, area := range c.Areas {
		if area == a {
			return true
		}
	}
	return false
}
