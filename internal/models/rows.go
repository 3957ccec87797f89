// models/rows.go - Aggregate rows supplied by the data layer
package models

import "encoding/json"

// DayRow is the hours recorded on one day
type DayRow struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// UnmarshalJSON accepts both total_hours and hours
func (r *DayRow) UnmarshalJSON(b []byte) error {
	var raw struct {
		Date       string   `json:"date"`
		Hours      *float64 `json:"hours"`
		TotalHours *float64 `json:"total_hours"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.Date = raw.Date
	r.Hours = firstFloat(raw.TotalHours, raw.Hours)
	return nil
}

// CalendarRow is the hours recorded on one calendar for the period.
// Group is nil when the row does not carry its own group binding.
type CalendarRow struct {
	ID    string  `json:"id"`
	Hours float64 `json:"hours"`
	Group *int    `json:"group,omitempty"`
}

// UnmarshalJSON accepts total_hours|hours and group|group_id
func (r *CalendarRow) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID         string   `json:"id"`
		Hours      *float64 `json:"hours"`
		TotalHours *float64 `json:"total_hours"`
		Group      *int     `json:"group"`
		GroupID    *int     `json:"group_id"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.ID = raw.ID
	r.Hours = firstFloat(raw.TotalHours, raw.Hours)
	r.Group = raw.Group
	if r.Group == nil {
		r.Group = raw.GroupID
	}
	return nil
}

// HourEntry is one ingested (date, calendar) measurement
type HourEntry struct {
	Date       string  `json:"date"`
	CalendarID string  `json:"calendar_id"`
	Hours      float64 `json:"hours"`
}

func firstFloat(vals ...*float64) float64 {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return 0
}
