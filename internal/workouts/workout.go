package workouts

import (
	"time"
)

type WeightUnit string

const (
	WeightUnitKg WeightUnit = "kg"
	WeightUnitLb WeightUnit = "lb"
)

// Session represents a single visit to the gym:
// a day (plus optional start/end time of day) with at least one logged set
type Session struct {
	ID        int        `json:"id"`
	UserID    string     `json:"userId"`
	Date      time.Time  `json:"date"`
	TimeStart *time.Time `json:"timeStart,omitempty"`
	TimeEnd   *time.Time `json:"timeEnd,omitempty"`
}

// Set is one logged exercise set, belonging to a session
type Set struct {
	ID         int        `json:"id"`
	UserID     string     `json:"userId"`
	SessionID  int        `json:"sessionId"`
	Weight     float64    `json:"weight"`
	WeightUnit WeightUnit `json:"weightUnit"`
	Reps       int        `json:"reps"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Event describes a change in a user's workout history. It is the input
// for incremental statistics updates: either Session or Set (or both,
// when a set creates its session) is set.
type Event struct {
	UserID  string   `json:"userId"`
	Session *Session `json:"session,omitempty"`
	Set     *Set     `json:"set,omitempty"`
}

// Date returns the workout day of the event, zero time if unknown
func (e Event) Date() time.Time {
	if e.Session != nil && !e.Session.Date.IsZero() {
		return e.Session.Date
	}
	if e.Set != nil && !e.Set.CreatedAt.IsZero() {
		return e.Set.CreatedAt
	}
	return time.Time{}
}

// TimeOfDay returns the clock time of the event, nil if unknown
func (e Event) TimeOfDay() *time.Time {
	if e.Session != nil && e.Session.TimeStart != nil {
		return e.Session.TimeStart
	}
	if e.Set != nil && !e.Set.CreatedAt.IsZero() {
		t := e.Set.CreatedAt
		return &t
	}
	return nil
}
