package models

import (
	"errors"
	"time"
)

// ErrInvalidDuration is returned for windows that do not span any time.
var ErrInvalidDuration = errors.New("duration must be a positive number of minutes")

// TimeWindow is the half-open interval [Start, Start+DurationMinutes).
type TimeWindow struct {
	Start           time.Time `bson:"startsAt" json:"date"`
	DurationMinutes int       `bson:"duration" json:"duration"`
}

// NewTimeWindow builds a window and rejects non-positive durations.
func NewTimeWindow(start time.Time, durationMinutes int) (TimeWindow, error) {
	w := TimeWindow{Start: start, DurationMinutes: durationMinutes}
	if err := w.Validate(); err != nil {
		return TimeWindow{}, err
	}
	return w, nil
}

func (w TimeWindow) Validate() error {
	if w.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// End is the first instant no longer covered by the window.
func (w TimeWindow) End() time.Time {
	return w.Start.Add(time.Duration(w.DurationMinutes) * time.Minute)
}

// Overlaps reports whether the two windows intersect. Windows sharing only a
// boundary (one ends exactly when the other starts) do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End()) && other.Start.Before(w.End())
}

// HasStarted reports whether the window's start is at or before now.
func (w TimeWindow) HasStarted(now time.Time) bool {
	return !w.Start.After(now)
}
