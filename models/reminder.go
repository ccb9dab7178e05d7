package models

import "time"

// WebinarReminderPayload is the body of a queued webinar reminder.
type WebinarReminderPayload struct {
	WebinarID  string    `json:"webinarId"`
	AttendeeID string    `json:"attendeeId"`
	Title      string    `json:"title"`
	StartsAt   time.Time `json:"startsAt"`
}
