package models

import "time"

// Registration is one attendee's seat in a webinar.
type Registration struct {
	AttendeeID   string    `bson:"userId" json:"user"`
	RegisteredAt time.Time `bson:"registeredAt" json:"registeredAt"`
	Attended     bool      `bson:"attended" json:"attended"`
}

// Webinar is a scheduled group session with limited seats.
type Webinar struct {
	TimeWindow `bson:",inline"`

	ID            string         `bson:"id" json:"id"`
	Title         string         `bson:"title" json:"title"`
	Description   string         `bson:"description" json:"description"`
	PresenterID   string         `bson:"presenterId" json:"presenter"`
	Capacity      int            `bson:"capacity" json:"capacity"`
	Registrations []Registration `bson:"registrations" json:"registrations"`
	RecordingURL  string         `bson:"recordingUrl,omitempty" json:"recordingUrl,omitempty"`
	IsRecorded    bool           `bson:"isRecorded" json:"isRecorded"`
	Tags          []string       `bson:"tags" json:"tags"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// FindRegistration returns the attendee's registration, if any.
func (w Webinar) FindRegistration(attendeeID string) (Registration, bool) {
	for _, r := range w.Registrations {
		if r.AttendeeID == attendeeID {
			return r, true
		}
	}
	return Registration{}, false
}

func (w Webinar) IsFull() bool {
	return len(w.Registrations) >= w.Capacity
}

// WebinarView is a webinar with the presenter's name resolved.
type WebinarView struct {
	Webinar
	Presenter *PublicProfile `json:"presenterProfile,omitempty"`
}

// CreateWebinarInput is the payload for a new webinar.
type CreateWebinarInput struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Duration    int       `json:"duration" binding:"required"`
	Capacity    int       `json:"capacity" binding:"required"`
	Tags        []string  `json:"tags"`
}

// UpdateWebinarInput carries the optional fields of a webinar update.
type UpdateWebinarInput struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Date         *time.Time `json:"date"`
	Duration     *int       `json:"duration"`
	Capacity     *int       `json:"capacity"`
	Tags         []string   `json:"tags"`
	RecordingURL *string    `json:"recordingUrl"`
	IsRecorded   *bool      `json:"isRecorded"`
}

// AttendanceInput marks a registered user as attended or not.
type AttendanceInput struct {
	UserID   string `json:"userId" binding:"required"`
	Attended *bool  `json:"attended" binding:"required"`
}
