package models

import "time"

type ConsultationStatus string

const (
	StatusScheduled   ConsultationStatus = "scheduled"
	StatusCompleted   ConsultationStatus = "completed"
	StatusCanceled    ConsultationStatus = "canceled"
	StatusRescheduled ConsultationStatus = "rescheduled"
)

func (s ConsultationStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled, StatusRescheduled:
		return true
	}
	return false
}

// Consultation is a one-on-one session between a requester and a professional.
type Consultation struct {
	TimeWindow `bson:",inline"`

	ID             string             `bson:"id" json:"id"`
	RequesterID    string             `bson:"userId" json:"user"`
	ProfessionalID string             `bson:"professionalId" json:"professional"`
	EndsAt         time.Time          `bson:"endsAt" json:"endsAt"`
	Topic          string             `bson:"topic" json:"topic"`
	Notes          string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Concerns       string             `bson:"concerns,omitempty" json:"concerns,omitempty"`
	Status         ConsultationStatus `bson:"status" json:"status"`
	MeetingLink    string             `bson:"meetingLink" json:"meetingLink"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SetWindow replaces the window and keeps the denormalised end in sync.
func (c *Consultation) SetWindow(w TimeWindow) {
	c.TimeWindow = w
	c.EndsAt = w.End()
}

// IsParticipant reports whether the actor is the requester or the professional.
func (c Consultation) IsParticipant(actorID string) bool {
	return c.RequesterID == actorID || c.ProfessionalID == actorID
}

// ConsultationView is a consultation with the participants' names resolved.
type ConsultationView struct {
	Consultation
	Requester    *PublicProfile `json:"userProfile,omitempty"`
	Professional *PublicProfile `json:"professionalProfile,omitempty"`
}

// BookConsultationInput is the payload for a new booking.
type BookConsultationInput struct {
	ProfessionalID string    `json:"professional" binding:"required"`
	Date           time.Time `json:"date" binding:"required"`
	Duration       int       `json:"duration" binding:"required"`
	Topic          string    `json:"topic" binding:"required"`
	Notes          string    `json:"notes"`
	Concerns       string    `json:"concerns"`
}

// UpdateConsultationInput carries the optional fields of an update. A Date
// turns the update into a reschedule.
type UpdateConsultationInput struct {
	Date     *time.Time          `json:"date"`
	Duration *int                `json:"duration"`
	Topic    *string             `json:"topic"`
	Notes    *string             `json:"notes"`
	Concerns *string             `json:"concerns"`
	Status   *ConsultationStatus `json:"status"`
}
