package webinar

import (
	"time"

	"nurturebloom/models"
	"nurturebloom/utils"
)

// maxWriteAttempts bounds how often a guarded write is retried after the
// stored webinar changed underneath it.
const maxWriteAttempts = 5

// registrationError returns the first rule that forbids attendeeID from
// registering, in the order past, full, duplicate.
func registrationError(w models.Webinar, attendeeID string, now time.Time) error {
	if w.HasStarted(now) {
		return utils.ErrWebinarInPast
	}
	if w.IsFull() {
		return utils.ErrWebinarFull
	}
	if _, ok := w.FindRegistration(attendeeID); ok {
		return utils.ErrAlreadyRegistered
	}
	return nil
}

// cancellationError returns the first rule that forbids attendeeID from
// cancelling, in the order past, not registered.
func cancellationError(w models.Webinar, attendeeID string, now time.Time) error {
	if w.HasStarted(now) {
		return utils.ErrWebinarInPast
	}
	if _, ok := w.FindRegistration(attendeeID); !ok {
		return utils.ErrNotRegistered
	}
	return nil
}

func canManage(w models.Webinar, actor models.Actor) bool {
	return w.PresenterID == actor.ID || actor.IsAdmin()
}

func canPresent(actor models.Actor) bool {
	return actor.Role == models.RoleProfessional || actor.IsAdmin()
}
