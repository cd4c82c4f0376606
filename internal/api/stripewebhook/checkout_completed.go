package stripewebhooks

import (
	"errors"

	"library-service/database"
	"library-service/internal/domain/payments"

	"gorm.io/gorm"
)

var errUnknownSession = errors.New("no payment for checkout session")

// handleCheckoutSessionCompleted marks the payment matching the session
// PAID. The processor retries deliveries, so a replay for an already-paid
// session is a no-op rather than an error; the PENDING guard on the
// update makes the transition happen at most once.
func handleCheckoutSessionCompleted(sessionID string) error {
	if sessionID == "" {
		return errUnknownSession
	}

	res := database.DB.Model(&payments.Payment{}).
		Where("session_id = ? AND status = ?", sessionID, payments.StatusPending).
		Update("status", payments.StatusPaid)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// Nothing transitioned: either a replay (fine) or an unknown session.
	var payment payments.Payment
	err := database.DB.First(&payment, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errUnknownSession
	}
	return err
}
