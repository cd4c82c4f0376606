package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"library-service/internal/domain/borrowings"

	"gorm.io/gorm"
)

// OverdueNotifier scans the ledger for breached return dates and pushes
// one message per overdue borrowing. It does not schedule itself; an
// external job runner (or the notify endpoint) triggers each run.
type OverdueNotifier struct {
	db     *gorm.DB
	sender MessageSender
}

func NewOverdueNotifier(db *gorm.DB, sender MessageSender) *OverdueNotifier {
	return &OverdueNotifier{db: db, sender: sender}
}

// OverdueScan returns the borrowings whose expected return date has
// passed with no actual return recorded. Side-effect free.
func (n *OverdueNotifier) OverdueScan(today time.Time) ([]borrowings.Borrowing, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var overdue []borrowings.Borrowing
	err := n.db.Preload("Book").Preload("User").
		Where("expected_return_date < ? AND actual_return_date IS NULL", day).
		Find(&overdue).Error
	if err != nil {
		return nil, err
	}
	return overdue, nil
}

// Run sends a notification for every overdue borrowing. A failed send is
// logged and counted but does not abort the rest of the batch.
func (n *OverdueNotifier) Run(ctx context.Context) (sent int, failed int, err error) {
	overdue, err := n.OverdueScan(time.Now().UTC())
	if err != nil {
		return 0, 0, err
	}

	for _, b := range overdue {
		msg := fmt.Sprintf(
			"Book '%s' borrowed by %s is overdue. Expected return date: %s.",
			b.Book.Title, b.User.Email, b.ExpectedReturnDate.Format("2006-01-02"),
		)
		if err := n.sender.Send(ctx, msg); err != nil {
			log.Printf("overdue notification for borrowing %d failed: %v", b.ID, err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed, nil
}
