package payments

import (
	"time"

	"library-service/internal/domain/borrowings"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

type Type string

const (
	TypePayment Type = "PAYMENT"
	TypeFine    Type = "FINE"
)

// Payment records an amount owed for a borrowing and tracks the external
// checkout session that settles it. PAID is terminal; the transition
// happens only through the processor's webhook, matched by session id.
type Payment struct {
	ID     uint   `gorm:"primaryKey"`
	Status Status `gorm:"type:varchar(7);not null;default:'PENDING'"`
	Type   Type   `gorm:"type:varchar(7);not null"`

	BorrowingID uint `gorm:"not null;uniqueIndex:idx_payments_borrowing_session"`
	Borrowing   borrowings.Borrowing

	SessionURL *string `gorm:"type:varchar(511)"`
	SessionID  *string `gorm:"type:varchar(511);uniqueIndex:idx_payments_borrowing_session"`

	MoneyToPay decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	CreatedAt time.Time
}
