package borrowings

import (
	"errors"
	"time"

	"library-service/internal/domain/books"
	"library-service/internal/domain/users"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingDailyFee = errors.New("book has no daily fee")
	ErrAlreadyReturned = errors.New("borrowing has already been returned")
	ErrOutOfStock      = errors.New("book is out of stock")
)

type Borrowing struct {
	ID                 uint       `gorm:"primaryKey"`
	BorrowDate         time.Time  `gorm:"type:date;not null"`
	ExpectedReturnDate time.Time  `gorm:"type:date;not null"`
	ActualReturnDate   *time.Time `gorm:"type:date"`

	BookID uint `gorm:"not null"`
	Book   books.Book

	UserID uint `gorm:"not null"`
	User   users.User
}

// TotalFee is the rental fee for the planned period:
// days between borrow and expected return times the book's daily fee.
// A same-day borrowing costs nothing and an inverted range yields a
// negative amount; both are computed as-is.
func (b Borrowing) TotalFee() (decimal.Decimal, error) {
	if b.Book.DailyFee.IsZero() {
		return decimal.Zero, ErrMissingDailyFee
	}
	days := daysBetween(b.BorrowDate, b.ExpectedReturnDate)
	return b.Book.DailyFee.Mul(decimal.NewFromInt(days)), nil
}

// FineFee is the penalty for a late return: days past the expected
// return date times the daily fee, scaled by the fine multiplier.
// Returns zero when the borrowing is not returned late.
func (b Borrowing) FineFee(multiplier decimal.Decimal) (decimal.Decimal, error) {
	if b.Book.DailyFee.IsZero() {
		return decimal.Zero, ErrMissingDailyFee
	}
	if b.ActualReturnDate == nil {
		return decimal.Zero, nil
	}
	days := daysBetween(b.ExpectedReturnDate, *b.ActualReturnDate)
	if days <= 0 {
		return decimal.Zero, nil
	}
	return b.Book.DailyFee.Mul(decimal.NewFromInt(days)).Mul(multiplier), nil
}

// ReturnedLate reports whether the borrowing was closed after its
// expected return date.
func (b Borrowing) ReturnedLate() bool {
	return b.ActualReturnDate != nil && daysBetween(b.ExpectedReturnDate, *b.ActualReturnDate) > 0
}

// Overdue reports whether the borrowing is still out past its expected
// return date as of the given day.
func (b Borrowing) Overdue(today time.Time) bool {
	return b.ActualReturnDate == nil && truncateToDate(b.ExpectedReturnDate).Before(truncateToDate(today))
}

// FullDate renders the planned borrow period, list-view shorthand.
func (b Borrowing) FullDate() string {
	return b.BorrowDate.Format("2006-01-02") + " - " + b.ExpectedReturnDate.Format("2006-01-02")
}

func daysBetween(from, to time.Time) int64 {
	return int64(truncateToDate(to).Sub(truncateToDate(from)) / (24 * time.Hour))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
