package borrowings

import (
	"time"

	"library-service/internal/domain/borrowings"
)

const dateLayout = "2006-01-02"

type CreateBorrowingRequest struct {
	BookID             uint   `json:"book_id" binding:"required"`
	BorrowDate         string `json:"borrow_date" binding:"required"`
	ExpectedReturnDate string `json:"expected_return_date" binding:"required"`
}

// BorrowingListItem is the compact list shape: the period as one string,
// the book by title and the user by email.
type BorrowingListItem struct {
	ID               uint    `json:"id"`
	FullDate         string  `json:"full_date"`
	ActualReturnDate *string `json:"actual_return_date"`
	Book             string  `json:"book"`
	User             string  `json:"user"`
}

type BorrowingDetail struct {
	ID                 uint       `json:"id"`
	BorrowDate         string     `json:"borrow_date"`
	ExpectedReturnDate string     `json:"expected_return_date"`
	ActualReturnDate   *string    `json:"actual_return_date"`
	Book               BookDetail `json:"book"`
	User               string     `json:"user"`
}

type BookDetail struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Cover    string `json:"cover"`
	DailyFee string `json:"daily_fee"`
}

func toListItem(b borrowings.Borrowing) BorrowingListItem {
	return BorrowingListItem{
		ID:               b.ID,
		FullDate:         b.FullDate(),
		ActualReturnDate: formatDatePtr(b.ActualReturnDate),
		Book:             b.Book.Title,
		User:             b.User.Email,
	}
}

func toDetail(b borrowings.Borrowing) BorrowingDetail {
	return BorrowingDetail{
		ID:                 b.ID,
		BorrowDate:         b.BorrowDate.Format(dateLayout),
		ExpectedReturnDate: b.ExpectedReturnDate.Format(dateLayout),
		ActualReturnDate:   formatDatePtr(b.ActualReturnDate),
		Book: BookDetail{
			ID:       b.Book.ID,
			Title:    b.Book.Title,
			Author:   b.Book.Author,
			Cover:    string(b.Book.Cover),
			DailyFee: b.Book.DailyFee.StringFixed(2),
		},
		User: b.User.FullName(),
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
