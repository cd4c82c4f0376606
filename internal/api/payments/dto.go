package payments

import (
	"library-service/internal/domain/payments"
)

type CreatePaymentRequest struct {
	BorrowingID uint `json:"borrowing_id" binding:"required"`
}

// PaymentListItem names the borrowing by its book title only.
type PaymentListItem struct {
	ID         uint   `json:"id"`
	Status     string `json:"status"`
	Type       string `json:"type"`
	Borrowing  string `json:"borrowing"`
	MoneyToPay string `json:"money_to_pay"`
}

type PaymentDetail struct {
	ID          uint    `json:"id"`
	Status      string  `json:"status"`
	Type        string  `json:"type"`
	BorrowingID uint    `json:"borrowing"`
	SessionURL  *string `json:"session_url"`
	SessionID   *string `json:"session_id"`
	MoneyToPay  string  `json:"money_to_pay"`
}

func toListItem(p payments.Payment) PaymentListItem {
	return PaymentListItem{
		ID:         p.ID,
		Status:     string(p.Status),
		Type:       string(p.Type),
		Borrowing:  p.Borrowing.Book.Title,
		MoneyToPay: p.MoneyToPay.StringFixed(2),
	}
}

func toDetail(p payments.Payment) PaymentDetail {
	return PaymentDetail{
		ID:          p.ID,
		Status:      string(p.Status),
		Type:        string(p.Type),
		BorrowingID: p.BorrowingID,
		SessionURL:  p.SessionURL,
		SessionID:   p.SessionID,
		MoneyToPay:  p.MoneyToPay.StringFixed(2),
	}
}
