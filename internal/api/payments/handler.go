package payments

import (
	"fmt"
	"net/http"

	"library-service/config"
	"library-service/database"
	"library-service/internal/domain/borrowings"
	"library-service/internal/domain/payments"
	"library-service/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Handler owns the payment endpoints. Stripe credentials and the fine
// policy come in through the config struct; the processor itself is
// reached only through the CheckoutOpener capability.
type Handler struct {
	cfg      config.PaymentsConfig
	checkout CheckoutOpener
}

func NewHandler(cfg config.PaymentsConfig, checkout CheckoutOpener) *Handler {
	return &Handler{cfg: cfg, checkout: checkout}
}

func isStaff(c *gin.Context) bool {
	return c.GetString("role") == users.RoleStaff
}

// ListPayments shows the caller's payments; staff see every payment.
func (h *Handler) ListPayments(c *gin.Context) {
	q := database.DB.Preload("Borrowing.Book").Preload("Borrowing.User").Order("payments.id ASC")
	if !isStaff(c) {
		q = q.Select("payments.*").
			Joins("JOIN borrowings ON borrowings.id = payments.borrowing_id").
			Where("borrowings.user_id = ?", c.GetUint("user_id"))
	}

	var all []payments.Payment
	if err := q.Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}

	out := make([]PaymentListItem, 0, len(all))
	for _, p := range all {
		out = append(out, toListItem(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetPayment(c *gin.Context) {
	payment, ok := h.loadOwnedPayment(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toDetail(*payment))
}

// CreatePayment computes what the borrowing owes, opens a checkout
// session for it and records the PENDING payment. A borrowing returned
// past its expected date owes a FINE; otherwise the regular rental fee.
func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var borrowing borrowings.Borrowing
	if err := database.DB.Preload("Book").First(&borrowing, "id = ?", req.BorrowingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Borrowing not found"})
		return
	}
	if !isStaff(c) && borrowing.UserID != c.GetUint("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your borrowing"})
		return
	}

	paymentType := payments.TypePayment
	var amount decimal.Decimal
	var err error
	if borrowing.ReturnedLate() {
		paymentType = payments.TypeFine
		amount, err = borrowing.FineFee(h.cfg.FineMultiplier)
	} else {
		amount, err = borrowing.TotalFee()
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Borrowing has nothing to pay"})
		return
	}

	productName := fmt.Sprintf("%s of '%s'", paymentType, borrowing.Book.Title)
	session, err := h.checkout.Open(c.Request.Context(), productName, amount, h.cfg.SuccessURL, h.cfg.CancelURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open checkout session", "details": err.Error()})
		return
	}

	payment := payments.Payment{
		Status:      payments.StatusPending,
		Type:        paymentType,
		BorrowingID: borrowing.ID,
		SessionID:   &session.ID,
		SessionURL:  &session.URL,
		MoneyToPay:  amount,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store payment"})
		return
	}
	c.JSON(http.StatusCreated, toDetail(payment))
}

// PaymentSuccess is the landing endpoint after a completed checkout.
func (h *Handler) PaymentSuccess(c *gin.Context) {
	payment, ok := h.loadOwnedPayment(c)
	if !ok {
		return
	}
	if payment.SessionID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID is required"})
		return
	}

	customer, err := h.checkout.Lookup(c.Request.Context(), *payment.SessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"detail": fmt.Sprintf("Thanks for your order, %s!", customer.Name),
		"customer": gin.H{
			"name":  customer.Name,
			"email": customer.Email,
		},
	})
}

// PaymentCancel is the landing endpoint after an abandoned checkout; the
// session stays payable for 24 hours.
func (h *Handler) PaymentCancel(c *gin.Context) {
	payment, ok := h.loadOwnedPayment(c)
	if !ok {
		return
	}

	email := c.GetString("email")
	switch payment.Status {
	case payments.StatusPending:
		if payment.SessionID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID is required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"detail": fmt.Sprintf("Okay, '%s' you can pay a little bit later, but during 24 hours!", email),
			"payment": gin.H{
				"payment_id":  payment.ID,
				"session_id":  payment.SessionID,
				"session_url": payment.SessionURL,
			},
		})
	case payments.StatusPaid:
		c.JSON(http.StatusOK, gin.H{
			"detail": fmt.Sprintf("Dear '%s', you have already paid this borrowing!", email),
		})
	}
}

func (h *Handler) loadOwnedPayment(c *gin.Context) (*payments.Payment, bool) {
	var payment payments.Payment
	err := database.DB.Preload("Borrowing.Book").Preload("Borrowing.User").
		First(&payment, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return nil, false
	}
	if !isStaff(c) && payment.Borrowing.UserID != c.GetUint("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "It`s not your payment! Be more attentive!"})
		return nil, false
	}
	return &payment, true
}
