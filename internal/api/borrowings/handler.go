package borrowings

import (
	"errors"
	"net/http"
	"time"

	"library-service/database"
	"library-service/internal/domain/books"
	"library-service/internal/domain/borrowings"
	"library-service/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func isStaff(c *gin.Context) bool {
	return c.GetString("role") == users.RoleStaff
}

// ListBorrowings returns the caller's ledger entries; staff see all.
// Supported filters: ?is_active=true|false and, for staff, ?user_id=.
func ListBorrowings(c *gin.Context) {
	q := database.DB.Preload("Book").Preload("User").Order("id ASC")

	if !isStaff(c) {
		q = q.Where("user_id = ?", c.GetUint("user_id"))
	} else if userID := c.Query("user_id"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	switch c.Query("is_active") {
	case "true":
		q = q.Where("actual_return_date IS NULL")
	case "false":
		q = q.Where("actual_return_date IS NOT NULL")
	}

	var all []borrowings.Borrowing
	if err := q.Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load borrowings"})
		return
	}

	out := make([]BorrowingListItem, 0, len(all))
	for _, b := range all {
		out = append(out, toListItem(b))
	}
	c.JSON(http.StatusOK, out)
}

func GetBorrowing(c *gin.Context) {
	var borrowing borrowings.Borrowing
	err := database.DB.Preload("Book").Preload("User").
		First(&borrowing, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Borrowing not found"})
		return
	}

	if !isStaff(c) && borrowing.UserID != c.GetUint("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your borrowing"})
		return
	}
	c.JSON(http.StatusOK, toDetail(borrowing))
}

// CreateBorrowing opens a ledger entry. The inventory check-and-decrement
// is a single guarded UPDATE inside the transaction holding the new row,
// so two concurrent borrows of the last copy cannot both succeed.
func CreateBorrowing(c *gin.Context) {
	var req CreateBorrowingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	borrowDate, err := parseDate(req.BorrowDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "borrow_date must be YYYY-MM-DD"})
		return
	}
	expectedReturn, err := parseDate(req.ExpectedReturnDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected_return_date must be YYYY-MM-DD"})
		return
	}
	if expectedReturn.Before(borrowDate) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expected_return_date must not be before borrow_date"})
		return
	}

	borrowing := borrowings.Borrowing{
		BorrowDate:         borrowDate,
		ExpectedReturnDate: expectedReturn,
		BookID:             req.BookID,
		UserID:             c.GetUint("user_id"),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var book books.Book
		if err := tx.First(&book, "id = ?", req.BookID).Error; err != nil {
			return err
		}

		res := tx.Model(&books.Book{}).
			Where("id = ? AND inventory > 0", req.BookID).
			Update("inventory", gorm.Expr("inventory - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return borrowings.ErrOutOfStock
		}
		return tx.Create(&borrowing).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, borrowings.ErrOutOfStock):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This book is out of stock."})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create borrowing"})
		}
		return
	}

	if err := database.DB.Preload("Book").Preload("User").
		First(&borrowing, borrowing.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load borrowing"})
		return
	}
	c.JSON(http.StatusCreated, toDetail(borrowing))
}

// ReturnBorrowing closes a ledger entry and puts the copy back on the
// shelf in the same transaction. The close is guarded on the return date
// still being null, so a second return of the same borrowing cannot
// increment inventory again.
func ReturnBorrowing(c *gin.Context) {
	var borrowing borrowings.Borrowing

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&borrowing, "id = ?", c.Param("id")).Error; err != nil {
			return err
		}
		if !isStaff(c) && borrowing.UserID != c.GetUint("user_id") {
			return errNotOwner
		}

		now := time.Now().UTC()
		res := tx.Model(&borrowings.Borrowing{}).
			Where("id = ? AND actual_return_date IS NULL", borrowing.ID).
			Update("actual_return_date", now)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return borrowings.ErrAlreadyReturned
		}
		return tx.Model(&books.Book{}).
			Where("id = ?", borrowing.BookID).
			Update("inventory", gorm.Expr("inventory + 1")).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Borrowing not found"})
		case errors.Is(err, errNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your borrowing"})
		case errors.Is(err, borrowings.ErrAlreadyReturned):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This borrowing has already been returned."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to return borrowing"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Borrowing successfully returned."})
}

var errNotOwner = errors.New("borrowing belongs to another user")
