package books

import (
	"errors"
	"net/http"

	"library-service/database"
	"library-service/internal/domain/books"
	"library-service/internal/domain/borrowings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListBooks(c *gin.Context) {
	var all []books.Book
	if err := database.DB.Order("id ASC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load books"})
		return
	}
	c.JSON(http.StatusOK, all)
}

func GetBook(c *gin.Context) {
	var book books.Book
	if err := database.DB.First(&book, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func CreateBook(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := req.toModel(0)
	if err := book.Validate(); err != nil {
		var fields books.FieldErrors
		if errors.As(err, &fields) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Create(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
		return
	}
	c.JSON(http.StatusCreated, book)
}

func UpdateBook(c *gin.Context) {
	var existing books.Book
	if err := database.DB.First(&existing, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := req.toModel(existing.ID)
	if err := book.Validate(); err != nil {
		var fields books.FieldErrors
		if errors.As(err, &fields) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Save(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
		return
	}
	c.JSON(http.StatusOK, book)
}

func PatchBook(c *gin.Context) {
	var book books.Book
	if err := database.DB.First(&book, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	var patch BookPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch.apply(&book)
	if err := book.Validate(); err != nil {
		var fields books.FieldErrors
		if errors.As(err, &fields) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Save(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update book"})
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook refuses to remove a book while copies are still out, so a
// catalog delete can never orphan or cascade away live ledger entries.
func DeleteBook(c *gin.Context) {
	var book books.Book
	if err := database.DB.First(&book, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&borrowings.Borrowing{}).
			Where("book_id = ? AND actual_return_date IS NULL", book.ID).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return errActiveBorrowings
		}
		return tx.Delete(&book).Error
	})
	if err != nil {
		if errors.Is(err, errActiveBorrowings) {
			c.JSON(http.StatusConflict, gin.H{"error": "Book has un-returned borrowings"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		return
	}
	c.Status(http.StatusNoContent)
}

var errActiveBorrowings = errors.New("book has active borrowings")
