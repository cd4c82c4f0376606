package books

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type CoverType string

const (
	CoverHard CoverType = "HARD"
	CoverSoft CoverType = "SOFT"
)

type Book struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Title     string          `gorm:"not null" json:"title"`
	Author    string          `gorm:"not null" json:"author"`
	Cover     CoverType       `gorm:"type:varchar(4);not null" json:"cover"`
	Inventory uint            `gorm:"not null" json:"inventory"`
	DailyFee  decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"daily_fee"`
}

// FieldErrors reports validation failures per field, one message each.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return fmt.Sprintf("invalid book fields: %v", map[string]string(e))
}

// Validate enforces the catalog schema: a book enters the catalog with at
// least one copy and a positive daily fee.
func (b Book) Validate() error {
	errs := FieldErrors{}
	if b.Title == "" {
		errs["title"] = "title is required"
	}
	if b.Author == "" {
		errs["author"] = "author is required"
	}
	if b.Cover != CoverHard && b.Cover != CoverSoft {
		errs["cover"] = "cover must be HARD or SOFT"
	}
	if b.Inventory < 1 {
		errs["inventory"] = "inventory must be at least 1"
	}
	if !b.DailyFee.IsPositive() {
		errs["daily_fee"] = "daily_fee must be greater than 0"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
