package books

import (
	"library-service/internal/domain/books"

	"github.com/shopspring/decimal"
)

type BookRequest struct {
	Title     string          `json:"title" binding:"required"`
	Author    string          `json:"author" binding:"required"`
	Cover     string          `json:"cover" binding:"required"`
	Inventory uint            `json:"inventory"`
	DailyFee  decimal.Decimal `json:"daily_fee"`
}

// BookPatch carries only the fields present in a PATCH body.
type BookPatch struct {
	Title     *string          `json:"title"`
	Author    *string          `json:"author"`
	Cover     *string          `json:"cover"`
	Inventory *uint            `json:"inventory"`
	DailyFee  *decimal.Decimal `json:"daily_fee"`
}

func (r BookRequest) toModel(id uint) books.Book {
	return books.Book{
		ID:        id,
		Title:     r.Title,
		Author:    r.Author,
		Cover:     books.CoverType(r.Cover),
		Inventory: r.Inventory,
		DailyFee:  r.DailyFee,
	}
}

func (p BookPatch) apply(b *books.Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Cover != nil {
		b.Cover = books.CoverType(*p.Cover)
	}
	if p.Inventory != nil {
		b.Inventory = *p.Inventory
	}
	if p.DailyFee != nil {
		b.DailyFee = *p.DailyFee
	}
}
