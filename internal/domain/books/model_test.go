package books_test

import (
	"testing"

	"library-service/internal/domain/books"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBook() books.Book {
	return books.Book{
		Title:     "Kobzar",
		Author:    "Taras Shevchenko",
		Cover:     books.CoverHard,
		Inventory: 3,
		DailyFee:  decimal.RequireFromString("1.50"),
	}
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, validBook().Validate())
}

func TestValidateFieldErrors(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*books.Book)
		field  string
	}{
		{"empty title", func(b *books.Book) { b.Title = "" }, "title"},
		{"empty author", func(b *books.Book) { b.Author = "" }, "author"},
		{"bad cover", func(b *books.Book) { b.Cover = "SPIRAL" }, "cover"},
		{"zero inventory", func(b *books.Book) { b.Inventory = 0 }, "inventory"},
		{"zero fee", func(b *books.Book) { b.DailyFee = decimal.Zero }, "daily_fee"},
		{"negative fee", func(b *books.Book) { b.DailyFee = decimal.RequireFromString("-0.01") }, "daily_fee"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			tt.mutate(&b)

			err := b.Validate()
			require.Error(t, err)

			fields, ok := err.(books.FieldErrors)
			require.True(t, ok)
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestValidateCollectsAllFields(t *testing.T) {
	err := books.Book{}.Validate()
	require.Error(t, err)

	fields, ok := err.(books.FieldErrors)
	require.True(t, ok)
	assert.Len(t, fields, 5)
}
