package borrowings_test

import (
	"testing"
	"time"

	"library-service/internal/domain/books"
	"library-service/internal/domain/borrowings"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTotalFee(t *testing.T) {
	testCases := []struct {
		name     string
		borrow   string
		expected string
		dailyFee string
		want     string
	}{
		{"five days", "2024-11-20", "2024-11-25", "10.00", "50.00"},
		{"same day", "2024-11-20", "2024-11-20", "10.00", "0.00"},
		{"inverted range", "2024-11-25", "2024-11-20", "10.00", "-50.00"},
		{"fractional fee", "2024-11-20", "2024-11-23", "1.50", "4.50"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			b := borrowings.Borrowing{
				BorrowDate:         date(tt.borrow),
				ExpectedReturnDate: date(tt.expected),
				Book:               books.Book{ID: 1, DailyFee: decimal.RequireFromString(tt.dailyFee)},
			}
			fee, err := b.TotalFee()
			require.NoError(t, err)
			assert.Equal(t, tt.want, fee.StringFixed(2))
		})
	}
}

func TestTotalFeeMissingDailyFee(t *testing.T) {
	b := borrowings.Borrowing{
		BorrowDate:         date("2024-11-20"),
		ExpectedReturnDate: date("2024-11-25"),
		Book:               books.Book{ID: 1},
	}
	_, err := b.TotalFee()
	assert.ErrorIs(t, err, borrowings.ErrMissingDailyFee)
}

func TestFineFee(t *testing.T) {
	mult := decimal.NewFromInt(2)
	returned := date("2024-11-28")

	b := borrowings.Borrowing{
		BorrowDate:         date("2024-11-20"),
		ExpectedReturnDate: date("2024-11-25"),
		ActualReturnDate:   &returned,
		Book:               books.Book{ID: 1, DailyFee: decimal.RequireFromString("10.00")},
	}

	fine, err := b.FineFee(mult)
	require.NoError(t, err)
	// 3 days late at 10.00/day, doubled
	assert.Equal(t, "60.00", fine.StringFixed(2))
	assert.True(t, b.ReturnedLate())
}

func TestFineFeeOnTimeReturn(t *testing.T) {
	returned := date("2024-11-24")
	b := borrowings.Borrowing{
		BorrowDate:         date("2024-11-20"),
		ExpectedReturnDate: date("2024-11-25"),
		ActualReturnDate:   &returned,
		Book:               books.Book{ID: 1, DailyFee: decimal.RequireFromString("10.00")},
	}

	fine, err := b.FineFee(decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.True(t, fine.IsZero())
	assert.False(t, b.ReturnedLate())
}

func TestFineFeeStillOut(t *testing.T) {
	b := borrowings.Borrowing{
		BorrowDate:         date("2024-11-20"),
		ExpectedReturnDate: date("2024-11-25"),
		Book:               books.Book{ID: 1, DailyFee: decimal.RequireFromString("10.00")},
	}

	fine, err := b.FineFee(decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.True(t, fine.IsZero())
}

func TestOverdue(t *testing.T) {
	today := date("2024-11-26")
	returned := date("2024-11-24")

	testCases := []struct {
		name      string
		borrowing borrowings.Borrowing
		want      bool
	}{
		{
			"past due and still out",
			borrowings.Borrowing{ExpectedReturnDate: date("2024-11-25")},
			true,
		},
		{
			"due today",
			borrowings.Borrowing{ExpectedReturnDate: date("2024-11-26")},
			false,
		},
		{
			"not yet due",
			borrowings.Borrowing{ExpectedReturnDate: date("2024-11-30")},
			false,
		},
		{
			"past due but returned",
			borrowings.Borrowing{ExpectedReturnDate: date("2024-11-25"), ActualReturnDate: &returned},
			false,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.borrowing.Overdue(today))
		})
	}
}

func TestFullDate(t *testing.T) {
	b := borrowings.Borrowing{
		BorrowDate:         date("2024-11-20"),
		ExpectedReturnDate: date("2024-11-25"),
	}
	assert.Equal(t, "2024-11-20 - 2024-11-25", b.FullDate())
}
