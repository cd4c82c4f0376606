package books_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"library-service/database"
	booksapi "library-service/internal/api/books"
	"library-service/internal/domain/books"
	"library-service/internal/domain/borrowings"
	"library-service/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.DB = db
	return db
}

func router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/books", booksapi.ListBooks)
	r.GET("/books/:id", booksapi.GetBook)
	r.POST("/books", booksapi.CreateBook)
	r.PUT("/books/:id", booksapi.UpdateBook)
	r.PATCH("/books/:id", booksapi.PatchBook)
	r.DELETE("/books/:id", booksapi.DeleteBook)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookBody() map[string]any {
	return map[string]any{
		"title":     "Kobzar",
		"author":    "Taras Shevchenko",
		"cover":     "HARD",
		"inventory": 3,
		"daily_fee": "1.50",
	}
}

func TestCreateBook(t *testing.T) {
	db := setupDB(t)

	w := doJSON(router(), http.MethodPost, "/books", bookBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var b books.Book
	require.NoError(t, db.First(&b, "title = ?", "Kobzar").Error)
	assert.Equal(t, uint(3), b.Inventory)
	assert.Equal(t, "1.50", b.DailyFee.StringFixed(2))
}

func TestCreateBookValidation(t *testing.T) {
	setupDB(t)
	r := router()

	body := bookBody()
	body["inventory"] = 0
	w := doJSON(r, http.MethodPost, "/books", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "inventory")

	body = bookBody()
	body["daily_fee"] = "0"
	w = doJSON(r, http.MethodPost, "/books", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "daily_fee")
}

func TestGetBook(t *testing.T) {
	setupDB(t)
	r := router()
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/books", bookBody()).Code)

	w := doJSON(r, http.MethodGet, "/books/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kobzar")

	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodGet, "/books/99", nil).Code)
}

func TestUpdateBook(t *testing.T) {
	db := setupDB(t)
	r := router()
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/books", bookBody()).Code)

	body := bookBody()
	body["inventory"] = 7
	w := doJSON(r, http.MethodPut, "/books/1", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var b books.Book
	require.NoError(t, db.First(&b, 1).Error)
	assert.Equal(t, uint(7), b.Inventory)
}

func TestPatchBook(t *testing.T) {
	db := setupDB(t)
	r := router()
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/books", bookBody()).Code)

	w := doJSON(r, http.MethodPatch, "/books/1", map[string]any{"daily_fee": "2.25"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var b books.Book
	require.NoError(t, db.First(&b, 1).Error)
	assert.Equal(t, "2.25", b.DailyFee.StringFixed(2))
	assert.Equal(t, "Kobzar", b.Title)

	// patching a field to an invalid value is still rejected
	w = doJSON(r, http.MethodPatch, "/books/1", map[string]any{"inventory": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteBook(t *testing.T) {
	db := setupDB(t)
	r := router()
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/books", bookBody()).Code)

	w := doJSON(r, http.MethodDelete, "/books/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	require.NoError(t, db.Model(&books.Book{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteBookWithActiveBorrowings(t *testing.T) {
	db := setupDB(t)
	r := router()
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/books", bookBody()).Code)

	u := users.User{Email: "reader@example.com", Role: users.RoleUser}
	require.NoError(t, db.Create(&u).Error)
	b := borrowings.Borrowing{
		BorrowDate:         time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
		ExpectedReturnDate: time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC),
		BookID:             1,
		UserID:             u.ID,
	}
	require.NoError(t, db.Create(&b).Error)

	w := doJSON(r, http.MethodDelete, "/books/1", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// once the copy comes back the delete goes through
	now := time.Now().UTC()
	require.NoError(t, db.Model(&b).Update("actual_return_date", now).Error)
	assert.Equal(t, http.StatusNoContent, doJSON(r, http.MethodDelete, "/books/1", nil).Code)

	var count int64
	require.NoError(t, db.Model(&books.Book{}).Count(&count).Error)
	assert.Zero(t, count)
}
