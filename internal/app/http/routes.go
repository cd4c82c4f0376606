package routes

import (
	authapi "library-service/internal/api/auth"
	booksapi "library-service/internal/api/books"
	borrowingsapi "library-service/internal/api/borrowings"
	paymentsapi "library-service/internal/api/payments"
	stripewebhooks "library-service/internal/api/stripewebhook"
	"library-service/internal/app/http/middleware"
	"library-service/internal/domain/access"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Payments *paymentsapi.Handler
	Webhook  *stripewebhooks.Handler
	Notify   *borrowingsapi.NotifyHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	// webhook auth is the Stripe signature, not a bearer token
	r.POST("/webhook/stripe", h.Webhook.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	r.GET("/auth/google", authapi.GoogleStart)
	r.GET("/auth/google/callback", authapi.GoogleCallback)

	// Catalog: reads are open to anyone, writes are staff-only.
	books := r.Group("/books")
	books.Use(middleware.Identify())
	books.GET("", middleware.Require(access.ResourceBooks, access.ActionRead), booksapi.ListBooks)
	books.GET("/:id", middleware.Require(access.ResourceBooks, access.ActionRead), booksapi.GetBook)
	books.POST("", middleware.Require(access.ResourceBooks, access.ActionCreate), booksapi.CreateBook)
	books.PUT("/:id", middleware.Require(access.ResourceBooks, access.ActionUpdate), booksapi.UpdateBook)
	books.PATCH("/:id", middleware.Require(access.ResourceBooks, access.ActionUpdate), booksapi.PatchBook)
	books.DELETE("/:id", middleware.Require(access.ResourceBooks, access.ActionDelete), booksapi.DeleteBook)

	borrowing := r.Group("/borrowing")
	borrowing.Use(middleware.AuthMiddleware())
	borrowing.GET("", middleware.Require(access.ResourceBorrowings, access.ActionRead), borrowingsapi.ListBorrowings)
	borrowing.POST("", middleware.Require(access.ResourceBorrowings, access.ActionCreate), borrowingsapi.CreateBorrowing)
	borrowing.GET("/:id", middleware.Require(access.ResourceBorrowings, access.ActionRead), borrowingsapi.GetBorrowing)
	borrowing.POST("/:id/return", middleware.Require(access.ResourceBorrowings, access.ActionReturn), borrowingsapi.ReturnBorrowing)
	borrowing.POST("/notify-overdue", middleware.Require(access.ResourceBorrowings, access.ActionNotify), h.Notify.NotifyOverdue)

	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	payments.GET("", middleware.Require(access.ResourcePayments, access.ActionRead), h.Payments.ListPayments)
	payments.POST("", middleware.Require(access.ResourcePayments, access.ActionCreate), h.Payments.CreatePayment)
	payments.GET("/:id", middleware.Require(access.ResourcePayments, access.ActionRead), h.Payments.GetPayment)
	payments.GET("/:id/success", middleware.Require(access.ResourcePayments, access.ActionRead), h.Payments.PaymentSuccess)
	payments.GET("/:id/cancel", middleware.Require(access.ResourcePayments, access.ActionRead), h.Payments.PaymentCancel)
}
