package main

import (
	"os"
	"time"

	"library-service/config"
	"library-service/database"
	borrowingsapi "library-service/internal/api/borrowings"
	paymentsapi "library-service/internal/api/payments"
	stripewebhooks "library-service/internal/api/stripewebhook"
	routes "library-service/internal/app/http"
	"library-service/internal/notify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	paymentsCfg := config.Payments()
	checkout := paymentsapi.NewStripeOpener(paymentsCfg)
	sender := notify.NewTelegramSender(config.Notifier())

	handlers := routes.Handlers{
		Payments: paymentsapi.NewHandler(paymentsCfg, checkout),
		Webhook:  stripewebhooks.NewHandler(paymentsCfg),
		Notify:   borrowingsapi.NewNotifyHandler(notify.NewOverdueNotifier(database.DB, sender)),
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, handlers)

	r.Run(":" + config.PORT)
}
