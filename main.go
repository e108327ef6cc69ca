package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/internal/services"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureCartIndexes(db); err != nil {
		log.Printf("cart index warning: %v", err)
	}

	mailer := services.NewMailer(
		config.AppEnv.SMTPHost,
		config.AppEnv.SMTPPort,
		config.AppEnv.SMTPUser,
		config.AppEnv.SMTPPass,
		config.AppEnv.EmailFrom,
		config.AppEnv.AppURL,
	)

	r := gin.Default()

	r.GET("/products", handlers.GetProducts())
	r.GET("/products/:id", handlers.GetProduct())

	r.GET("/api/cart", handlers.GetCart(db))
	r.POST("/api/cart/items", handlers.AddCartItem(db))
	r.PUT("/api/cart/items/:productId", handlers.SetCartQuantity(db))
	r.DELETE("/api/cart/items/:productId", handlers.RemoveCartItem(db))
	r.DELETE("/api/cart", handlers.ClearCart(db))

	r.POST("/api/checkout", handlers.CreateCheckoutSession(
		config.AppEnv.StripeSecretKey,
		config.AppEnv.AppURL,
	))
	r.POST("/api/webhook", handlers.HandleStripeWebhook(db, mailer, config.AppEnv.StripeWebhookSecret))

	r.GET("/orders/by-session/:sessionId", handlers.GetOrderBySession(db))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.AdminPassword))
	{
		admin.GET("/orders", handlers.GetAdminOrders(db))
		admin.PATCH("/orders/:id", handlers.UpdateAdminOrder(db, mailer))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
