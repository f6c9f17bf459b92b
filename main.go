package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/in4matic/wallet-api/api"
	"github.com/in4matic/wallet-api/db"
	_ "github.com/in4matic/wallet-api/docs"
	"github.com/in4matic/wallet-api/token"
)

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("%s: invalid duration %q", name, raw)
	}
	return d
}

// @title in4matic Wallet API
// @version 0.1.0
// @description Personal finance REST API: accounts, transactions and category totals.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment as-is")
	}

	connStr := os.Getenv("POSTGRES_URL")
	storage, err := db.NewStorage(connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer storage.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	tokens := token.NewService(
		jwtSecret,
		envDuration("JWT_EXPIRES_IN", 15*time.Minute),
		envDuration("REFRESH_TOKEN_EXPIRES_IN", 30*24*time.Hour),
	)

	handler := api.NewHandler(storage, tokens)

	r := gin.Default()

	users := r.Group("/users")
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/refresh", handler.Refresh)
	users.GET("/profile", handler.AuthMiddleware(), handler.Profile)
	users.GET("/logout", handler.AuthMiddleware(), handler.Logout)

	transactions := r.Group("/transactions", handler.AuthMiddleware())
	transactions.GET("/categories/totals", handler.GetCategoryTotals)
	transactions.GET("/categories/:month/:year", handler.GetFilteredCategoryTotals)
	transactions.GET("/:month/:year", handler.FilterTransactions)
	transactions.PATCH("/:id", handler.UpdateTransaction)
	transactions.DELETE("/:id", handler.DeleteTransaction)
	transactions.GET("", handler.GetTransactions)
	transactions.POST("", handler.CreateTransaction)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.Run()
}
