package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"finance_tracker/internal/api"     // Custom package for API handlers
	"finance_tracker/internal/auth"    // Custom package for session handling
	"finance_tracker/internal/cache"   // Custom package for the view cache
	"finance_tracker/internal/config"  // Custom package for configuration
	"finance_tracker/internal/service" // Custom package for the account service
	"finance_tracker/internal/store"   // Custom package for the record store

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Wire the account service: GORM store, Redis view cache, shared logger
	accountStore := store.NewGormAccountStore(db)
	views := cache.NewViews(redisClient)
	accounts := service.NewAccountService(accountStore, views, logrus.StandardLogger())

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(db))            // Registration endpoint
	r.GET("/user", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// Account routes (protected by JWT)
	accountGroup := r.Group("/account")
	accountGroup.Use(auth.Middleware(cfg.JWTSecret))
	accountGroup.POST("", api.CreateAccountHandler(accounts))           // Create account endpoint
	accountGroup.GET("", api.ListAccountsHandler(accounts, views))      // Account list endpoint
	accountGroup.GET("/:id", api.AccountDetailHandler(accounts, views)) // Account detail endpoint
	accountGroup.PUT("/:id", api.UpdateAccountHandler(accounts))        // Update account endpoint
	accountGroup.DELETE("/:id", api.DeleteAccountHandler(accounts))     // Delete account endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
