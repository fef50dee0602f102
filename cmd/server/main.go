package main

import (
	"log"
	"os"
	"soapbox/internal/db"
	"soapbox/internal/handlers"
	"soapbox/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("soapbox_session", store))

	// Middleware
	r.Use(middleware.LoadUser())

	// Handlers
	authHandler := handlers.NewAuthHandler()
	opinionHandler := handlers.NewOpinionHandler()
	commentHandler := handlers.NewCommentHandler()
	reactionHandler := handlers.NewReactionHandler()
	reviewHandler := handlers.NewReviewHandler()
	notificationHandler := handlers.NewNotificationHandler()

	// Public Routes
	r.POST("/signup", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)
	r.GET("/opinions", opinionHandler.List)
	r.GET("/opinions/:slug", opinionHandler.Detail)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/opinions", opinionHandler.Create)
		authorized.PUT("/opinions/:slug", opinionHandler.Update)
		authorized.PATCH("/status/:type/:id", opinionHandler.StatusPatch)

		authorized.POST("/comments/:type/:id", commentHandler.Create)
		authorized.PUT("/comments/:id", commentHandler.Update)

		authorized.PATCH("/react/:type/:id", reactionHandler.Patch)
		authorized.GET("/react/:type/:id", reactionHandler.Status)

		// Report filing is rate limited per user
		authorized.POST("/report/:type/:id",
			middleware.RateLimit(rate.Limit(1), 5), reviewHandler.Report)

		// Decisions are gated in the service: moderators resolve,
		// requesters may withdraw their own report.
		authorized.POST("/reviews/:id/decision", reviewHandler.Decision)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
		authorized.DELETE("/notifications/:id", notificationHandler.Delete)
	}

	// Moderation Routes
	moderation := r.Group("/reviews")
	moderation.Use(middleware.AuthRequired(), middleware.ModeratorRequired())
	{
		moderation.GET("", reviewHandler.List)
		moderation.GET("/:id", reviewHandler.Get)
		moderation.PATCH("/:id/status", reviewHandler.StatusPatch)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Soapbox server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
