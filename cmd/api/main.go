package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobseeker-backend/internal/auth"
	"jobseeker-backend/internal/config"
	"jobseeker-backend/internal/database"
	"jobseeker-backend/internal/handlers"
	"jobseeker-backend/internal/notify"
	"jobseeker-backend/internal/services"
	"jobseeker-backend/internal/storage"
)

func main() {
	cfg := config.Load()

	db := database.Connect(cfg.DatabaseDSN)

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	resumes, err := storage.NewLocalResumeStore(cfg.ResumeDir)
	if err != nil {
		log.Fatal("Failed to prepare resume storage:", err)
	}

	// Confirmation emails go through Gmail when OAuth material is present,
	// otherwise to the log.
	ctx := context.Background()
	var notifier notify.Notifier
	if gmailNotifier := notify.NewGmailNotifier(ctx, cfg.GmailSender); gmailNotifier != nil {
		notifier = gmailNotifier
	} else {
		notifier = notify.NewLogNotifier()
	}

	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	matcherService := services.NewMatcherService(db)
	applicationService := services.NewApplicationService(db, notifier)
	llmService := services.NewLLMService(ctx, cfg.GeminiAPIKey)

	authHandler := handlers.NewAuthHandler(userService, tokens, resumes)
	jobHandler := handlers.NewJobHandler(jobService, matcherService, llmService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	requireAuth := handlers.RequireAuth(tokens, userService)

	r.GET("/", handlers.Root)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
	}

	jobRoutes := r.Group("/jobs")
	{
		jobRoutes.GET("/", jobHandler.ListJobs)
		jobRoutes.GET("/recommended", requireAuth, jobHandler.RecommendedJobs)
		jobRoutes.POST("/", jobHandler.CreateJob)
		if llmService != nil {
			jobRoutes.POST("/extract", jobHandler.ExtractJob)
		}
	}

	applicationRoutes := r.Group("/applications")
	{
		applicationRoutes.POST("/", requireAuth, applicationHandler.SubmitApplication)
		applicationRoutes.GET("/", requireAuth, applicationHandler.ListApplications)
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
