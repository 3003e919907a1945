package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/config"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/database"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/handlers"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/repository"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/services"
	"github.com/Avvarivenkatesh0714/ExamPro-GPT/session"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	// Connect to database
	if err := database.Connect(cfg.DatabasePath); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
	defer database.Close()

	// Upload directory is created up front
	uploader, err := services.NewUploader(cfg.UploadDir)
	if err != nil {
		log.Fatalf("❌ Failed to prepare upload directory: %v", err)
	}
	log.Printf("📁 Uploads stored in: %s", cfg.UploadDir)

	handlers.Configure(handlers.Deps{
		Store:     repository.NewGormStore(database.DB),
		Completer: services.NewCompletionClient(cfg.OpenRouterAPIKey, cfg.HTTPReferer, cfg.Model),
		Uploader:  uploader,
		Verifier:  session.NewCookieVerifier(),
	})

	// Setup Gin router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")

	// CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	// Cookie-backed sessions carry the identity and flash messages
	router.Use(sessions.Sessions("exampro_session", cookie.NewStore([]byte(cfg.SessionSecret))))

	// Health check
	router.GET("/health", handlers.Health)

	// Public pages
	router.GET("/", handlers.Entry)
	router.GET("/document", handlers.Document)
	router.GET("/index", handlers.Index)
	router.GET("/login", handlers.ShowLogin)
	router.POST("/login", handlers.Login)
	router.GET("/register", handlers.ShowRegister)
	router.POST("/register", handlers.Register)

	// Protected routes
	protected := router.Group("/", handlers.RequireSession())
	{
		protected.GET("/logout", handlers.Logout)
		protected.GET("/dashboard", handlers.ShowDashboard)
		protected.POST("/dashboard", handlers.SubmitDashboard)
		protected.GET("/history", handlers.History)
		protected.GET("/download_history", handlers.DownloadHistory)
		protected.POST("/delete_record/:id", handlers.DeleteRecord)
		protected.POST("/delete_all_history", handlers.DeleteAllHistory)
	}

	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
