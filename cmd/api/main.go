package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/uncooked/internal/config"
	"github.com/justsurfingit/uncooked/internal/database"
	"github.com/justsurfingit/uncooked/internal/handlers"
	"github.com/justsurfingit/uncooked/internal/services"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// 3. Initialize Core Services
	jobService := services.NewJobService(db)
	resumeService := services.NewResumeService(db)
	editorService := services.NewEditorService(cfg.EditorSessionTTL, cfg.EditorReadOnly)

	// 4. Expire idle editor sessions
	stop := make(chan struct{})
	defer close(stop)
	editorService.StartJanitor(stop)

	// 5. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	editorHandler := handlers.NewEditorHandler(editorService, resumeService)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	handlers.RegisterRoutes(r.Group("/api/v1"), jobHandler, resumeHandler, editorHandler)

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
