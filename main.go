package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/finscan/finscan/config"
	"github.com/finscan/finscan/handler"
	"github.com/finscan/finscan/service"
	"github.com/finscan/finscan/utils/docscan"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Walk diagnostics go through a structured logger.
	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	reporter := docscan.SlogReporter{Log: logger}

	// Initialize service layer
	documentService := service.NewDocumentService(reporter)

	// Initialize handler layer
	documentHandler := handler.NewDocumentHandler(documentService, cfg.MaxFileSize)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "FinScan Highest Value Extraction",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		documents := api.Group("/documents")
		{
			documents.POST("/highest-value", documentHandler.FindHighestValue)
		}
	}

	// Start server
	log.Printf("Starting FinScan service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
