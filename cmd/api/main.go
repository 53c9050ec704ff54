package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/osJerome/fireflies-service/internal/config"
	"github.com/osJerome/fireflies-service/internal/handler"
	"github.com/osJerome/fireflies-service/internal/middleware"
	"github.com/osJerome/fireflies-service/pkg/cost"
	"github.com/osJerome/fireflies-service/pkg/fireflies"
	"github.com/osJerome/fireflies-service/pkg/llm"
	"github.com/osJerome/fireflies-service/pkg/taxonomy"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	tax, err := taxonomy.Load()
	if err != nil {
		log.Fatalf("error loading question catalogue: %v", err)
	}

	ledger, err := cost.NewLedger(cfg.CostLogDir)
	if err != nil {
		log.Fatalf("error opening cost ledger: %v", err)
	}
	defer ledger.Close()

	tracker := cost.NewTracker(ledger)

	firefliesClient := fireflies.NewClient(cfg.FirefliesURL, cfg.FirefliesAPIKey)
	openAIClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.GPTModel, tracker, tax)

	h := handler.NewTranscriptHandler(firefliesClient, openAIClient, openAIClient, cfg.FirefliesAPIKey != "")

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	r.Use(middleware.RequestID())

	r.GET("/health-check", h.HealthCheck)
	r.POST("/get-user", h.GetUsers)
	r.POST("/get-transcriptions", h.GetTranscriptions)
	r.POST("/get-transcription-messages", h.GetTranscriptMessages)
	r.POST("/parse-transcript", h.ParseTranscript)
	r.POST("/extract-information", h.ExtractInformation)
	r.POST("/extract-cheat-sheet", h.ExtractCheatSheet)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
