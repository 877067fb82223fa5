package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"briefdesk/internal/config"
	"briefdesk/internal/handler"
	"briefdesk/internal/store"
	"briefdesk/pkg/imaging"
	"briefdesk/pkg/llm"
	"briefdesk/pkg/reader"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	st, err := store.New(store.NewFileStorage(cfg.StorePath))
	if err != nil {
		log.Fatalf("error loading article store: %v", err)
	}

	ctx := context.Background()

	var gemini *llm.GeminiClient
	if cfg.GeminiAPIKey != "" {
		gemini, err = llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.DefaultModel, cfg.ImageModel)
		if err != nil {
			log.Fatalf("error creating gemini client: %v", err)
		}
	}

	var summarizer llm.Summarizer
	switch cfg.SummaryProvider {
	case config.ProviderOpenAI:
		summarizer = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
	case config.ProviderAnthropic:
		summarizer = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	default:
		summarizer = gemini
	}

	// Image generation is Gemini-only; without a credential the endpoint
	// reports a configuration error.
	var generator llm.ImageGenerator
	if gemini != nil {
		generator = gemini
	}

	readerClient := reader.NewClient(cfg.ReaderBaseURL)
	loader := imaging.NewLoader()

	generateHandler := handler.NewGenerateHandler(readerClient, summarizer, st, cfg.DefaultModel)
	imageHandler := handler.NewImageHandler(generator, loader)
	articleHandler := handler.NewArticleHandler(st)

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

	r.POST("/api/generate", generateHandler.Generate)
	r.POST("/api/generate-image", imageHandler.GenerateImage)
	r.GET("/api/proxy-image", imageHandler.ProxyImage)
	r.POST("/api/crop-image", imageHandler.CropImage)
	r.GET("/api/articles", articleHandler.List)
	r.POST("/api/articles", articleHandler.Create)
	r.PUT("/api/articles/:id", articleHandler.Update)
	r.DELETE("/api/articles/:id", articleHandler.Delete)
	r.DELETE("/api/articles", articleHandler.DeleteAll)
	r.POST("/api/articles/:id/move", articleHandler.Move)
	r.GET("/api/compose", articleHandler.Compose)
	r.GET("/health", articleHandler.GetHealth)

	err = r.Run(cfg.BindAddr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
