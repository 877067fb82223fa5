package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"briefdesk/internal/model"
	"briefdesk/internal/store"
	"briefdesk/pkg/llm"
	"briefdesk/pkg/reader"

	"github.com/gin-gonic/gin"
)

type ContentFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*reader.Extract, error)
}

// GenerateHandler runs the ingestion pipeline: fetch readable text, ask the
// model for a summary, create the article record.
type GenerateHandler struct {
	fetcher      ContentFetcher
	summarizer   llm.Summarizer
	store        *store.Store
	defaultModel string
}

func NewGenerateHandler(fetcher ContentFetcher, summarizer llm.Summarizer, st *store.Store, defaultModel string) *GenerateHandler {
	return &GenerateHandler{
		fetcher:      fetcher,
		summarizer:   summarizer,
		store:        st,
		defaultModel: defaultModel,
	}
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	extract, err := h.fetcher.Fetch(c.Request.Context(), req.URL)
	if err != nil {
		var statusErr *reader.StatusError
		switch {
		case errors.Is(err, reader.ErrContentTooShort):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not extract meaningful content from this URL."})
		case errors.As(err, &statusErr):
			slog.Error("reader fetch failed", "url", req.URL, "status", statusErr.Code)
			c.JSON(statusErr.Code, gin.H{"error": "Failed to fetch content from this URL."})
		default:
			slog.Error("reader fetch failed", "url", req.URL, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content from this URL."})
		}
		return
	}

	modelName := req.Model
	if modelName == "" {
		modelName = h.defaultModel
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), extract.Text, modelName)
	if err != nil {
		slog.Error("summarization failed", "url", req.URL, "model", modelName, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	article := model.Article{
		Headline:        summary.Headline,
		Summary:         summary.Summary,
		ImageSuggestion: summary.ImageSuggestion,
		ImageQueries:    summary.ImageQueries,
		SourceURL:       req.URL,
		AvailableImages: extract.Images,
	}
	if article.AvailableImages == nil {
		article.AvailableImages = []string{}
	}
	if article.ImageQueries == nil {
		article.ImageQueries = []string{}
	}

	article, err = h.store.Add(article)
	if err != nil {
		slog.Error("error saving article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	c.JSON(http.StatusOK, article)
}
