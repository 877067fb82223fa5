package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"briefdesk/internal/compose"
	"briefdesk/internal/model"
	"briefdesk/internal/store"

	"github.com/gin-gonic/gin"
)

// ArticleHandler exposes the article list: CRUD, adjacent reorder, and the
// clipboard composition.
type ArticleHandler struct {
	store *store.Store
}

func NewArticleHandler(st *store.Store) *ArticleHandler {
	return &ArticleHandler{store: st}
}

func (h *ArticleHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var article model.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article"})
		return
	}
	normalize(&article)

	article, err := h.store.Add(article)
	if err != nil {
		slog.Error("error saving article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save article"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	var article model.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article"})
		return
	}
	normalize(&article)

	article, err := h.store.Update(c.Param("id"), article)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	if err != nil {
		slog.Error("error updating article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save article"})
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	err := h.store.Remove(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	if err != nil {
		slog.Error("error deleting article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ArticleHandler) DeleteAll(c *gin.Context) {
	if err := h.store.RemoveAll(); err != nil {
		slog.Error("error deleting articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete articles"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Move swaps the article with its neighbor. Moving past either end of the
// list is a no-op, not an error.
func (h *ArticleHandler) Move(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid direction"})
		return
	}

	var direction store.Direction
	switch req.Direction {
	case "up":
		direction = store.DirectionUp
	case "down":
		direction = store.DirectionDown
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid direction"})
		return
	}

	index, ok := h.store.IndexOf(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}

	if err := h.store.Reorder(index, direction); err != nil {
		slog.Error("error reordering articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder articles"})
		return
	}
	c.JSON(http.StatusOK, h.store.List())
}

// Compose renders the current list into the HTML email body and the
// plain-text fallback; the browser writes both to the clipboard as one
// copy action.
func (h *ArticleHandler) Compose(c *gin.Context) {
	articles := h.store.List()
	c.JSON(http.StatusOK, gin.H{
		"html": compose.HTML(articles),
		"text": compose.Text(articles),
	})
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func normalize(a *model.Article) {
	if a.AvailableImages == nil {
		a.AvailableImages = []string{}
	}
	if a.ImageQueries == nil {
		a.ImageQueries = []string{}
	}
}
