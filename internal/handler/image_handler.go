package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"briefdesk/pkg/imaging"
	"briefdesk/pkg/llm"

	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
)

// ImageHandler serves image generation, the cross-origin relay, and the
// crop endpoint.
type ImageHandler struct {
	// generator is nil when no Gemini credential is configured.
	generator llm.ImageGenerator
	loader    *imaging.Loader
}

func NewImageHandler(generator llm.ImageGenerator, loader *imaging.Loader) *ImageHandler {
	return &ImageHandler{generator: generator, loader: loader}
}

func (h *ImageHandler) GenerateImage(c *gin.Context) {
	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	if h.generator == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "GEMINI_API_KEY is not set"})
		return
	}

	imageURL, err := h.generator.GenerateImage(c.Request.Context(), req.Prompt)
	if err != nil {
		slog.Error("image generation failed", "error", err)
		var apiErr genai.APIError
		switch {
		case errors.Is(err, llm.ErrNoImagePart):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse image from response"})
		case errors.As(err, &apiErr):
			c.JSON(apiErr.Code, gin.H{"error": "Failed to generate image"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate image"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

// ProxyImage relays a remote image through this origin so the browser can
// read its pixels for cropping. No transformation is applied.
func (h *ImageHandler) ProxyImage(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.String(http.StatusBadRequest, "URL is required")
		return
	}

	data, contentType, err := h.loader.FetchBytes(c.Request.Context(), url)
	if err != nil {
		slog.Error("image proxy failed", "url", url, "error", err)
		var statusErr *imaging.StatusError
		if errors.As(err, &statusErr) {
			c.String(statusErr.Code, "Failed to fetch image")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to fetch image")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Header("Access-Control-Allow-Origin", "*")
	c.Data(http.StatusOK, contentType, data)
}

func (h *ImageHandler) CropImage(c *gin.Context) {
	var req CropRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}
	if req.Region.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Crop region is required"})
		return
	}

	img, err := h.loader.Load(c.Request.Context(), req.ImageURL)
	if err != nil {
		slog.Error("crop source load failed", "error", err)
		var statusErr *imaging.StatusError
		if errors.As(err, &statusErr) {
			c.JSON(statusErr.Code, gin.H{"error": "Failed to fetch image"})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not load source image"})
		return
	}

	bounds := img.Bounds()
	region := imaging.ScaleToNatural(req.Region, bounds.Dx(), bounds.Dy(), req.Display.Width, req.Display.Height)

	cropped, err := imaging.Crop(img, region)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Crop region is required"})
		return
	}

	imageURL, err := imaging.EncodeDataURI(cropped)
	if err != nil {
		slog.Error("crop encode failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to crop image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
