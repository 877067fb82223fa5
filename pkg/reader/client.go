package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Jina reader endpoint. The reader converts a page
	// into a markdown-like plain-text rendering, which offloads JavaScript
	// rendering and boilerplate stripping.
	DefaultBaseURL = "https://r.jina.ai"

	minContentLength = 50
	maxImages        = 10

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// ErrContentTooShort means the reader responded but the extracted text is
// empty or below the minimum meaningful length.
var ErrContentTooShort = errors.New("could not extract meaningful content")

// StatusError reports a non-success status from the reader service.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("reader returned %s", e.Status)
}

// Extract is the readable rendering of a page: its plain text plus the
// candidate image URLs found inline.
type Extract struct {
	Text   string
	Images []string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch retrieves the readable text of pageURL through the reader service.
func (c *Client) Fetch(ctx context.Context, pageURL string) (*Extract, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("reader request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reader fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reader read: %w", err)
	}

	text := string(body)
	images := extractImages(text)

	if len(text) < minContentLength {
		return nil, ErrContentTooShort
	}

	return &Extract{Text: text, Images: images}, nil
}

var imagePattern = regexp.MustCompile(`!\[[^\]]*\]\(([^)]+)\)`)

// extractImages scans markdown image syntax for candidate URLs. SVG and GIF
// are skipped (unsuitable for email), duplicates keep their first position,
// and the list is capped at maxImages.
func extractImages(text string) []string {
	seen := make(map[string]struct{})
	var images []string

	for _, match := range imagePattern.FindAllStringSubmatch(text, -1) {
		u := match[1]
		if u == "" || unsuitableFormat(u) {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		images = append(images, u)
		if len(images) == maxImages {
			break
		}
	}

	return images
}

func unsuitableFormat(u string) bool {
	lower := strings.ToLower(u)
	return strings.HasSuffix(lower, ".svg") || strings.HasSuffix(lower, ".gif")
}
