package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusError reports a non-success status from an image host.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("image fetch returned %s", e.Status)
}

// Loader resolves image references. It accepts data URIs directly and
// fetches remote URLs over HTTP, which is also the relay path the proxy
// endpoint uses.
type Loader struct {
	httpClient *http.Client
}

func NewLoader() *Loader {
	return &Loader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchBytes retrieves the raw bytes and content type of a remote image.
func (l *Loader) FetchBytes(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("image request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("image fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("image read: %w", err)
	}
	return data, contentType, nil
}

// Load decodes the image behind ref, which is either a data URI or a
// remote URL.
func (l *Loader) Load(ctx context.Context, ref string) (image.Image, error) {
	var data []byte
	if strings.HasPrefix(ref, "data:") {
		var err error
		data, err = decodeDataURI(ref)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		data, _, err = l.FetchBytes(ctx, ref)
		if err != nil {
			return nil, err
		}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func decodeDataURI(uri string) ([]byte, error) {
	_, payload, found := strings.Cut(uri, ",")
	if !found {
		return nil, fmt.Errorf("malformed data URI")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data URI: %w", err)
	}
	return data, nil
}
