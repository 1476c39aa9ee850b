// Package ocr provides HTTP access to the OCR engine that turns capture
// image bytes into positioned text boxes.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/skiftkoll/skiftkoll/pkg/config"
	"github.com/skiftkoll/skiftkoll/pkg/models"
)

// Client calls the OCR service's recognize endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an HTTP client for the OCR service.
func NewClient(cfg config.OCRConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.ServiceURL, "/"),
	}
}

// recognizeResponse is the OCR service's wire format. Box coordinates
// are pixels in image space.
type recognizeResponse struct {
	Boxes []models.Box `json:"boxes"`
}

// Recognize submits image bytes and returns the detected text boxes.
// imageName is advisory only; the service uses it to pick a decoder by
// file extension.
func (c *Client) Recognize(ctx context.Context, imageName string, imageBytes []byte) ([]models.Box, error) {
	endpoint := c.baseURL + "/v1/recognize"
	if imageName != "" {
		endpoint += "?name=" + url.QueryEscape(imageName)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call OCR service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("OCR service returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode OCR response: %w", err)
	}
	return decoded.Boxes, nil
}
