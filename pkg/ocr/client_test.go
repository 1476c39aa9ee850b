package ocr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiftkoll/skiftkoll/pkg/config"
)

func TestRecognize(t *testing.T) {
	var gotPath, gotName, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotName = r.URL.Query().Get("name")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = body
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"boxes":[{"text":"08:00","x":10.5,"y":20,"w":60,"h":14}]}`))
	}))
	defer server.Close()

	client := NewClient(config.OCRConfig{ServiceURL: server.URL + "/", Timeout: 5 * time.Second})
	boxes, err := client.Recognize(context.Background(), "a.png", []byte("fake-png"))
	require.NoError(t, err)

	assert.Equal(t, "/v1/recognize", gotPath)
	assert.Equal(t, "a.png", gotName)
	assert.Equal(t, "application/octet-stream", gotContentType)
	assert.Equal(t, []byte("fake-png"), gotBody)

	require.Len(t, boxes, 1)
	assert.Equal(t, "08:00", boxes[0].Text)
	assert.Equal(t, 10.5, boxes[0].X)
	assert.Equal(t, 14.0, boxes[0].H)
}

func TestRecognizeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(config.OCRConfig{ServiceURL: server.URL})
	_, err := client.Recognize(context.Background(), "a.png", []byte("fake-png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 503")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestRecognizeBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(config.OCRConfig{ServiceURL: server.URL})
	_, err := client.Recognize(context.Background(), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode OCR response")
}
