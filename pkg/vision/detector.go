package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Detection is one detected constellation with its bounding box.
type Detection struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// Detector delegates constellation detection to a hosted model (Roboflow).
type Detector interface {
	Detect(ctx context.Context, imagePath string) ([]Detection, error)
}

type RoboflowDetector struct {
	BaseURL       string // override for tests; empty means detect.roboflow.com
	APIKey        string
	ModelID       string
	Overlap       int
	MinConfidence int
	Client        *http.Client
}

var _ Detector = &RoboflowDetector{}

func NewRoboflowDetector(apiKey, modelID string, overlap, minConfidence int) *RoboflowDetector {
	return &RoboflowDetector{
		APIKey:        apiKey,
		ModelID:       modelID,
		Overlap:       overlap,
		MinConfidence: minConfidence,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type detectResponse struct {
	Predictions []Detection `json:"predictions"`
}

func (d *RoboflowDetector) Detect(ctx context.Context, imagePath string) ([]Detection, error) {
	if d.APIKey == "" {
		return nil, fmt.Errorf("roboflow api key not configured")
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(imagePath))
	if err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copy image: %w", err)
	}
	_ = writer.WriteField("overlap", strconv.Itoa(d.Overlap))
	_ = writer.WriteField("confidence", strconv.Itoa(d.MinConfidence))
	if err := writer.Close(); err != nil {
		return nil, err
	}

	base := d.BaseURL
	if base == "" {
		base = "https://detect.roboflow.com"
	}
	endpoint := fmt.Sprintf("%s/%s?api_key=%s", base, d.ModelID, url.QueryEscape(d.APIKey))

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := d.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detector request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detector error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed detectResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return parsed.Predictions, nil
}
