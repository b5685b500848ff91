package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// GalaxyClass names follow the Galaxy10 dataset ordering; the serving
// endpoint returns per-class probabilities in this order.
var GalaxyClasses = []string{
	"Disk, Face-on, No Spiral",
	"Disk, Face-on, Tight Spiral",
	"Disk, Face-on, Medium Spiral",
	"Disk, Face-on, Loose Spiral",
	"Disk, Edge-on, No Bulge",
	"Disk, Edge-on, Red Bulge",
	"Smooth, Completely round",
	"Smooth, In-between",
	"Smooth, Cigar shaped",
	"Star",
}

func GalaxyClassName(idx int) string {
	if idx < 0 || idx >= len(GalaxyClasses) {
		return "Unknown"
	}
	return GalaxyClasses[idx]
}

// Classification is the classifier verdict for one image.
type Classification struct {
	PredictedClass int
	ClassName      string
	Confidence     float64
	AllPredictions map[string]float64
}

// Classifier delegates galaxy inference to a remote model-serving endpoint.
// The model itself is out of scope here; we only ship the image and rank the
// returned probability vector.
type Classifier interface {
	Classify(ctx context.Context, imagePath string) (*Classification, error)
}

type HTTPClassifier struct {
	Endpoint string
	Client   *http.Client
}

var _ Classifier = &HTTPClassifier{}

func NewHTTPClassifier(endpoint string) *HTTPClassifier {
	return &HTTPClassifier{
		Endpoint: endpoint,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type classifyResponse struct {
	Predictions []float64 `json:"predictions"`
}

func (c *HTTPClassifier) Classify(ctx context.Context, imagePath string) (*Classification, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return nil, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("copy image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Endpoint, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed classifyResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(parsed.Predictions) == 0 {
		return nil, fmt.Errorf("classifier returned no predictions")
	}

	best := 0
	for i, p := range parsed.Predictions {
		if p > parsed.Predictions[best] {
			best = i
		}
	}

	all := make(map[string]float64, len(parsed.Predictions))
	for i, p := range parsed.Predictions {
		all[GalaxyClassName(i)] = p
	}

	return &Classification{
		PredictedClass: best,
		ClassName:      GalaxyClassName(best),
		Confidence:     parsed.Predictions[best],
		AllPredictions: all,
	}, nil
}
