package astrometry

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

// Client drives the remote plate-solving job service: upload an image, poll
// the job until it settles, fetch the calibration. The service wraps
// solve-field; one solve can legitimately take minutes.
type Client struct {
	BaseURL      string
	APIKey       string
	PollInterval time.Duration
	MaxWait      time.Duration
	HTTPClient   *http.Client
}

func NewClient(baseURL, apiKey string, pollInterval, maxWait time.Duration) *Client {
	return &Client{
		BaseURL:      baseURL,
		APIKey:       apiKey,
		PollInterval: pollInterval,
		MaxWait:      maxWait,
		HTTPClient: &http.Client{
			// Individual calls are quick; the long wait lives in the poll loop.
			Timeout: 30 * time.Second,
		},
	}
}

// Calibration is the solved plate geometry, all angles in degrees.
type Calibration struct {
	Ra          float64 `json:"ra"`
	Dec         float64 `json:"dec"`
	FieldWidth  float64 `json:"field_width"`
	FieldHeight float64 `json:"field_height"`
	Orientation float64 `json:"orientation"`
}

// Result carries the outcome of one solve attempt. Calibration is nil when
// the field could not be solved.
type Result struct {
	Solved      bool
	Calibration *Calibration
	SolveTime   float64 // seconds spent waiting, measured client side
}

var ErrUnsolved = fmt.Errorf("field could not be solved")

type uploadResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

type statusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type infoResponse struct {
	Calibration Calibration `json:"calibration"`
}

// SolveField uploads the image and blocks until the job succeeds, fails, or
// MaxWait elapses. Context cancellation aborts between polls.
func (c *Client) SolveField(ctx context.Context, imagePath string) (*Result, error) {
	start := time.Now()

	jobID, err := c.upload(ctx, imagePath)
	if err != nil {
		return nil, err
	}

	deadline := start.Add(c.MaxWait)
	for time.Now().Before(deadline) {
		status, err := c.jobStatus(ctx, jobID)
		if err != nil {
			return nil, err
		}

		switch status {
		case "success":
			cal, err := c.jobInfo(ctx, jobID)
			if err != nil {
				return nil, err
			}
			return &Result{
				Solved:      true,
				Calibration: cal,
				SolveTime:   time.Since(start).Seconds(),
			}, nil
		case "failure":
			return &Result{Solved: false, SolveTime: time.Since(start).Seconds()}, ErrUnsolved
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.PollInterval):
		}
	}

	return &Result{Solved: false, SolveTime: time.Since(start).Seconds()}, fmt.Errorf("solve timed out after %s", c.MaxWait)
}

func (c *Client) upload(ctx context.Context, imagePath string) (string, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(imagePath))
	if err != nil {
		return "", fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("copy image: %w", err)
	}
	if c.APIKey != "" {
		_ = writer.WriteField("apikey", c.APIKey)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.BaseURL+"/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed uploadResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.JobID == "" {
		return "", fmt.Errorf("no job id returned")
	}
	return parsed.JobID, nil
}

func (c *Client) jobStatus(ctx context.Context, jobID string) (string, error) {
	var parsed statusResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/jobs/%s", c.BaseURL, jobID), &parsed); err != nil {
		return "", err
	}
	return parsed.Status, nil
}

func (c *Client) jobInfo(ctx context.Context, jobID string) (*Calibration, error) {
	var parsed infoResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/jobs/%s/info", c.BaseURL, jobID), &parsed); err != nil {
		return nil, err
	}
	return &parsed.Calibration, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}
	return json.Unmarshal(bodyBytes, out)
}
