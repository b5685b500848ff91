package api

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

// APIError is a failure the server reported deliberately, as opposed to a
// transport problem.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the AstroObserver REST backend. The token source is read
// on every call so a login or logout in the same process takes effect
// immediately.
type Client struct {
	BaseURL     string
	TokenSource func() string
	HTTPClient  *http.Client

	// SolveClient tolerates the multi-minute plate-solve wait.
	SolveClient *http.Client
}

func NewClient(baseURL string, tokenSource func() string) *Client {
	return &Client{
		BaseURL:     baseURL,
		TokenSource: tokenSource,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		SolveClient: &http.Client{
			Timeout: 6 * time.Minute,
		},
	}
}

func (c *Client) Register(ctx context.Context, username, email, password, nickname string) (*User, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
		"nickname": nickname,
	}
	var out struct {
		User User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (string, *User, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var out struct {
		AccessToken string `json:"access_token"`
		User        User   `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return "", nil, err
	}
	return out.AccessToken, &out.User, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, nickname, avatar *string) (*User, error) {
	body := map[string]*string{
		"nickname": nickname,
		"avatar":   avatar,
	}
	var out struct {
		User User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/api/user/profile", body, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) HomepageContent(ctx context.Context, contentType string) ([]HomepageContent, error) {
	path := "/api/homepage/content"
	if contentType != "" {
		path += "?type=" + url.QueryEscape(contentType)
	}
	var out struct {
		Contents []HomepageContent `json:"contents"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Contents, nil
}

func (c *Client) ClassifyGalaxy(ctx context.Context, imagePath string) (*GalaxyResult, error) {
	var out struct {
		Result GalaxyResult `json:"result"`
	}
	if err := c.doUpload(ctx, "/api/galaxy/classify", imagePath, &out); err != nil {
		return nil, err
	}
	return &out.Result, nil
}

func (c *Client) GalaxyHistory(ctx context.Context, limit int) ([]GalaxyHistoryItem, error) {
	var out struct {
		History []GalaxyHistoryItem `json:"history"`
	}
	if err := c.doJSON(ctx, http.MethodGet, historyPath("/api/galaxy/history", limit), nil, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

func (c *Client) RecognizeConstellation(ctx context.Context, imagePath string) (*ConstellationResult, error) {
	var out struct {
		Result ConstellationResult `json:"result"`
	}
	if err := c.doUpload(ctx, "/api/constellation/recognize", imagePath, &out); err != nil {
		return nil, err
	}
	return &out.Result, nil
}

func (c *Client) ConstellationHistory(ctx context.Context, limit int) ([]ConstellationHistoryItem, error) {
	var out struct {
		History []ConstellationHistoryItem `json:"history"`
	}
	if err := c.doJSON(ctx, http.MethodGet, historyPath("/api/constellation/history", limit), nil, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

// SolvePositioning can legitimately block for minutes while the remote
// solver grinds; callers should pass a generous context deadline.
func (c *Client) SolvePositioning(ctx context.Context, imagePath string) (*PositioningResult, error) {
	var out struct {
		Result PositioningResult `json:"result"`
	}
	if err := c.doUploadWith(ctx, c.SolveClient, "/api/positioning/solve", imagePath, &out); err != nil {
		return nil, err
	}
	return &out.Result, nil
}

func (c *Client) PositioningHistory(ctx context.Context, limit int) ([]PositioningHistoryItem, error) {
	var out struct {
		History []PositioningHistoryItem `json:"history"`
	}
	if err := c.doJSON(ctx, http.MethodGet, historyPath("/api/positioning/history", limit), nil, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

func (c *Client) Chat(ctx context.Context, message, sessionId, moduleContext string) (*ChatReply, error) {
	body := map[string]string{
		"message":        message,
		"session_id":     sessionId,
		"module_context": moduleContext,
	}
	var out struct {
		Result ChatReply `json:"result"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/tianxun-ai/chat", body, &out); err != nil {
		return nil, err
	}
	return &out.Result, nil
}

func (c *Client) ChatHistory(ctx context.Context, sessionId string) ([]ChatHistoryItem, error) {
	var out struct {
		History []ChatHistoryItem `json:"history"`
	}
	path := "/api/tianxun-ai/history?session_id=" + url.QueryEscape(sessionId)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

func (c *Client) ChatSessions(ctx context.Context) ([]string, error) {
	var out struct {
		Sessions []string `json:"sessions"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/tianxun-ai/sessions", nil, &out); err != nil {
		return nil, err
	}
	return out.Sessions, nil
}

func (c *Client) SaveView(ctx context.Context, req *SaveViewRequest) (*SpaceView, error) {
	var out struct {
		View SpaceView `json:"view"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/space-engine/save-view", req, &out); err != nil {
		return nil, err
	}
	return &out.View, nil
}

func (c *Client) SpaceData(ctx context.Context, dataType string) ([]SpaceView, error) {
	path := "/api/space-engine/get-data"
	if dataType != "" {
		path += "?type=" + url.QueryEscape(dataType)
	}
	var out struct {
		Data []SpaceView `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func historyPath(path string, limit int) string {
	if limit > 0 {
		return path + "?limit=" + strconv.Itoa(limit)
	}
	return path
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) doUpload(ctx context.Context, path, imagePath string, out interface{}) error {
	return c.doUploadWith(ctx, c.HTTPClient, path, imagePath, out)
}

func (c *Client) doUploadWith(ctx context.Context, client *http.Client, path, imagePath string, out interface{}) error {
	f, err := os.Open(imagePath)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filepath.Base(imagePath))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.sendWith(client, req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	return c.sendWith(c.HTTPClient, req, out)
}

func (c *Client) sendWith(client *http.Client, req *http.Request, out interface{}) error {
	if token := c.TokenSource(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(bodyBytes, &apiErr); err == nil && apiErr.Error != "" {
			return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
		}
		return &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("request failed with status %d", resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(bodyBytes, out)
}
