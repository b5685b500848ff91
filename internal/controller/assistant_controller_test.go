package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"astro-observer/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type stubAssistantService struct{}

func (s *stubAssistantService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResult, error) {
	return &dto.ChatResult{SessionId: req.SessionId, Message: "hello there", Role: "assistant"}, nil
}

func (s *stubAssistantService) History(ctx context.Context, userId uuid.UUID, sessionId string) ([]*dto.ChatHistoryItem, error) {
	return nil, nil
}

func (s *stubAssistantService) Sessions(ctx context.Context, userId uuid.UUID) ([]string, error) {
	return nil, nil
}

func chatToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestChatReplyIsWrappedInResult(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	NewAssistantController(&stubAssistantService{}).RegisterRoutes(app.Group("/api"))

	req := httptest.NewRequest("POST", "/api/tianxun-ai/chat",
		strings.NewReader(`{"message":"How far is Andromeda?","session_id":"session_1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+chatToken(t))

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var parsed struct {
		Message string `json:"message"`
		Result  *struct {
			SessionId string `json:"session_id"`
			Message   string `json:"message"`
			Role      string `json:"role"`
		} `json:"result"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}

	if parsed.Result == nil {
		t.Fatalf("response has no result object: %s", body)
	}
	if parsed.Result.SessionId != "session_1" {
		t.Errorf("result.session_id = %q, want session_1", parsed.Result.SessionId)
	}
	if parsed.Result.Message != "hello there" || parsed.Result.Role != "assistant" {
		t.Errorf("unexpected result payload: %+v", parsed.Result)
	}
	if parsed.Message == "" {
		t.Error("top-level message missing")
	}
}
