package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"astro-observer/internal/dto"
	"astro-observer/internal/entity"
	"astro-observer/internal/pkg/logger"
	"astro-observer/internal/repository/memory"
	"astro-observer/internal/repository/specification"
	"astro-observer/internal/repository/unitofwork"

	"astro-observer/pkg/llm"

	"github.com/google/uuid"
)

const (
	// Turns fed back into the prompt per request.
	promptHistoryLimit = 10
	// Messages returned when a session transcript is requested.
	chatHistoryLimit = 50
	// Answered turns per user per day before we cut off.
	aiDailyLimit = 100
)

var ErrUsageLimitReached = errors.New("daily assistant usage limit reached")

type IAssistantService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResult, error)
	History(ctx context.Context, userId uuid.UUID, sessionId string) ([]*dto.ChatHistoryItem, error)
	Sessions(ctx context.Context, userId uuid.UUID) ([]string, error)
}

// assistantService is the TianXun AI backend: it threads conversation state
// through the LLM provider and keeps an authoritative transcript in the DB
// with a hot copy in memory.
type assistantService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	conversationRepo *memory.ConversationRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	conversationRepo *memory.ConversationRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		conversationRepo: conversationRepo,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *assistantService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatRequest) (*dto.ChatResult, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	if usageToday(user) >= aiDailyLimit {
		return nil, ErrUsageLimitReached
	}

	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = "session_" + uuid.New().String()
	}

	history, err := s.loadHistory(ctx, uow, userId, sessionId)
	if err != nil {
		s.logger.Warn("AssistantService", "Failed to load chat history", map[string]interface{}{"session_id": sessionId, "error": err.Error()})
		history = nil
	}

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: buildSystemPrompt(req.ModuleContext),
	})
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: entity.ChatRoleUser, Content: req.Message})

	reply, err := s.llmProvider.Chat(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}

	now := time.Now()
	var moduleContext *string
	if req.ModuleContext != "" {
		mc := req.ModuleContext
		moduleContext = &mc
	}

	userTurn := &entity.ChatTurn{
		Id:            uuid.New(),
		UserId:        userId,
		SessionId:     sessionId,
		Role:          entity.ChatRoleUser,
		Content:       req.Message,
		ModuleContext: moduleContext,
		CreatedAt:     now,
	}
	assistantTurn := &entity.ChatTurn{
		Id:            uuid.New(),
		UserId:        userId,
		SessionId:     sessionId,
		Role:          entity.ChatRoleAssistant,
		Content:       reply,
		ModuleContext: moduleContext,
		CreatedAt:     now.Add(1 * time.Millisecond),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatRepository().Create(ctx, userTurn); err != nil {
		return nil, err
	}
	if err := uow.ChatRepository().Create(ctx, assistantTurn); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.conversationRepo.Append(sessionId, userTurn, assistantTurn)

	if s.publisherService != nil {
		payload, _ := json.Marshal(dto.AiUsageMessage{UserId: userId})
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("AssistantService", "Failed to publish usage message", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.ChatResult{
		SessionId: sessionId,
		Message:   reply,
		Role:      entity.ChatRoleAssistant,
	}, nil
}

func (s *assistantService) History(ctx context.Context, userId uuid.UUID, sessionId string) ([]*dto.ChatHistoryItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	turns, err := uow.ChatRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.Pagination{Limit: chatHistoryLimit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ChatHistoryItem, 0, len(turns))
	for _, t := range turns {
		items = append(items, &dto.ChatHistoryItem{
			Id:            t.Id,
			SessionId:     t.SessionId,
			Role:          t.Role,
			Content:       t.Content,
			ModuleContext: t.ModuleContext,
			CreatedAt:     t.CreatedAt,
		})
	}
	return items, nil
}

func (s *assistantService) Sessions(ctx context.Context, userId uuid.UUID) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatRepository().DistinctSessions(ctx, userId)
}

// loadHistory prefers the in-memory copy and falls back to the DB, priming
// the cache for the next turn.
func (s *assistantService) loadHistory(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sessionId string) ([]*entity.ChatTurn, error) {
	if turns, found := s.conversationRepo.Get(sessionId); found {
		return turns, nil
	}

	turns, err := uow.ChatRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	if len(turns) > promptHistoryLimit {
		turns = turns[len(turns)-promptHistoryLimit:]
	}
	if len(turns) > 0 {
		s.conversationRepo.Put(sessionId, turns)
	}
	return turns, nil
}

func usageToday(user *entity.User) int {
	y, m, d := time.Now().Date()
	ry, rm, rd := user.AiDailyUsageLastReset.Date()
	if y != ry || m != rm || d != rd {
		return 0
	}
	return user.AiDailyUsage
}

// buildSystemPrompt anchors the assistant in the feature the user is
// currently on so answers stay on-topic.
func buildSystemPrompt(moduleContext string) string {
	base := "You are TianXun AI, the in-app astronomy assistant of the AstroObserver platform. " +
		"Answer questions about galaxies, constellations, celestial coordinates and observational astronomy. " +
		"Be accurate and concise; say so when you are unsure."

	switch moduleContext {
	case "galaxy":
		return base + " The user is on the galaxy classification page, which sorts images into the ten Galaxy10 morphology classes. " +
			"Help them interpret predicted classes, confidence values and galaxy morphology in general."
	case "constellation":
		return base + " The user is on the constellation recognition page, which detects constellations in sky photos with bounding boxes. " +
			"Help them with constellation shapes, seasonal visibility and star identification."
	case "positioning":
		return base + " The user is on the celestial positioning page, which plate-solves images into RA/Dec coordinates and field geometry. " +
			"Help them understand right ascension, declination, field of view and plate solving."
	case "space_engine":
		return base + " The user is exploring the interactive 3D starfield. " +
			"Help them with distances, coordinate systems and the objects they are flying past."
	}
	return base
}
