package memory

import (
	"time"

	"astro-observer/internal/entity"

	"github.com/patrickmn/go-cache"
)

// ConversationRepository keeps the recent turns of active chat sessions in
// memory so the assistant can build its prompt without re-reading the DB on
// every message. Entries expire on their own; the DB stays the source of
// truth.
type ConversationRepository struct {
	cache    *cache.Cache
	maxTurns int
}

func NewConversationRepository(maxTurns int) *ConversationRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationRepository{
		cache:    c,
		maxTurns: maxTurns,
	}
}

func (r *ConversationRepository) Get(sessionId string) ([]*entity.ChatTurn, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.([]*entity.ChatTurn), true
	}
	return nil, false
}

func (r *ConversationRepository) Append(sessionId string, turns ...*entity.ChatTurn) {
	existing, _ := r.Get(sessionId)
	existing = append(existing, turns...)
	if len(existing) > r.maxTurns {
		existing = existing[len(existing)-r.maxTurns:]
	}
	r.cache.Set(sessionId, existing, cache.DefaultExpiration)
}

func (r *ConversationRepository) Put(sessionId string, turns []*entity.ChatTurn) {
	if len(turns) > r.maxTurns {
		turns = turns[len(turns)-r.maxTurns:]
	}
	r.cache.Set(sessionId, turns, cache.DefaultExpiration)
}

func (r *ConversationRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
