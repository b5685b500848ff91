package assistant

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"astro-observer/internal/client/api"
)

// FallbackReply is shown in place of an answer when the backend request
// fails; the conversation stays usable.
const FallbackReply = "Sorry, I could not reach the assistant just now. Please try again in a moment."

var ErrBusy = errors.New("assistant is still answering the previous message")

type Turn struct {
	Role      string
	Content   string
	Timestamp time.Time
}

// Sender is the one backend call the conversation needs.
type Sender interface {
	Chat(ctx context.Context, message, sessionId, moduleContext string) (*api.ChatReply, error)
}

// Conversation is the chat widget state: an ordered transcript with
// optimistic user turns and a busy latch so sends never interleave.
type Conversation struct {
	mu sync.Mutex

	sender        Sender
	newId         func() string
	sessionId     string
	moduleContext string
	turns         []Turn
	busy          bool
}

type Option func(*Conversation)

// WithSessionId pins the conversation to an existing session instead of
// starting a fresh one.
func WithSessionId(id string) Option {
	return func(c *Conversation) {
		c.sessionId = id
	}
}

// WithSessionIdGenerator replaces how fresh session ids are minted.
func WithSessionIdGenerator(gen func() string) Option {
	return func(c *Conversation) {
		c.newId = gen
	}
}

func NewConversation(sender Sender, moduleContext string, opts ...Option) *Conversation {
	c := &Conversation{
		sender:        sender,
		moduleContext: moduleContext,
		newId:         newSessionId,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sessionId == "" {
		c.sessionId = c.newId()
	}
	return c
}

func newSessionId() string {
	return "session_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Send submits one user message. A blank message is a no-op, and a send
// while a previous one is in flight returns ErrBusy without touching the
// transcript. The user turn is appended before the network call; if the
// call fails the assistant answers with the fixed fallback text rather than
// surfacing an error mid-conversation.
func (c *Conversation) Send(ctx context.Context, message string) (*Turn, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, nil
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	c.busy = true
	c.turns = append(c.turns, Turn{Role: "user", Content: message, Timestamp: time.Now()})
	sessionId := c.sessionId
	c.mu.Unlock()

	reply, err := c.sender.Chat(ctx, message, sessionId, c.moduleContext)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false

	if err != nil {
		fallback := Turn{Role: "assistant", Content: FallbackReply, Timestamp: time.Now()}
		c.turns = append(c.turns, fallback)
		return &fallback, nil
	}

	if reply.SessionId != "" {
		c.sessionId = reply.SessionId
	}
	answer := Turn{Role: "assistant", Content: reply.Message, Timestamp: time.Now()}
	c.turns = append(c.turns, answer)
	return &answer, nil
}

func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

func (c *Conversation) SessionId() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionId
}

// Turns returns a copy of the transcript in order.
func (c *Conversation) Turns() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Turn, len(c.turns))
	copy(out, c.turns)
	return out
}
