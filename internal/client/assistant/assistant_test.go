package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"astro-observer/internal/client/api"
)

type fakeSender struct {
	reply   string
	err     error
	calls   int
	gate    chan struct{} // when set, Chat blocks until closed
	lastMsg string
}

func (f *fakeSender) Chat(ctx context.Context, message, sessionId, moduleContext string) (*api.ChatReply, error) {
	f.calls++
	f.lastMsg = message
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return &api.ChatReply{SessionId: sessionId, Message: f.reply, Role: "assistant"}, nil
}

func TestSendAppendsBothTurnsInOrder(t *testing.T) {
	sender := &fakeSender{reply: "Andromeda is 2.5 million light years away."}
	conv := NewConversation(sender, "galaxy")

	if _, err := conv.Send(context.Background(), "How far is Andromeda?"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	sender.reply = "It is visible to the naked eye under dark skies."
	if _, err := conv.Send(context.Background(), "Can I see it without a telescope?"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	turns := conv.Turns()
	if len(turns) != 4 {
		t.Fatalf("len(turns) = %d, want 4", len(turns))
	}
	wantRoles := []string{"user", "assistant", "user", "assistant"}
	for i, want := range wantRoles {
		if turns[i].Role != want {
			t.Errorf("turns[%d].Role = %q, want %q", i, turns[i].Role, want)
		}
	}
	if turns[1].Content != "Andromeda is 2.5 million light years away." {
		t.Errorf("unexpected first reply: %q", turns[1].Content)
	}
}

func TestSendEmptyMessageIsNoOp(t *testing.T) {
	sender := &fakeSender{reply: "unused"}
	conv := NewConversation(sender, "")

	turn, err := conv.Send(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if turn != nil {
		t.Errorf("Send() returned turn %v, want nil", turn)
	}
	if sender.calls != 0 {
		t.Errorf("sender called %d times, want 0", sender.calls)
	}
	if len(conv.Turns()) != 0 {
		t.Errorf("transcript has %d turns, want 0", len(conv.Turns()))
	}
}

func TestSendFailureAppendsFallback(t *testing.T) {
	sender := &fakeSender{err: errors.New("backend down")}
	conv := NewConversation(sender, "positioning")

	turn, err := conv.Send(context.Background(), "What is RA?")
	if err != nil {
		t.Fatalf("Send() error = %v, want nil (fallback)", err)
	}
	if turn == nil || turn.Content != FallbackReply {
		t.Fatalf("Send() = %v, want fallback turn", turn)
	}

	turns := conv.Turns()
	if len(turns) != 2 {
		t.Fatalf("len(turns) = %d, want 2", len(turns))
	}
	if turns[0].Role != "user" || turns[1].Content != FallbackReply {
		t.Errorf("unexpected transcript: %+v", turns)
	}

	// The conversation must stay usable after a failure.
	sender.err = nil
	sender.reply = "Right ascension is the celestial longitude."
	if _, err := conv.Send(context.Background(), "Try again?"); err != nil {
		t.Fatalf("Send() after failure error = %v", err)
	}
	if got := len(conv.Turns()); got != 4 {
		t.Errorf("len(turns) = %d, want 4", got)
	}
}

func TestSendWhileBusyIsRejected(t *testing.T) {
	sender := &fakeSender{reply: "ok", gate: make(chan struct{})}
	conv := NewConversation(sender, "")

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := conv.Send(context.Background(), "first"); err != nil {
			t.Errorf("first Send() error = %v", err)
		}
	}()

	// Wait until the first send is holding the busy latch.
	for !conv.Busy() {
	}

	if _, err := conv.Send(context.Background(), "second"); !errors.Is(err, ErrBusy) {
		t.Errorf("second Send() error = %v, want ErrBusy", err)
	}

	close(sender.gate)
	<-done

	if sender.calls != 1 {
		t.Errorf("sender called %d times, want 1", sender.calls)
	}
}

func TestTurnsCarryTimestamps(t *testing.T) {
	before := time.Now()
	sender := &fakeSender{reply: "ok"}
	conv := NewConversation(sender, "")

	if _, err := conv.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	sender.err = errors.New("backend down")
	if _, err := conv.Send(context.Background(), "again"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	for i, turn := range conv.Turns() {
		if turn.Timestamp.IsZero() {
			t.Errorf("turns[%d].Timestamp is zero", i)
		}
		if turn.Timestamp.Before(before) {
			t.Errorf("turns[%d].Timestamp = %v, before the conversation started", i, turn.Timestamp)
		}
	}
}

func TestSessionIdGeneratorInjected(t *testing.T) {
	conv := NewConversation(&fakeSender{reply: "ok"}, "",
		WithSessionIdGenerator(func() string { return "session_fixed" }))

	if got := conv.SessionId(); got != "session_fixed" {
		t.Errorf("SessionId() = %q, want session_fixed", got)
	}

	// An explicit id wins over the generator.
	pinned := NewConversation(&fakeSender{reply: "ok"}, "",
		WithSessionIdGenerator(func() string { return "session_fixed" }),
		WithSessionId("session_existing"))
	if got := pinned.SessionId(); got != "session_existing" {
		t.Errorf("SessionId() = %q, want session_existing", got)
	}
}

func TestSessionIdAdoptedFromServer(t *testing.T) {
	conv := NewConversation(&serverAssignsId{}, "", WithSessionId(""))

	if _, err := conv.Send(context.Background(), "hi"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if conv.SessionId() != "session_assigned" {
		t.Errorf("SessionId() = %q, want %q", conv.SessionId(), "session_assigned")
	}
}

type serverAssignsId struct{}

func (s *serverAssignsId) Chat(ctx context.Context, message, sessionId, moduleContext string) (*api.ChatReply, error) {
	return &api.ChatReply{SessionId: "session_assigned", Message: "hi there", Role: "assistant"}, nil
}
