package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	chatdomain "mailmate-backend/internal/chat/domain"
	chatrepo "mailmate-backend/internal/chat/repository"
	chatusecase "mailmate-backend/internal/chat/usecase"
	"mailmate-backend/internal/email/dto"
	"mailmate-backend/internal/email/usecase"
	"mailmate-backend/internal/prompt"
	"mailmate-backend/pkg/ai"
)

// mockGenerator records prompts and returns a canned reply or error.
type mockGenerator struct {
	prompts []string
	reply   string
	err     error
}

func (m *mockGenerator) Generate(_ context.Context, p string) (string, error) {
	m.prompts = append(m.prompts, p)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func newFixture(gen ai.Generator) (usecase.EmailUsecase, chatusecase.ChatUsecase) {
	chatUc := chatusecase.NewChatUsecase(chatrepo.NewMemoryChatRepository())
	return usecase.NewEmailUsecase(chatUc, gen), chatUc
}

func TestHandleEmailActionStatelessWrite(t *testing.T) {
	gen := &mockGenerator{reply: "Dear team, ..."}
	uc, _ := newFixture(gen)

	out, err := uc.HandleEmailAction(context.Background(), "", &dto.EmailRequest{
		Action: "write",
		Text:   "ask for a meeting",
	})
	if err != nil {
		t.Fatalf("HandleEmailAction failed: %v", err)
	}
	if out.Result != "Dear team, ..." {
		t.Fatalf("unexpected result %q", out.Result)
	}
	if out.Persisted {
		t.Fatal("stateless turn must not report persistence")
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "ask for a meeting") {
		t.Fatalf("prompt not built from request text: %v", gen.prompts)
	}
}

func TestHandleEmailActionMissingFields(t *testing.T) {
	gen := &mockGenerator{reply: "x"}
	uc, _ := newFixture(gen)

	cases := []*dto.EmailRequest{
		{Action: "", Text: "hello"},
		{Action: "write", Text: "   "},
		{Action: "forward", Text: "hello"},
	}
	for _, req := range cases {
		_, err := uc.HandleEmailAction(context.Background(), "", req)
		var vErr *usecase.ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("request %+v: expected ValidationError, got %v", req, err)
		}
	}
	if len(gen.prompts) != 0 {
		t.Fatal("validation failures must not reach the generator")
	}
}

func TestHandleEmailActionReplyRequiresPreviousContent(t *testing.T) {
	gen := &mockGenerator{reply: "x"}
	uc, chatUc := newFixture(gen)
	chat, _ := chatUc.CreateChat("u1", "replies", prompt.ActionReply, "", "")

	// No explicit previous email and no assistant history: rejected.
	_, err := uc.HandleEmailAction(context.Background(), "u1", &dto.EmailRequest{
		Action: "reply",
		Text:   "say yes",
		ChatID: chat.ID,
	})
	var vErr *usecase.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	got, _ := chatUc.GetChat("u1", chat.ID)
	if len(got.Messages) != 0 {
		t.Fatal("rejected turn must not persist any message")
	}

	// With an assistant turn in history, validation passes and the history
	// message feeds the prompt.
	chatUc.AppendMessage("u1", chat.ID, chatdomain.RoleAssistant, "Original dinner invitation")
	out, err := uc.HandleEmailAction(context.Background(), "u1", &dto.EmailRequest{
		Action: "reply",
		Text:   "say yes",
		ChatID: chat.ID,
	})
	if err != nil {
		t.Fatalf("HandleEmailAction failed: %v", err)
	}
	if !out.Persisted {
		t.Fatal("chat-bound turn must persist both messages")
	}
	last := gen.prompts[len(gen.prompts)-1]
	if !strings.Contains(last, "Original dinner invitation") {
		t.Fatal("prompt must embed the last assistant message as previous email")
	}
}

func TestHandleEmailActionSummarizeWithoutContentFails(t *testing.T) {
	gen := &mockGenerator{reply: "x"}
	uc, chatUc := newFixture(gen)
	chat, _ := chatUc.CreateChat("u1", "summaries", prompt.ActionSummarize, "", "")

	_, err := uc.HandleEmailAction(context.Background(), "u1", &dto.EmailRequest{
		Action: "summarize",
		Text:   "Summarize: the attached thread",
		ChatID: chat.ID,
	})
	var vErr *usecase.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	got, _ := chatUc.GetChat("u1", chat.ID)
	if len(got.Messages) != 0 {
		t.Fatal("no message may be persisted when validation fails")
	}
	if len(gen.prompts) != 0 {
		t.Fatal("generator must not be called")
	}
}

func TestHandleEmailActionGenerationFailureKeepsUserTurn(t *testing.T) {
	gen := &mockGenerator{err: &ai.GenerationError{Status: 500, Message: "backend down"}}
	uc, chatUc := newFixture(gen)
	chat, _ := chatUc.CreateChat("u1", "drafts", prompt.ActionWrite, "", "")

	_, err := uc.HandleEmailAction(context.Background(), "u1", &dto.EmailRequest{
		Action: "write",
		Text:   "draft a follow-up",
		ChatID: chat.ID,
	})
	var genErr *ai.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}

	got, _ := chatUc.GetChat("u1", chat.ID)
	if len(got.Messages) != 1 || got.Messages[0].Role != chatdomain.RoleUser {
		t.Fatalf("user turn must survive a failed generation, got %d messages", len(got.Messages))
	}
}

func TestHandleEmailActionUnknownChat(t *testing.T) {
	gen := &mockGenerator{reply: "x"}
	uc, _ := newFixture(gen)

	_, err := uc.HandleEmailAction(context.Background(), "u1", &dto.EmailRequest{
		Action: "write",
		Text:   "hello",
		ChatID: "missing",
	})
	if !errors.Is(err, chatdomain.ErrChatNotFound) {
		t.Fatalf("expected ErrChatNotFound, got %v", err)
	}
}

func TestHandleEmailActionChatWithoutIdentity(t *testing.T) {
	gen := &mockGenerator{reply: "x"}
	uc, _ := newFixture(gen)

	_, err := uc.HandleEmailAction(context.Background(), "", &dto.EmailRequest{
		Action: "write",
		Text:   "hello",
		ChatID: "some-chat",
	})
	var vErr *usecase.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestHandleEmailActionUsesChatPreferences(t *testing.T) {
	gen := &mockGenerator{reply: "x"}
	uc, chatUc := newFixture(gen)
	chat, _ := chatUc.CreateChat("u1", "drafts", prompt.ActionWrite, prompt.ToneCasual, "de")

	_, err := uc.HandleEmailAction(context.Background(), "u1", &dto.EmailRequest{
		Action: "write",
		Text:   "invite the team",
		ChatID: chat.ID,
	})
	if err != nil {
		t.Fatalf("HandleEmailAction failed: %v", err)
	}
	p := gen.prompts[0]
	if !strings.Contains(p, prompt.ToneInstructions(prompt.ToneCasual)) {
		t.Error("chat tone preference not applied")
	}
	if !strings.Contains(p, "German") {
		t.Error("chat language preference not applied")
	}
}

// failingChatUsecase delegates to a real chat usecase but fails a chosen
// AppendMessage call, to exercise the persist-after-generate policy.
type failingChatUsecase struct {
	chatusecase.ChatUsecase
	failOnCall int
	calls      int
}

func (f *failingChatUsecase) AppendMessage(userID, chatID string, role chatdomain.Role, content string) (*chatdomain.Chat, error) {
	f.calls++
	if f.calls == f.failOnCall {
		return nil, errors.New("storage write failed")
	}
	return f.ChatUsecase.AppendMessage(userID, chatID, role, content)
}

func TestHandleEmailActionAssistantPersistFailureStillReturnsResult(t *testing.T) {
	gen := &mockGenerator{reply: "Dear Sam, ..."}
	chatUc := chatusecase.NewChatUsecase(chatrepo.NewMemoryChatRepository())
	failing := &failingChatUsecase{ChatUsecase: chatUc, failOnCall: 2}
	uc := usecase.NewEmailUsecase(failing, gen)

	chat, _ := chatUc.CreateChat("u1", "drafts", prompt.ActionWrite, "", "")

	out, err := uc.HandleEmailAction(context.Background(), "u1", &dto.EmailRequest{
		Action: "write",
		Text:   "greet Sam",
		ChatID: chat.ID,
	})
	if err != nil {
		t.Fatalf("result must still be returned, got error %v", err)
	}
	if out.Result != "Dear Sam, ..." {
		t.Fatalf("unexpected result %q", out.Result)
	}
	if out.Persisted {
		t.Fatal("persisted flag must be false when the assistant write failed")
	}
	if out.Warning == "" {
		t.Fatal("a persistence warning must be surfaced")
	}
}

func TestHandleEmailActionUserPersistFailure(t *testing.T) {
	gen := &mockGenerator{reply: "x"}
	chatUc := chatusecase.NewChatUsecase(chatrepo.NewMemoryChatRepository())
	failing := &failingChatUsecase{ChatUsecase: chatUc, failOnCall: 1}
	uc := usecase.NewEmailUsecase(failing, gen)

	chat, _ := chatUc.CreateChat("u1", "drafts", prompt.ActionWrite, "", "")

	_, err := uc.HandleEmailAction(context.Background(), "u1", &dto.EmailRequest{
		Action: "write",
		Text:   "greet Sam",
		ChatID: chat.ID,
	})
	var pErr *usecase.PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if len(gen.prompts) != 0 {
		t.Fatal("generation must not run when the user turn could not be recorded")
	}
}
