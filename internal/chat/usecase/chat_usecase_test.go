package usecase_test

import (
	"errors"
	"testing"

	"mailmate-backend/internal/chat/domain"
	"mailmate-backend/internal/chat/repository"
	"mailmate-backend/internal/chat/usecase"
	"mailmate-backend/internal/prompt"
)

func newUsecase() usecase.ChatUsecase {
	return usecase.NewChatUsecase(repository.NewMemoryChatRepository())
}

func TestCreateChatDefaultsAndActivation(t *testing.T) {
	uc := newUsecase()

	chat, err := uc.CreateChat("u1", "Meeting request", prompt.ActionWrite, "", "")
	if err != nil {
		t.Fatalf("CreateChat failed: %v", err)
	}
	if chat.ID == "" {
		t.Fatal("expected generated chat id")
	}
	if chat.Tone != prompt.ToneProfessional || chat.Language != "en" {
		t.Fatalf("expected professional/en defaults, got %s/%s", chat.Tone, chat.Language)
	}
	if len(chat.Messages) != 0 {
		t.Fatal("new chat must have an empty message list")
	}

	_, active, err := uc.ListChats("u1", prompt.ActionWrite)
	if err != nil {
		t.Fatalf("ListChats failed: %v", err)
	}
	if active != chat.ID {
		t.Fatalf("new chat must become active, got %q", active)
	}
}

func TestCreateChatRejectsUnknownAction(t *testing.T) {
	uc := newUsecase()
	if _, err := uc.CreateChat("u1", "x", prompt.Action("forward"), "", ""); !errors.Is(err, usecase.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
}

func TestListChatsScopedByActionAndOrdered(t *testing.T) {
	uc := newUsecase()

	first, _ := uc.CreateChat("u1", "first", prompt.ActionWrite, "", "")
	second, _ := uc.CreateChat("u1", "second", prompt.ActionWrite, "", "")
	uc.CreateChat("u1", "other kind", prompt.ActionReply, "", "")
	uc.CreateChat("u2", "other user", prompt.ActionWrite, "", "")

	chats, _, err := uc.ListChats("u1", prompt.ActionWrite)
	if err != nil {
		t.Fatalf("ListChats failed: %v", err)
	}
	if len(chats) != 2 {
		t.Fatalf("expected 2 write chats, got %d", len(chats))
	}
	if chats[0].ID != second.ID || chats[1].ID != first.ID {
		t.Fatal("chats must be ordered most recent first")
	}
}

func TestPatchChatPartialUpdate(t *testing.T) {
	uc := newUsecase()
	chat, _ := uc.CreateChat("u1", "t", prompt.ActionWrite, "", "")

	tone := prompt.ToneCasual
	updated, err := uc.PatchChat("u1", chat.ID, &tone, nil)
	if err != nil {
		t.Fatalf("PatchChat failed: %v", err)
	}
	if updated.Tone != prompt.ToneCasual {
		t.Fatalf("tone not updated: %s", updated.Tone)
	}
	if updated.Language != "en" {
		t.Fatalf("omitted language must be unchanged, got %s", updated.Language)
	}

	lang := "ja"
	updated, err = uc.PatchChat("u1", chat.ID, nil, &lang)
	if err != nil {
		t.Fatalf("PatchChat failed: %v", err)
	}
	if updated.Tone != prompt.ToneCasual || updated.Language != "ja" {
		t.Fatalf("unexpected state after patch: %s/%s", updated.Tone, updated.Language)
	}
}

func TestPatchChatNotFound(t *testing.T) {
	uc := newUsecase()
	if _, err := uc.PatchChat("u1", "missing", nil, nil); !errors.Is(err, domain.ErrChatNotFound) {
		t.Fatalf("expected ErrChatNotFound, got %v", err)
	}
}

func TestAppendMessageOrderAndOwnership(t *testing.T) {
	uc := newUsecase()
	chat, _ := uc.CreateChat("u1", "t", prompt.ActionWrite, "", "")

	uc.AppendMessage("u1", chat.ID, domain.RoleUser, "draft an email")
	updated, err := uc.AppendMessage("u1", chat.ID, domain.RoleAssistant, "Dear Sam, ...")
	if err != nil {
		t.Fatalf("AppendMessage failed: %v", err)
	}
	if len(updated.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(updated.Messages))
	}
	if updated.Messages[0].Role != domain.RoleUser || updated.Messages[1].Role != domain.RoleAssistant {
		t.Fatal("messages must keep insertion order")
	}

	// Not owned behaves as absent
	if _, err := uc.AppendMessage("u2", chat.ID, domain.RoleUser, "x"); !errors.Is(err, domain.ErrChatNotFound) {
		t.Fatalf("expected ErrChatNotFound for foreign chat, got %v", err)
	}
}

func TestAppendMessageUnknownChatDoesNotTouchOthers(t *testing.T) {
	uc := newUsecase()
	chat, _ := uc.CreateChat("u1", "t", prompt.ActionWrite, "", "")
	uc.AppendMessage("u1", chat.ID, domain.RoleUser, "hello")

	if _, err := uc.AppendMessage("u1", "missing", domain.RoleUser, "x"); !errors.Is(err, domain.ErrChatNotFound) {
		t.Fatalf("expected ErrChatNotFound, got %v", err)
	}

	got, err := uc.GetChat("u1", chat.ID)
	if err != nil {
		t.Fatalf("GetChat failed: %v", err)
	}
	if len(got.Messages) != 1 {
		t.Fatalf("other chat state must be untouched, got %d messages", len(got.Messages))
	}
}

func TestAppendMessageRejectsUnknownRole(t *testing.T) {
	uc := newUsecase()
	chat, _ := uc.CreateChat("u1", "t", prompt.ActionWrite, "", "")
	if _, err := uc.AppendMessage("u1", chat.ID, domain.Role("system"), "x"); !errors.Is(err, usecase.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestDeleteActiveChatReselectsMostRecent(t *testing.T) {
	uc := newUsecase()
	uc.CreateChat("u1", "a", prompt.ActionWrite, "", "")
	b, _ := uc.CreateChat("u1", "b", prompt.ActionWrite, "", "")
	c, _ := uc.CreateChat("u1", "c", prompt.ActionWrite, "", "")

	// c is active; deleting it must hand the selection to b, the most
	// recently created remaining chat.
	next, err := uc.DeleteChat("u1", c.ID)
	if err != nil {
		t.Fatalf("DeleteChat failed: %v", err)
	}
	if next != b.ID {
		t.Fatalf("expected %s active, got %s", b.ID, next)
	}

	_, active, _ := uc.ListChats("u1", prompt.ActionWrite)
	if active != b.ID {
		t.Fatalf("store active mismatch: %s", active)
	}
}

func TestDeleteInactiveChatKeepsSelection(t *testing.T) {
	uc := newUsecase()
	a, _ := uc.CreateChat("u1", "a", prompt.ActionWrite, "", "")
	b, _ := uc.CreateChat("u1", "b", prompt.ActionWrite, "", "")

	next, err := uc.DeleteChat("u1", a.ID)
	if err != nil {
		t.Fatalf("DeleteChat failed: %v", err)
	}
	if next != b.ID {
		t.Fatalf("active selection must be untouched, got %s", next)
	}
}

func TestDeleteLastChatClearsSelection(t *testing.T) {
	uc := newUsecase()
	only, _ := uc.CreateChat("u1", "only", prompt.ActionWrite, "", "")

	next, err := uc.DeleteChat("u1", only.ID)
	if err != nil {
		t.Fatalf("DeleteChat failed: %v", err)
	}
	if next != "" {
		t.Fatalf("expected no active chat, got %s", next)
	}

	chats, active, _ := uc.ListChats("u1", prompt.ActionWrite)
	if len(chats) != 0 || active != "" {
		t.Fatalf("store must be empty with no selection, got %d/%q", len(chats), active)
	}
}

func TestDeleteChatNotFound(t *testing.T) {
	uc := newUsecase()
	if _, err := uc.DeleteChat("u1", "missing"); !errors.Is(err, domain.ErrChatNotFound) {
		t.Fatalf("expected ErrChatNotFound, got %v", err)
	}
}
