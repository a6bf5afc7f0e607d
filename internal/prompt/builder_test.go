package prompt

import (
	"strings"
	"testing"
)

func TestBuildPromptDeterministic(t *testing.T) {
	first := BuildPrompt(ActionReply, "accept the invitation", ToneFriendly, "ja", "previous body")
	second := BuildPrompt(ActionReply, "accept the invitation", ToneFriendly, "ja", "previous body")
	if first != second {
		t.Fatal("identical inputs must yield identical prompts")
	}
}

func TestBuildPromptWrite(t *testing.T) {
	p := BuildPrompt(ActionWrite, "ask for a meeting", ToneProfessional, "en", "")

	if !strings.Contains(p, "Write the ENTIRE email in English") {
		t.Error("missing full-email language directive")
	}
	if !strings.Contains(p, ToneInstructions(ToneProfessional)) {
		t.Error("missing professional tone instruction")
	}
	if strings.Contains(p, "Dear") {
		t.Error("compose prompt must not quote the greeting string")
	}
	if !strings.Contains(p, "ask for a meeting") {
		t.Error("missing request text")
	}
}

func TestBuildPromptWithPreviousEmail(t *testing.T) {
	previous := "Hello,\nThe quarterly report is attached.\nBest,\nSam"
	p := BuildPrompt(ActionEnhance, "make it warmer", ToneProfessional, "en", previous)

	if !strings.Contains(p, previous) {
		t.Error("previous email must be embedded verbatim")
	}
	if strings.Contains(p, "Write a professional email in") {
		t.Error("modify prompt must not use the compose framing")
	}
}

func TestBuildPromptReplyEmbedsFormattingRules(t *testing.T) {
	p := BuildPrompt(ActionReply, "decline politely", ToneProfessional, "de", "Einladung zum Abendessen")

	info := LookupLanguage("de")
	for _, want := range []string{info.Name, info.FormalGreeting, info.Closing, "Einladung zum Abendessen"} {
		if !strings.Contains(p, want) {
			t.Errorf("reply prompt missing %q", want)
		}
	}
}

func TestBuildPromptSummarize(t *testing.T) {
	p := BuildPrompt(ActionSummarize, "", ToneProfessional, "en", "long email body")

	if !strings.Contains(p, "Summarize the following email") {
		t.Error("missing summarize framing")
	}
	if !strings.Contains(p, "under 50 words") {
		t.Error("missing summary length bound")
	}
	if !strings.Contains(p, "long email body") {
		t.Error("missing email body")
	}
}

func TestBuildPromptUnknownLanguageUsesEnglish(t *testing.T) {
	p := BuildPrompt(ActionWrite, "hello", ToneProfessional, "xx", "")
	if !strings.Contains(p, "Write the ENTIRE email in English") {
		t.Error("unknown language must silently substitute English")
	}
}
