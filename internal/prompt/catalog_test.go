package prompt

import "testing"

func TestLookupLanguageKnownCodes(t *testing.T) {
	for _, code := range SupportedLanguages() {
		info := LookupLanguage(code)
		if info.Name == "" {
			t.Errorf("language %q: empty name", code)
		}
		if info.FormalGreeting == "" {
			t.Errorf("language %q: empty greeting", code)
		}
		if info.Closing == "" {
			t.Errorf("language %q: empty closing", code)
		}
		if len(info.CulturalNotes) == 0 {
			t.Errorf("language %q: no cultural notes", code)
		}
	}
}

func TestLookupLanguageUnknownFallsBackToEnglish(t *testing.T) {
	info := LookupLanguage("xx")
	if info.Name != "English" {
		t.Fatalf("expected English fallback, got %q", info.Name)
	}
	if LookupLanguage("").Name != "English" {
		t.Fatalf("expected English fallback for empty code")
	}
}

func TestToneInstructions(t *testing.T) {
	professional := ToneInstructions(ToneProfessional)
	if professional == "" {
		t.Fatal("empty professional instruction")
	}
	if ToneInstructions(Tone("shouty")) != professional {
		t.Fatal("unknown tone should resolve to the professional instruction")
	}
	if ToneInstructions(ToneCasual) == professional {
		t.Fatal("casual tone should differ from professional")
	}
}

func TestActionValidation(t *testing.T) {
	for _, a := range []Action{ActionWrite, ActionSummarize, ActionEnhance, ActionReply} {
		if !a.Valid() {
			t.Errorf("action %q should be valid", a)
		}
	}
	if Action("forward").Valid() {
		t.Error("unknown action should be invalid")
	}
	if ActionWrite.RequiresPreviousEmail() {
		t.Error("write must not require previous content")
	}
	for _, a := range []Action{ActionSummarize, ActionEnhance, ActionReply} {
		if !a.RequiresPreviousEmail() {
			t.Errorf("action %q must require previous content", a)
		}
	}
}
