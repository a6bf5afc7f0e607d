package prompt

// Action selects the prompt framing for one email turn.
type Action string

const (
	ActionWrite     Action = "write"
	ActionSummarize Action = "summarize"
	ActionEnhance   Action = "enhance"
	ActionReply     Action = "reply"
)

// Valid reports whether the action is one of the supported kinds.
func (a Action) Valid() bool {
	switch a {
	case ActionWrite, ActionSummarize, ActionEnhance, ActionReply:
		return true
	}
	return false
}

// RequiresPreviousEmail reports whether the action operates on an existing
// email body.
func (a Action) RequiresPreviousEmail() bool {
	switch a {
	case ActionSummarize, ActionEnhance, ActionReply:
		return true
	}
	return false
}

// Tone is a coarse register selector affecting instruction phrasing only.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneCasual       Tone = "casual"
	ToneCustom       Tone = "custom"
)

// ToneInstructions resolves a tone to its instruction sentence. Unknown tones
// resolve to the professional instruction.
func ToneInstructions(tone Tone) string {
	switch tone {
	case ToneProfessional:
		return "Write in a formal, business-appropriate tone using professional language and proper etiquette."
	case ToneFriendly:
		return "Write in a warm and personable tone while maintaining professionalism."
	case ToneCasual:
		return "Write in a relaxed and informal tone, as if speaking to a friend."
	case ToneCustom:
		return "Write in the user's preferred style based on the context."
	default:
		return "Write in a formal, business-appropriate tone using professional language and proper etiquette."
	}
}
