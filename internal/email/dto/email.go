package dto

// EmailRequest is one user turn: an action applied to text under a tone and
// language, optionally operating on a previous email and tied to a chat.
type EmailRequest struct {
	Action        string `json:"action"`
	Text          string `json:"text"`
	Tone          string `json:"tone"`
	Language      string `json:"language"`
	PreviousEmail string `json:"previousEmail,omitempty"`
	ChatID        string `json:"chatId,omitempty"`
}

// EmailResult carries the generated text. Persisted is false when the turn
// was stateless or when saving the assistant message failed after a
// successful generation; Warning carries the diagnostic in the latter case.
type EmailResult struct {
	Result    string `json:"result"`
	Persisted bool   `json:"persisted"`
	Warning   string `json:"warning,omitempty"`
}
