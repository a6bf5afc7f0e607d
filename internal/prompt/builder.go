package prompt

import (
	"fmt"
	"strings"
)

// BuildPrompt produces the instruction string for one email action. It is a
// pure function: identical inputs always yield an identical prompt.
//
// With a previous email the prompt frames a modification of that email and
// embeds it verbatim; without one it frames a fresh composition.
func BuildPrompt(action Action, text string, tone Tone, language, previousEmail string) string {
	toneInstructions := ToneInstructions(tone)
	info := LookupLanguage(language)

	if previousEmail == "" {
		return composePrompt(text, toneInstructions, info)
	}

	switch action {
	case ActionReply:
		return replyPrompt(text, previousEmail, toneInstructions, info)
	case ActionSummarize:
		return summarizePrompt(previousEmail, info)
	case ActionEnhance:
		return enhancePrompt(text, previousEmail, toneInstructions, info)
	default:
		return modifyPrompt(text, previousEmail, toneInstructions, info)
	}
}

func composePrompt(text, toneInstructions string, info LanguageProfile) string {
	return fmt.Sprintf(`Write a professional email in %s. Follow these requirements:

Content Requirements:
- Use this context/request: %s
- Follow this tone: %s

Language and Cultural Requirements:
- Write the ENTIRE email in %s
- Use proper %s grammar and punctuation
- Use the correct date format: %s
- Follow the name format: %s
- Use appropriate honorifics based on gender and formality
- Follow these cultural notes:
%s

Format Requirements:
- Include a proper formal greeting and closing for %s business communication
- Do NOT use templates or placeholders
- Use appropriate spacing and paragraphs
- Be concise and clear`,
		info.Name, text, toneInstructions,
		info.Name, info.Name, info.DateFormat, info.NameFormat,
		culturalNotes(info),
		info.Name)
}

func replyPrompt(text, previousEmail, toneInstructions string, info LanguageProfile) string {
	return fmt.Sprintf(`Write a response to this email in %s:

Original Email:
%s

Your Response Instructions:
%s

Requirements:
1. Write a completely new response in %s ONLY
2. Do NOT use templates or placeholders like [Your Name] or [Date]
3. Do NOT copy or repeat any part of the original email
4. Start with "%s"
5. Acknowledge the original email's main points
6. End with "%s"
7. Keep the tone: %s
8. Use proper %s grammar and punctuation
9. Follow these cultural notes:
%s

Remember: This should be a new response, not a template or modification of the original.`,
		info.Name, previousEmail, text,
		info.Name, info.FormalGreeting, info.Closing, toneInstructions, info.Name,
		culturalNotes(info))
}

func summarizePrompt(previousEmail string, info LanguageProfile) string {
	return fmt.Sprintf(`Summarize the following email in %s:

%s

Instructions:
- Provide 2-3 concise bullet points
- Focus only on the main points and actions
- Exclude greetings, sign-offs, and extra details
- Keep the total summary under 50 words
- Be clear and direct`,
		info.Name, previousEmail)
}

func enhancePrompt(text, previousEmail, toneInstructions string, info LanguageProfile) string {
	return fmt.Sprintf(`Enhance this email in %s:

Original Email:
%s

Enhancement Instructions:
%s

Requirements:
1. Keep the same main message and intent
2. Improve the language and structure
3. Make it more polished
4. Use proper %s grammar and punctuation
5. Keep the tone: %s
6. Start with "%s"
7. End with "%s"
8. Do NOT change the core message or add new information

Remember: This should be an enhanced version of the original email, maintaining its main points but improving its presentation.`,
		info.Name, previousEmail, text,
		info.Name, toneInstructions, info.FormalGreeting, info.Closing)
}

// modifyPrompt handles the generic case of an action carrying previous content
// outside the three dedicated framings above.
func modifyPrompt(text, previousEmail, toneInstructions string, info LanguageProfile) string {
	return fmt.Sprintf(`Here is an existing email:

%s

User request: %s

Please modify this email based on the user's request. Follow these guidelines:
- Write the ENTIRE response in %s
- Use proper %s grammar, punctuation, and formatting
- For formal emails, use "%s" as greeting and "%s" as closing
- Use the correct date format: %s
- Follow the name format: %s
- Use appropriate honorifics based on gender and formality
- Maintain the same tone: %s
- Preserve the email structure and format
- Incorporate the requested changes seamlessly
- Follow these cultural notes:
%s`,
		previousEmail, text,
		info.Name, info.Name, info.FormalGreeting, info.Closing,
		info.DateFormat, info.NameFormat, toneInstructions,
		culturalNotes(info))
}

func culturalNotes(info LanguageProfile) string {
	notes := make([]string, len(info.CulturalNotes))
	for i, note := range info.CulturalNotes {
		notes[i] = "  - " + note
	}
	return strings.Join(notes, "\n")
}
