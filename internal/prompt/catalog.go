// Package prompt builds model-ready prompts for email actions.
//
// The language and tone catalogs are fixed tables loaded at init; adding a
// language is a data change, not a runtime operation.
package prompt

// Honorifics lists acceptable honorifics per gender category.
type Honorifics struct {
	Male    []string
	Female  []string
	Neutral []string
}

// LanguageProfile holds the formatting and cultural rules for one language.
type LanguageProfile struct {
	Name           string
	FormalGreeting string
	Closing        string
	DateFormat     string
	NameFormat     string
	Honorifics     Honorifics
	CulturalNotes  []string
}

// SupportedLanguages returns the known language codes.
func SupportedLanguages() []string {
	codes := make([]string, 0, len(languageMap))
	for code := range languageMap {
		codes = append(codes, code)
	}
	return codes
}

// LookupLanguage resolves a language code to its profile. Unknown codes
// resolve to the English profile.
func LookupLanguage(code string) LanguageProfile {
	if info, ok := languageMap[code]; ok {
		return info
	}
	return languageMap["en"]
}

var languageMap = map[string]LanguageProfile{
	"en": {
		Name:           "English",
		FormalGreeting: "Dear",
		Closing:        "Best regards,",
		DateFormat:     "MM/DD/YYYY",
		NameFormat:     "{title} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"Mr.", "Dr.", "Prof."},
			Female:  []string{"Ms.", "Mrs.", "Dr.", "Prof."},
			Neutral: []string{"Mx.", "Dr.", "Prof."},
		},
		CulturalNotes: []string{
			"Use titles unless explicitly asked to use first names",
			"Keep paragraphs concise and well-spaced",
			"Be direct but polite",
		},
	},
	"es": {
		Name:           "Spanish (Español)",
		FormalGreeting: "Estimado/a",
		Closing:        "Atentamente,",
		DateFormat:     "DD/MM/YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"Sr.", "Dr.", "Prof."},
			Female:  []string{"Sra.", "Srita.", "Dr.", "Prof."},
			Neutral: []string{"Sr.", "Dr.", "Prof."},
		},
		CulturalNotes: []string{
			"Use titles unless explicitly asked to use first names",
			"Keep paragraphs concise and well-spaced",
			"Be direct but polite",
		},
	},
	"fr": {
		Name:           "French (Français)",
		FormalGreeting: "Cher/Chère",
		Closing:        "Cordialement,",
		DateFormat:     "DD/MM/YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"M.", "Dr.", "Prof."},
			Female:  []string{"Mme.", "Mlle.", "Dr.", "Prof."},
			Neutral: []string{"Mx.", "Dr.", "Prof."},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Keep paragraphs concise",
			"Be polite and respectful",
			"Use proper French punctuation and spacing",
		},
	},
	"de": {
		Name:           "German (Deutsch)",
		FormalGreeting: "Sehr geehrte(r)",
		Closing:        "Mit freundlichen Grüßen,",
		DateFormat:     "DD.MM.YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"Herr", "Dr.", "Prof."},
			Female:  []string{"Frau", "Dr.", "Prof."},
			Neutral: []string{"Dr.", "Prof."},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be precise and structured",
			"Maintain professional distance",
			"Use proper German punctuation",
		},
	},
	"it": {
		Name:           "Italian (Italiano)",
		FormalGreeting: "Gentile",
		Closing:        "Cordiali saluti,",
		DateFormat:     "DD/MM/YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"Sig.", "Dott.", "Prof."},
			Female:  []string{"Sig.ra", "Dott.ssa", "Prof.ssa"},
			Neutral: []string{"Dott.", "Prof."},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be warm but professional",
			"Use proper Italian punctuation",
			"Maintain respectful tone",
		},
	},
	"pt": {
		Name:           "Portuguese (Português)",
		FormalGreeting: "Prezado(a)",
		Closing:        "Atenciosamente,",
		DateFormat:     "DD/MM/YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"Sr.", "Dr.", "Prof."},
			Female:  []string{"Sra.", "Dra.", "Profa."},
			Neutral: []string{"Dr.", "Prof."},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be polite and respectful",
			"Use proper Portuguese punctuation",
			"Maintain professional tone",
		},
	},
	"nl": {
		Name:           "Dutch (Nederlands)",
		FormalGreeting: "Geachte",
		Closing:        "Met vriendelijke groet,",
		DateFormat:     "DD-MM-YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"Dhr.", "Dr.", "Prof."},
			Female:  []string{"Mevr.", "Dr.", "Prof."},
			Neutral: []string{"Dr.", "Prof."},
		},
		CulturalNotes: []string{
			"Be direct but polite",
			"Use formal language in business context",
			"Keep communication clear and concise",
			"Maintain professional distance",
		},
	},
	"ru": {
		Name:           "Russian (Русский)",
		FormalGreeting: "Уважаемый(ая)",
		Closing:        "С уважением,",
		DateFormat:     "DD.MM.YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"Господин", "Доктор", "Профессор"},
			Female:  []string{"Госпожа", "Доктор", "Профессор"},
			Neutral: []string{"Доктор", "Профессор"},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be respectful and professional",
			"Use proper Russian punctuation",
			"Maintain formal tone",
		},
	},
	"zh": {
		Name:           "Chinese (中文)",
		FormalGreeting: "尊敬的",
		Closing:        "此致",
		DateFormat:     "YYYY/MM/DD",
		NameFormat:     "{honorific}{lastName}{firstName}",
		Honorifics: Honorifics{
			Male:    []string{"先生", "博士", "教授"},
			Female:  []string{"女士", "博士", "教授"},
			Neutral: []string{"博士", "教授"},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be respectful and humble",
			"Use proper Chinese punctuation",
			"Maintain hierarchical respect",
		},
	},
	"ja": {
		Name:           "Japanese (日本語)",
		FormalGreeting: "拝啓",
		Closing:        "敬具",
		DateFormat:     "YYYY/MM/DD",
		NameFormat:     "{lastName}{honorific} {firstName}",
		Honorifics: Honorifics{
			Male:    []string{"様", "博士", "教授"},
			Female:  []string{"様", "博士", "教授"},
			Neutral: []string{"様", "博士", "教授"},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be extremely polite and respectful",
			"Use proper Japanese punctuation",
			"Maintain hierarchical respect",
		},
	},
	"ko": {
		Name:           "Korean (한국어)",
		FormalGreeting: "존경하는",
		Closing:        "감사합니다",
		DateFormat:     "YYYY/MM/DD",
		NameFormat:     "{lastName}{honorific} {firstName}",
		Honorifics: Honorifics{
			Male:    []string{"님", "박사", "교수"},
			Female:  []string{"님", "박사", "교수"},
			Neutral: []string{"님", "박사", "교수"},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be extremely polite and respectful",
			"Use proper Korean punctuation",
			"Maintain hierarchical respect",
		},
	},
	"ar": {
		Name:           "Arabic (العربية)",
		FormalGreeting: "عزيزي/عزيزتي",
		Closing:        "مع تحياتي",
		DateFormat:     "DD/MM/YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"السيد", "الدكتور", "الأستاذ"},
			Female:  []string{"السيدة", "الدكتورة", "الأستاذة"},
			Neutral: []string{"الدكتور", "الأستاذ"},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be respectful and polite",
			"Use proper Arabic punctuation",
			"Maintain cultural sensitivity",
		},
	},
	"hi": {
		Name:           "Hindi (हिन्दी)",
		FormalGreeting: "प्रिय",
		Closing:        "सादर",
		DateFormat:     "DD/MM/YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"श्री", "डॉ.", "प्रो."},
			Female:  []string{"श्रीमती", "डॉ.", "प्रो."},
			Neutral: []string{"डॉ.", "प्रो."},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be respectful and polite",
			"Use proper Hindi punctuation",
			"Maintain cultural sensitivity",
		},
	},
	"tr": {
		Name:           "Turkish (Türkçe)",
		FormalGreeting: "Sayın",
		Closing:        "Saygılarımla,",
		DateFormat:     "DD.MM.YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"Bay", "Dr.", "Prof."},
			Female:  []string{"Bayan", "Dr.", "Prof."},
			Neutral: []string{"Dr.", "Prof."},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be respectful and polite",
			"Use proper Turkish punctuation",
			"Maintain professional tone",
		},
	},
	"pl": {
		Name:           "Polish (Polski)",
		FormalGreeting: "Szanowny(a)",
		Closing:        "Z poważaniem,",
		DateFormat:     "DD.MM.YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"Pan", "Dr.", "Prof."},
			Female:  []string{"Pani", "Dr.", "Prof."},
			Neutral: []string{"Dr.", "Prof."},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be respectful and polite",
			"Use proper Polish punctuation",
			"Maintain professional tone",
		},
	},
	"he": {
		Name:           "Hebrew (עברית)",
		FormalGreeting: "יקר/ה",
		Closing:        "בברכה,",
		DateFormat:     "DD/MM/YYYY",
		NameFormat:     "{honorific} {firstName} {lastName}",
		Honorifics: Honorifics{
			Male:    []string{"מר", "ד\"ר", "פרופ'"},
			Female:  []string{"גב'", "ד\"ר", "פרופ'"},
			Neutral: []string{"ד\"ר", "פרופ'"},
		},
		CulturalNotes: []string{
			"Use formal language in business context",
			"Be respectful and polite",
			"Use proper Hebrew punctuation",
			"Maintain cultural sensitivity",
		},
	},
}
