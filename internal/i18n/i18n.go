// Package i18n holds the interface translations for the supported
// languages. The active language is a persisted state slice; callers pass
// it in rather than reading it from the store.
package i18n

// Languages supported by the application.
const (
	LanguageEnglish = "en"
	LanguageDutch   = "nl"
	LanguageFrench  = "fr"
)

var translations = map[string]map[string]string{
	LanguageEnglish: {
		"backup.subject": "Your BudgetBook backup",
		"backup.body":    "Attached is a snapshot of your finance data. Keep it somewhere safe.",
	},
	LanguageDutch: {
		"backup.subject": "Je BudgetBook back-up",
		"backup.body":    "Bijgevoegd vind je een momentopname van je financiele gegevens. Bewaar deze op een veilige plek.",
	},
	LanguageFrench: {
		"backup.subject": "Votre sauvegarde BudgetBook",
		"backup.body":    "Vous trouverez ci-joint un instantane de vos donnees financieres. Conservez-le en lieu sur.",
	},
}

// T returns the translation for key in the given language. Unknown
// languages fall back to English; unknown keys fall back to the key itself.
func T(lang, key string) string {
	if m, ok := translations[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := translations[LanguageEnglish][key]; ok {
		return s
	}
	return key
}

// Supported reports whether lang is a known language code.
func Supported(lang string) bool {
	_, ok := translations[lang]
	return ok
}
