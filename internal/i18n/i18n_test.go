package i18n

import "testing"

func TestT(t *testing.T) {
	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{"translated key", "nl", "backup.subject", "Je BudgetBook back-up"},
		{"french body", "fr", "backup.subject", "Votre sauvegarde BudgetBook"},
		{"unknown language falls back to English", "de", "backup.subject", "Your BudgetBook backup"},
		{"unknown key falls back to the key", "en", "backup.footer", "backup.footer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := T(tt.lang, tt.key); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for _, lang := range []string{LanguageEnglish, LanguageDutch, LanguageFrench} {
		if !Supported(lang) {
			t.Errorf("expected %q to be supported", lang)
		}
	}
	if Supported("de") {
		t.Error("expected an unknown language code to be unsupported")
	}
}
