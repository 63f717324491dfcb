package domain

// Language is a UI language code.
type Language string

const (
	LangEnglish    Language = "en"
	LangChinese    Language = "zh"
	LangSpanish    Language = "es"
	LangFrench     Language = "fr"
	LangGerman     Language = "de"
	LangJapanese   Language = "ja"
	LangKorean     Language = "ko"
	LangPortuguese Language = "pt"
	LangRussian    Language = "ru"
	LangArabic     Language = "ar"
)

// UILanguages lists every language the interface can render.
var UILanguages = []Language{
	LangEnglish,
	LangChinese,
	LangSpanish,
	LangFrench,
	LangGerman,
	LangJapanese,
	LangKorean,
	LangPortuguese,
	LangRussian,
	LangArabic,
}

// SearchLanguages is the closed subset of UI languages whose text
// resources are loaded eagerly and consulted by the search engine.
// Expanding this list changes search behavior for every user, so it is
// deliberately not derived from UILanguages.
var SearchLanguages = []Language{
	LangEnglish,
	LangChinese,
	LangSpanish,
}

// IsUILanguage reports whether code is a renderable UI language.
func IsUILanguage(code Language) bool {
	for _, lang := range UILanguages {
		if lang == code {
			return true
		}
	}
	return false
}
