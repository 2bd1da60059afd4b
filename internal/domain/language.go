package domain

import "fmt"

// LanguageCode is the numeric language value used by the SIM toolkit layer
type LanguageCode uint8

const (
	LanguageGerman      LanguageCode = 0x00
	LanguageEnglish     LanguageCode = 0x01
	LanguageItalian     LanguageCode = 0x02
	LanguageFrench      LanguageCode = 0x03
	LanguageSpanish     LanguageCode = 0x04
	LanguageDutch       LanguageCode = 0x05
	LanguageSwedish     LanguageCode = 0x06
	LanguageDanish      LanguageCode = 0x07
	LanguagePortuguese  LanguageCode = 0x08
	LanguageFinnish     LanguageCode = 0x09
	LanguageNorwegian   LanguageCode = 0x0A
	LanguageGreek       LanguageCode = 0x0B
	LanguageTurkish     LanguageCode = 0x0C
	LanguageHungarian   LanguageCode = 0x0D
	LanguagePolish      LanguageCode = 0x0E
	LanguageUnspecified LanguageCode = 0x0F
	LanguageKorean      LanguageCode = 0x10
	LanguageChinese     LanguageCode = 0x11
	LanguageRussian     LanguageCode = 0x12
	LanguageJapanese    LanguageCode = 0x13
)

var languageLocales = map[LanguageCode]string{
	LanguageGerman:     "de_DE.UTF-8",
	LanguageEnglish:    "en_GB.UTF-8",
	LanguageItalian:    "it_IT.UTF-8",
	LanguageFrench:     "fr_FR.UTF-8",
	LanguageSpanish:    "es_ES.UTF-8",
	LanguageDutch:      "nl_NL.UTF-8",
	LanguageSwedish:    "sv_SE.UTF-8",
	LanguageDanish:     "da_DK.UTF-8",
	LanguagePortuguese: "pt_PT.UTF-8",
	LanguageFinnish:    "fi_FI.UTF-8",
	LanguageNorwegian:  "nb_NO.UTF-8",
	LanguageGreek:      "el_GR.UTF-8",
	LanguageTurkish:    "tr_TR.UTF-8",
	LanguageHungarian:  "hu_HU.UTF-8",
	LanguagePolish:     "pl_PL.UTF-8",
	LanguageKorean:     "ko_KR.UTF-8",
	LanguageChinese:    "zh_CN.UTF-8",
	LanguageRussian:    "ru_RU.UTF-8",
	LanguageJapanese:   "ja_JP.UTF-8",
}

// Locale maps a language code to its locale string
func (c LanguageCode) Locale() (string, error) {
	locale, ok := languageLocales[c]
	if !ok {
		return "", fmt.Errorf("%w: 0x%02x", ErrUnknownLanguage, uint8(c))
	}
	return locale, nil
}

// LanguageFromLocale is the reverse of Locale
func LanguageFromLocale(locale string) (LanguageCode, error) {
	for code, l := range languageLocales {
		if l == locale {
			return code, nil
		}
	}
	return LanguageUnspecified, fmt.Errorf("%w: %q", ErrUnknownLanguage, locale)
}

// KnownLanguages returns the number of languages with a locale
func KnownLanguages() int {
	return len(languageLocales)
}
