package detector

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// minLanguageText is the shortest text worth running detection on.
const minLanguageText = 20

var languages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
	lingua.Swedish,
	lingua.Polish,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
	lingua.Korean,
}

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

func getLanguageDetector() lingua.LanguageDetector {
	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			WithMinimumRelativeDistance(0.1).
			Build()
	})
	return languageDetector
}

// DetectLanguage returns the ISO 639-1 code of the text's language and
// the detector's confidence in it. The code is empty when the text is
// too short or no language is reliably ahead of the others.
func DetectLanguage(text string) (string, float64) {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minLanguageText {
		return "", 0
	}

	d := getLanguageDetector()
	lang, ok := d.DetectLanguageOf(text)
	if !ok {
		return "", 0
	}
	return strings.ToLower(lang.IsoCode639_1().String()), d.ComputeLanguageConfidence(text, lang)
}
