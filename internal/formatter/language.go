package formatter

import (
	"fmt"
	"strings"
)

// Portuguese function words that rarely show up in English speech.
var ptStopwords = map[string]bool{
	"que": true, "não": true, "para": true, "uma": true, "com": true,
	"você": true, "está": true, "são": true, "fazer": true, "preciso": true,
	"como": true, "mais": true, "isso": true, "mas": true, "por": true,
}

const ptDiacritics = "ãõçáéíóúâê"

// resolveLanguage maps the language option to a concrete output language.
// "auto" sniffs Portuguese from stop-word and diacritic density. The exact
// thresholds are tunable heuristics, not contract.
func resolveLanguage(lang, transcript string) string {
	switch lang {
	case "en", "pt":
		return lang
	case "auto":
		if looksPortuguese(transcript) {
			return "pt"
		}
		return "en"
	}
	panic(fmt.Sprintf("formatter: unknown language %q", lang))
}

func looksPortuguese(transcript string) bool {
	lower := strings.ToLower(transcript)
	words := strings.Fields(lower)

	score := 0
	for _, w := range words {
		if ptStopwords[strings.Trim(w, ".,;:!?\"'()")] {
			score++
		}
	}
	for _, r := range lower {
		if strings.ContainsRune(ptDiacritics, r) {
			score++
		}
	}

	return score >= 3 && score*20 >= len(words)
}
