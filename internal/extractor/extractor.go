package extractor

import (
	"math"
	"strings"
)

const (
	maxConstraints        = 6
	maxEntities           = 10
	maxConstraintPhraseLen = 200
)

// Extract runs the rule-based analysis over a raw transcript. It is a total
// function: any string, including empty, yields a complete result. Calling it
// twice on the same input returns identical output.
func Extract(transcript string) ExtractedData {
	lower := strings.ToLower(transcript)
	wordCount := len(strings.Fields(transcript))

	return ExtractedData{
		PrimaryIntent:  detectIntent(lower),
		OutputType:     detectOutputType(lower),
		Topics:         detectTopics(lower),
		Constraints:    extractConstraints(transcript),
		Entities:       extractEntities(transcript),
		AmbiguityScore: ambiguityScore(transcript, lower, wordCount),
		WordCount:      wordCount,
	}
}

// detectIntent returns the first intent whose vocabulary matches, in table
// order. Earlier table position wins even if a later tag's phrase appears
// earlier in the text.
func detectIntent(lower string) string {
	for _, entry := range intentVocab {
		if matchesAny(lower, entry.phrases) {
			return entry.tag
		}
	}
	return "general"
}

func detectOutputType(lower string) string {
	for _, entry := range outputVocab {
		if matchesAny(lower, entry.phrases) {
			return entry.tag
		}
	}
	return "response"
}

// detectTopics returns every matching topic, in table order. Unlike intent
// and output type this is a set, not first-match.
func detectTopics(lower string) []string {
	var topics []string
	for _, entry := range topicVocab {
		if matchesAny(lower, entry.phrases) {
			topics = append(topics, entry.tag)
		}
	}
	return topics
}

func matchesAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// extractConstraints collects constraint phrases in pattern-then-match order,
// deduplicated by a lowercased whitespace-collapsed key, capped at six.
func extractConstraints(transcript string) []string {
	seen := make(map[string]bool)
	var results []string

	for _, pattern := range constraintPatterns {
		for _, match := range pattern.FindAllString(transcript, -1) {
			phrase := strings.TrimSpace(match)
			key := whitespaceRun.ReplaceAllString(strings.ToLower(phrase), " ")
			if !seen[key] && len(phrase) < maxConstraintPhraseLen {
				seen[key] = true
				results = append(results, phrase)
			}
		}
	}

	if len(results) > maxConstraints {
		results = results[:maxConstraints]
	}
	return results
}

// extractEntities finds capitalized word runs that do not open a sentence,
// plus ALL-CAPS acronyms, deduplicated in first-seen order.
func extractEntities(transcript string) []string {
	seen := make(map[string]bool)
	var entities []string
	add := func(e string) {
		if !seen[e] {
			seen[e] = true
			entities = append(entities, e)
		}
	}

	// Go's regexp has no lookbehind, so the sentence-start exclusion is a
	// post-match check: reject a run preceded (within two whitespace chars)
	// by sentence-terminal punctuation, then retry one character further on.
	pos := 0
	for pos < len(transcript) {
		loc := capitalizedRun.FindStringIndex(transcript[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if followsSentenceEnd(transcript, start) {
			pos = start + 1
			continue
		}
		add(transcript[start:end])
		pos = end
	}

	for _, m := range acronymPattern.FindAllString(transcript, -1) {
		add(m)
	}

	if len(entities) > maxEntities {
		entities = entities[:maxEntities]
	}
	return entities
}

// followsSentenceEnd reports whether position i is preceded by one of .!?\n
// with at most two whitespace characters in between.
func followsSentenceEnd(s string, i int) bool {
	for back := 1; back <= 3; back++ {
		j := i - back
		if j < 0 {
			return false
		}
		c := s[j]
		if c == '.' || c == '!' || c == '?' || c == '\n' {
			return true
		}
		if back < 3 && (c == ' ' || c == '\t' || c == '\r') {
			continue
		}
		return false
	}
	return false
}

// ambiguityScore combines three signals: transcript shortness, hedging-phrase
// density, and the absence of any recognized intent vocabulary. The result is
// clamped to [0,1] and rounded to two decimals.
func ambiguityScore(transcript, lower string, wordCount int) float64 {
	score := 0.0

	switch {
	case wordCount < 15:
		score += 0.4
	case wordCount < 30:
		score += 0.2
	case wordCount < 50:
		score += 0.1
	}

	hits := 0
	for _, pattern := range ambiguityPatterns {
		hits += len(pattern.FindAllString(transcript, -1))
	}
	score += math.Min(float64(hits)*0.12, 0.45)

	hasIntent := false
	for _, entry := range intentVocab {
		if matchesAny(lower, entry.phrases) {
			hasIntent = true
			break
		}
	}
	if !hasIntent {
		score += 0.15
	}

	return math.Min(math.Round(score*100)/100, 1.0)
}
