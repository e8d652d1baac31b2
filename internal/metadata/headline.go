// Package metadata derives the publishable headline and keyword set
// from generated summary text. Both stages are pure and deterministic.
package metadata

import (
	"fmt"
	"strings"
	"unicode"

	"shownotes/internal/domain"
)

const maxHeadlineRunes = 120

// Headline derives a short headline from summary text: the first
// sentence, cut on a word boundary when it runs past the headline budget.
func Headline(summary string) (string, error) {
	text := strings.TrimSpace(summary)
	if text == "" {
		return "", fmt.Errorf("headline: empty summary: %w", domain.ErrInvalidInput)
	}

	sentence := firstSentence(text)
	runes := []rune(sentence)
	if len(runes) <= maxHeadlineRunes {
		return sentence, nil
	}

	cut := string(runes[:maxHeadlineRunes])
	if i := strings.LastIndexFunc(cut, unicode.IsSpace); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,;:") + "…", nil
}

func firstSentence(text string) string {
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			return strings.TrimSpace(text[:i])
		}
	}
	return text
}
