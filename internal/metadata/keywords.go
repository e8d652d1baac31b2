package metadata

import (
	"strings"
	"unicode"
)

const (
	maxKeywords   = 12
	minKeywordLen = 4
)

// stopwords are common talk-show filler that never makes a useful keyword.
var stopwords = map[string]bool{
	"about": true, "after": true, "again": true, "also": true, "because": true,
	"been": true, "before": true, "being": true, "between": true, "both": true,
	"could": true, "does": true, "doing": true, "down": true,
	"during": true, "each": true, "even": true, "every": true, "from": true,
	"going": true, "gonna": true, "good": true, "have": true, "having": true,
	"caller": true, "callers": true, "here": true, "into": true, "just": true,
	"kind": true, "know": true, "listeners": true,
	"like": true, "little": true, "lots": true, "make": true, "many": true,
	"mean": true, "more": true, "morning": true, "most": true, "much": true,
	"need": true, "never": true, "okay": true, "only": true, "other": true,
	"over": true, "people": true, "programme": true, "really": true,
	"right": true, "said": true, "same": true, "says": true, "show": true,
	"some": true, "something": true, "speaking": true, "spoke": true,
	"still": true, "such": true, "sure": true,
	"take": true, "talk": true, "talking": true, "than": true, "thank": true,
	"thanks": true, "that": true, "their": true, "them": true, "then": true,
	"there": true, "these": true, "they": true, "thing": true, "things": true,
	"think": true, "this": true, "those": true, "time": true, "today": true,
	"very": true, "want": true, "week": true, "well": true, "were": true,
	"what": true, "when": true, "where": true, "which": true, "while": true,
	"will": true, "with": true, "would": true, "year": true, "years": true,
	"your": true,
}

// Keywords extracts salient terms from transcript and summary text.
// Terms are deduplicated case-insensitively with the first-seen spelling
// and order kept; the result is empty (not an error) when nothing
// qualifies.
func Keywords(transcript, summary string) []string {
	var keywords []string
	seen := make(map[string]bool)

	collect := func(text string) {
		for _, token := range strings.FieldsFunc(text, isSeparator) {
			word := strings.Trim(token, "'’-")
			if !salient(word) {
				continue
			}
			key := strings.ToLower(word)
			if seen[key] {
				continue
			}
			seen[key] = true
			keywords = append(keywords, word)
			if len(keywords) == maxKeywords {
				return
			}
		}
	}

	collect(transcript)
	if len(keywords) < maxKeywords {
		collect(summary)
	}
	return keywords
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && r != '\'' && r != '’' && r != '-'
}

func salient(word string) bool {
	runes := []rune(word)
	if len(runes) < minKeywordLen {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && r != '\'' && r != '’' && r != '-' {
			return false
		}
	}
	return !stopwords[strings.ToLower(word)]
}
