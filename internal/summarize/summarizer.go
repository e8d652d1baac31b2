package summarize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shownotes/internal/domain"
	"shownotes/internal/store"
)

const summaryPrompt = `You are an editor preparing publishable shownotes for an Irish talk-radio station. Write a concise narrative summary (at most 200 words, plain prose, no markdown) of the segment transcript below.

Requirements:
- Lead with the main topic and the strongest claim made on air
- Name the guests and speakers where the transcript identifies them
- Keep place names, figures and dates exactly as spoken
- Neutral editorial register; no first person, no filler
%s
Transcript:
---
%s
---`

const truncationMarker = "\n[... transcript truncated ...]\n"

// styleHintCount caps how many prior headlines are fed back as house-style examples.
const styleHintCount = 3

func (s *implEngine) Summarize(ctx context.Context, transcript string, repo store.Repository) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", fmt.Errorf("summarize: empty transcript: %w", domain.ErrInvalidInput)
	}

	prompt := fmt.Sprintf(summaryPrompt,
		s.styleHints(ctx, repo),
		truncate(transcript, s.maxInputRunes),
	)

	var lastErr error
	backoff := s.backoff

	for attempt := 1; attempt <= s.attempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		summary, err := s.backend.complete(callCtx, prompt)
		cancel()

		if err == nil {
			return strings.TrimSpace(summary), nil
		}
		if !IsTransient(err) {
			return "", err
		}

		lastErr = err
		if attempt == s.attempts {
			break
		}

		s.logger.Warn(ctx, "Summarization attempt %d/%d failed, retrying in %s: %v", attempt, s.attempts, backoff, err)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return "", permanentErr(ctx.Err())
		}
		backoff *= 2
	}

	// Retry budget exhausted: what was transient is now permanent for
	// this invocation.
	return "", permanentErr(fmt.Errorf("retries exhausted after %d attempts: %w", s.attempts, lastErr))
}

// styleHints renders up to styleHintCount recent headlines as prompt
// context. Lookup failures degrade to no hints; hints are never worth
// failing a generation over.
func (s *implEngine) styleHints(ctx context.Context, repo store.Repository) string {
	if repo == nil {
		return ""
	}

	records := repo.FindByShow(ctx, "")
	if len(records) == 0 {
		return ""
	}

	var lines []string
	for _, rec := range records {
		if rec.Headline == "" {
			continue
		}
		lines = append(lines, "- "+rec.Headline)
		if len(lines) == styleHintCount {
			break
		}
	}
	if len(lines) == 0 {
		return ""
	}

	return "\nRecent headlines, for house style:\n" + strings.Join(lines, "\n") + "\n"
}

// truncate deterministically cuts oversized transcripts to the first
// three quarters and final quarter of the rune budget, joined by a
// marker, so the opening and closing of a segment both survive.
func truncate(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}

	head := maxRunes * 3 / 4
	tail := maxRunes - head
	return string(runes[:head]) + truncationMarker + string(runes[len(runes)-tail:])
}
