package summarize

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type geminiBackend struct {
	apiKey string
	model  string
}

func (b *geminiBackend) complete(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  b.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", transientErr(fmt.Errorf("create gemini client: %w", err))
	}

	result, err := client.Models.GenerateContent(ctx, b.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGeminiErr(err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", permanentErr(fmt.Errorf("empty response from %s", b.model))
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", permanentErr(fmt.Errorf("empty response from %s", b.model))
	}
	return text.String(), nil
}

func classifyGeminiErr(err error) *BackendError {
	msg := err.Error()
	if strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED") ||
		strings.Contains(msg, "UNAVAILABLE") ||
		strings.Contains(msg, "deadline") {
		return transientErr(err)
	}
	return permanentErr(err)
}
