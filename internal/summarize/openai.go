package summarize

import (
	"context"
	"errors"
	"fmt"

	"shownotes/pkg/openaiclient"
)

type openaiBackend struct {
	client *openaiclient.Client
	model  string
}

func (b *openaiBackend) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.Chat(ctx, openaiclient.ChatRequest{
		Model: b.model,
		Messages: []openaiclient.Message{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", classifyOpenAIErr(err)
	}

	if resp.Content == "" {
		return "", permanentErr(fmt.Errorf("empty completion from %s", b.model))
	}
	return resp.Content, nil
}

func classifyOpenAIErr(err error) *BackendError {
	var statusErr *openaiclient.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Retryable() {
			return transientErr(err)
		}
		return permanentErr(err)
	}

	// Anything below HTTP status level (DNS, reset, deadline) is a
	// network condition worth retrying.
	return transientErr(err)
}
