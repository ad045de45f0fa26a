package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type implOpenAI struct {
	client *openai.Client
	model  string
}

func newOpenAI(apiKey, model string) Client {
	return &implOpenAI{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (s *implOpenAI) Summarize(ctx context.Context, text, instructions string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: instructions},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from %s", s.model)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
