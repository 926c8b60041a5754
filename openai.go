package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// batchSeparator joins spans into one prompt and splits the reply back.
// It is asked for verbatim in the system prompt, so anything that survives
// a round trip through the model works as a sentinel.
const batchSeparator = "\n@@@@@\n"

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAITranslator translates batches of content spans with a single chat
// completion against an OpenAI-compatible API.
type OpenAITranslator struct {
	client *openai.Client
	model  string
}

func NewOpenAITranslator(apiKey, baseURL, model string) *OpenAITranslator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAITranslator{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (o *OpenAITranslator) Name() string {
	return "openai"
}

func (o *OpenAITranslator) TranslateSpans(ctx context.Context, spans []string, sourceLang, targetLang string) ([]string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: batchSystemPrompt(sourceLang, targetLang, len(spans))},
			{Role: openai.ChatMessageRoleUser, Content: strings.Join(spans, batchSeparator)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty completion response")
	}

	parts := strings.Split(resp.Choices[0].Message.Content, strings.TrimSpace(batchSeparator))
	// The model may merge or drop segments. Extra results are dropped and
	// missing ones stay empty, so the caller falls back to the original span.
	results := make([]string, len(spans))
	for i := range results {
		if i < len(parts) {
			results[i] = strings.TrimSpace(parts[i])
		}
	}
	return results, nil
}

func batchSystemPrompt(sourceLang, targetLang string, count int) string {
	return fmt.Sprintf(
		"You are a professional subtitle translator. Translate each segment from %s to %s. "+
			"Segments are separated by the marker %q; reply with exactly %d translated segments "+
			"separated by the same marker, in the same order. Keep translations concise and "+
			"natural for subtitle display. Reply with the translations only, no commentary.",
		languageName(sourceLang), languageName(targetLang), strings.TrimSpace(batchSeparator), count)
}
