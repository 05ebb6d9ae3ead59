package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"EditorialAssistant/pkg/nlp"

	"github.com/sashabaranov/go-openai"
)

const classifierSystemPrompt = `You are an intent classifier for a publisher's assistant.

IMPORTANT: Return ONLY valid JSON, nothing else.

Format:
{
  "intent": "DETAILS|WHERE_TO_BUY|SUPPORT",
  "slots": {"title": null, "city": null, "name": null, "email": null, "subject": null, "message": null},
  "confidence": 0.9
}

Rules:
- DETAILS: the user asks about a book from the catalog.
- WHERE_TO_BUY: the user asks where to buy a book (physical stores or online).
- SUPPORT: the user wants to open a support ticket.
- Messages are usually in Portuguese.
- Only fill slots that are explicit in the message, keep the rest null.`

type chatClassifier struct {
	client *openai.Client
	model  string
}

// NewFallbackClassifier builds the ChatGPT-backed last-resort classifier,
// selected with FALLBACK_PROVIDER=openai.
func NewFallbackClassifier() nlp.FallbackClassifier {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_CHAT_MODEL")

	if model == "" {
		model = openai.GPT4
	}

	return &chatClassifier{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *chatClassifier) Classify(ctx context.Context, utterance string) (*nlp.RawClassification, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: classifierSystemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: utterance,
		},
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: 0.3,
			MaxTokens:   200,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)

	if err != nil {
		return nil, fmt.Errorf("ChatGPT API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from ChatGPT")
	}

	var raw nlp.RawClassification
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse classification: %w", err)
	}

	return &raw, nil
}
