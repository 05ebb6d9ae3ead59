package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"EditorialAssistant/pkg/nlp"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const classifierPrompt = `Analise a mensagem do usuário e retorne **apenas** JSON válido com o formato:
{ "intent": "DETAILS|WHERE_TO_BUY|SUPPORT", "slots": {"title": str|null, "city": str|null, "name": str|null, "email": str|null, "subject": str|null, "message": str|null}, "confidence": float }

Intenções:
- DETAILS: o usuário quer detalhes de um livro do catálogo.
- WHERE_TO_BUY: o usuário quer saber onde comprar um livro (lojas físicas ou online).
- SUPPORT: o usuário quer abrir um chamado de suporte.

Mensagem: %s`

type geminiClassifier struct {
	apiKey    string
	modelName string
	client    *genai.Client
}

// NewFallbackClassifier builds the Gemini-backed last-resort classifier.
func NewFallbackClassifier() (nlp.FallbackClassifier, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClassifier{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiClassifier) Classify(ctx context.Context, utterance string) (*nlp.RawClassification, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.ResponseMIMEType = "application/json"

	res, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(classifierPrompt, utterance)))
	if err != nil {
		return nil, err
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("no response from Gemini API")
	}

	text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, errors.New("unexpected response format from Gemini API")
	}

	var raw nlp.RawClassification
	if err := json.Unmarshal([]byte(stripCodeFence(string(text))), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse classification: %w", err)
	}

	return &raw, nil
}

// stripCodeFence unwraps payloads the model wrapped in a markdown code block.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func (g *geminiClassifier) Close() {
	if g.client != nil {
		g.client.Close()
	}
}
