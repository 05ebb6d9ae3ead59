package nlp

import "context"

type Intent string

const (
	IntentDetails    Intent = "DETAILS"
	IntentWhereToBuy Intent = "WHERE_TO_BUY"
	IntentSupport    Intent = "SUPPORT"
)

func (i Intent) Valid() bool {
	switch i {
	case IntentDetails, IntentWhereToBuy, IntentSupport:
		return true
	}
	return false
}

// Slots is the closed slot set. Unset slots stay nil, never empty strings.
type Slots struct {
	Title   *string `json:"title,omitempty"`
	City    *string `json:"city,omitempty"`
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Message *string `json:"message,omitempty"`
}

type Result struct {
	Intent     Intent  `json:"intent"`
	Slots      Slots   `json:"slots"`
	Confidence float64 `json:"confidence"`
}

// Session is the read-only snapshot of conversational memory the engine consumes.
// Writes belong to the turn handler, never to the engine.
type Session struct {
	LastTitle string
	LastCity  string
}

// RawClassification is the untyped payload a fallback classifier returns.
// It is validated at the cascade boundary; nothing downstream sees this shape.
type RawClassification struct {
	Intent     string                 `json:"intent"`
	Slots      map[string]interface{} `json:"slots"`
	Confidence *float64               `json:"confidence"`
}

type FallbackClassifier interface {
	Classify(ctx context.Context, utterance string) (*RawClassification, error)
}

func Str(s string) *string {
	return &s
}

func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
