package nlp

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

type recognizer struct {
	name  string
	apply func(text string, session Session) (*Result, bool)
}

// Classifier evaluates an ordered recognizer cascade; the first match wins.
// Ticket commands come before anything that could also fire on ticket text, and
// the bare city continuation comes before the generic purchase query so that a
// standalone "Em São Paulo?" keeps its conversational context instead of
// falling through to the fallback model.
type Classifier struct {
	log      *logrus.Logger
	fallback FallbackClassifier
	rules    []recognizer
}

func NewClassifier(log *logrus.Logger, fallback FallbackClassifier) *Classifier {
	return &Classifier{
		log:      log,
		fallback: fallback,
		rules: []recognizer{
			{name: "ticket_quoted_subject", apply: ruleTicketQuotedSubject},
			{name: "ticket_payload", apply: ruleTicketPayload},
			{name: "bare_city_continuation", apply: ruleBareCityContinuation},
			{name: "purchase_query", apply: rulePurchaseQuery},
			{name: "quoted_title", apply: ruleQuotedTitle},
		},
	}
}

// Classify runs the cascade over one utterance. Session state is only read.
// An empty or whitespace-only utterance matches no rule and goes to the fallback.
func (c *Classifier) Classify(ctx context.Context, utterance string, session Session) Result {
	text := strings.TrimSpace(utterance)

	if text != "" {
		for _, r := range c.rules {
			result, ok := r.apply(text, session)
			if !ok {
				continue
			}

			c.log.WithFields(logrus.Fields{
				"rule":       r.name,
				"intent":     result.Intent,
				"confidence": result.Confidence,
			}).Debug("Recognizer matched")

			return *result
		}
	}

	return c.classifyWithFallback(ctx, text)
}

// classifyWithFallback delegates to the generative model. This boundary is
// fail-safe: any error or malformed payload degrades to the default result so
// the conversation keeps moving.
func (c *Classifier) classifyWithFallback(ctx context.Context, text string) Result {
	defaultResult := Result{Intent: IntentDetails, Confidence: 0.5}

	if c.fallback == nil {
		c.log.Warn("No fallback classifier configured, returning default result")
		return defaultResult
	}

	raw, err := c.fallback.Classify(ctx, text)
	if err != nil || raw == nil {
		c.log.WithFields(logrus.Fields{
			"error": errString(err),
		}).Warn("Fallback classification failed, returning default result")
		return defaultResult
	}

	return sanitizeFallback(raw)
}

// sanitizeFallback validates the external payload into the internal result
// shape: intent upper-cased and checked against the closed set, slots limited
// to the known names with non-empty string values, confidence clamped to [0,1].
func sanitizeFallback(raw *RawClassification) Result {
	intent := Intent(strings.ToUpper(strings.TrimSpace(raw.Intent)))
	if !intent.Valid() {
		intent = IntentDetails
	}

	result := Result{Intent: intent, Confidence: 0.5}

	if raw.Confidence != nil {
		confidence := *raw.Confidence
		if confidence < 0 {
			confidence = 0
		}
		if confidence > 1 {
			confidence = 1
		}
		result.Confidence = confidence
	}

	for key, value := range raw.Slots {
		text, ok := value.(string)
		if !ok {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		switch strings.ToLower(key) {
		case "title":
			result.Slots.Title = Str(text)
		case "city":
			result.Slots.City = Str(text)
		case "name":
			result.Slots.Name = Str(text)
		case "email":
			result.Slots.Email = Str(text)
		case "subject":
			result.Slots.Subject = Str(text)
		case "message":
			result.Slots.Message = Str(text)
		}
	}

	return result
}

func errString(err error) string {
	if err == nil {
		return "empty classification"
	}
	return err.Error()
}
