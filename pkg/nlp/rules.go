package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Recognizer patterns. The command verbs and prepositions are Portuguese, matching
// the audience of the assistant ("abra um ticket", "onde compro", "em <cidade>").
var (
	// "Abra um ticket 'Assunto...'" — straight or typographic quote pairs.
	ticketSubjectRe = regexp.MustCompile(`(?is)^\s*abr(?:a|ir)\s+(?:um\s+)?(?:ticket|chamado)\s*['"“‘](.+?)['"”’]\s*$`)

	// "Abrir ticket: name=..., email=..., subject=..., message=..."
	ticketPayloadRe = regexp.MustCompile(`(?is)^\s*abr(?:a|ir)\s+(?:um\s+)?(?:ticket|chamado)\s*:?\s*(.+)$`)

	// key=value pairs, comma separated; keys accepted in PT and EN.
	ticketFieldRe = regexp.MustCompile(`(?i)(name|nome|email|subject|assunto|message|mensagem)\s*=\s*([^,]+)`)

	// Whole-utterance city continuation: "Em São Paulo?", "E em Floripa", "no Rio de Janeiro".
	cityOnlyRe = regexp.MustCompile(`(?i)^\s*(?:e\s+em|em|no|na)\s+([A-Za-zÀ-ÿ\s]+)\??\s*$`)

	// Trailing city phrase anywhere in the utterance, anchored to its end.
	cityTailRe = regexp.MustCompile(`(?i)(?:^|[\s,.;!?])(?:e\s+em|em|no|na)\s+([A-Za-zÀ-ÿ\s]+)\??$`)

	purchaseRe = regexp.MustCompile(`(?i)\bonde\s+compr(?:ar|o)\b`)

	quotedSpanRe = regexp.MustCompile(`"([^"]+)"`)

	aboutTitleRe = regexp.MustCompile(`(?i)(?:sobre|detalhes de)\s+(.+)$`)

	trailingPunctRe = regexp.MustCompile(`[?.!]+$`)
)

const (
	minTitleLen = 2
	maxTitleLen = 120
	minCityLen  = 2
)

// ExtractTrailingCity pulls the city out of a trailing "em <cidade>?" phrase.
// Cities shorter than two characters are rejected as noise.
func ExtractTrailingCity(text string) string {
	m := cityTailRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return ""
	}

	city := strings.TrimSpace(m[1])
	if utf8.RuneCountInString(city) < minCityLen {
		return ""
	}
	return city
}

// extractBareCity matches only when the whole utterance is a city continuation.
func extractBareCity(text string) string {
	m := cityOnlyRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return ""
	}

	city := strings.TrimSpace(m[1])
	if utf8.RuneCountInString(city) < minCityLen {
		return ""
	}
	return city
}

// ExtractQuotedSpan returns the first double-quoted span, trimmed.
func ExtractQuotedSpan(text string) string {
	m := quotedSpanRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// TitleFromText extracts a probable title from free text: a quoted span first,
// then a phrase after "sobre" / "detalhes de" with trailing punctuation trimmed.
func TitleFromText(text string) string {
	if text == "" {
		return ""
	}

	if title := ExtractQuotedSpan(text); title != "" {
		return title
	}

	m := aboutTitleRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	candidate := strings.TrimSpace(trailingPunctRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
	n := utf8.RuneCountInString(candidate)
	if n < minTitleLen || n > maxTitleLen {
		return ""
	}
	return candidate
}

func stripQuotes(s string) string {
	s = strings.TrimSpace(s)

	pairs := [][2]string{
		{`"`, `"`},
		{`'`, `'`},
		{"“", "”"},
		{"‘", "’"},
	}
	for _, p := range pairs {
		if strings.HasPrefix(s, p[0]) && strings.HasSuffix(s, p[1]) && len(s) >= len(p[0])+len(p[1]) {
			return strings.TrimSpace(s[len(p[0]) : len(s)-len(p[1])])
		}
	}
	return s
}

func parseTicketFields(payload string) Slots {
	var slots Slots

	for _, m := range ticketFieldRe.FindAllStringSubmatch(payload, -1) {
		key := strings.ToLower(strings.TrimSpace(m[1]))
		val := stripQuotes(strings.TrimSpace(m[2]))
		if val == "" {
			continue
		}

		switch key {
		case "name", "nome":
			slots.Name = Str(val)
		case "email":
			slots.Email = Str(val)
		case "subject", "assunto":
			slots.Subject = Str(val)
		case "message", "mensagem":
			slots.Message = Str(val)
		}
	}

	return slots
}

// Recognizer 1: ticket command carrying a quoted subject.
func ruleTicketQuotedSubject(text string, _ Session) (*Result, bool) {
	m := ticketSubjectRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	subject := strings.TrimSpace(m[1])
	if subject == "" {
		return &Result{Intent: IntentSupport, Confidence: 0.85}, true
	}

	return &Result{
		Intent:     IntentSupport,
		Slots:      Slots{Subject: Str(subject)},
		Confidence: 0.99,
	}, true
}

// Recognizer 2: ticket command followed by key=value pairs.
func ruleTicketPayload(text string, _ Session) (*Result, bool) {
	m := ticketPayloadRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	slots := parseTicketFields(m[1])
	if slots == (Slots{}) {
		return &Result{Intent: IntentSupport, Confidence: 0.85}, true
	}

	return &Result{Intent: IntentSupport, Slots: slots, Confidence: 0.99}, true
}

// Recognizer 3: the utterance is only a city continuation and a title is already
// on record, e.g. "E em Florianópolis?" right after asking about a book.
func ruleBareCityContinuation(text string, session Session) (*Result, bool) {
	if session.LastTitle == "" {
		return nil, false
	}

	city := extractBareCity(text)
	if city == "" {
		return nil, false
	}

	return &Result{
		Intent:     IntentWhereToBuy,
		Slots:      Slots{Title: Str(session.LastTitle), City: Str(city)},
		Confidence: 0.99,
	}, true
}

// Recognizer 4: explicit "onde compro"/"onde comprar" purchase query.
// A query without a title is still usable via the session fallback downstream,
// hence the lower confidence.
func rulePurchaseQuery(text string, _ Session) (*Result, bool) {
	if !purchaseRe.MatchString(text) {
		return nil, false
	}

	var slots Slots
	confidence := 0.80

	if title := ExtractQuotedSpan(text); title != "" {
		slots.Title = Str(title)
		confidence = 0.95
	}
	if city := ExtractTrailingCity(text); city != "" {
		slots.City = Str(city)
	}

	return &Result{Intent: IntentWhereToBuy, Slots: slots, Confidence: confidence}, true
}

// Recognizer 5: a quoted title with no purchase phrase means a details request.
func ruleQuotedTitle(text string, _ Session) (*Result, bool) {
	title := ExtractQuotedSpan(text)
	if title == "" {
		return nil, false
	}

	return &Result{
		Intent:     IntentDetails,
		Slots:      Slots{Title: Str(title)},
		Confidence: 0.98,
	}, true
}
