package nlp

// Resolve augments a classification with free-text and session fallbacks.
// A slot the cascade already filled is never overridden. The input result is
// left untouched; a fresh one is returned.
func Resolve(result Result, utterance string, session Session) Result {
	resolved := result

	if StringValue(resolved.Slots.Title) == "" {
		if title := TitleFromText(utterance); title != "" {
			resolved.Slots.Title = Str(title)
		}
	}

	// Session memory is the last resort for a missing title.
	if StringValue(resolved.Slots.Title) == "" && session.LastTitle != "" {
		resolved.Slots.Title = Str(session.LastTitle)
	}

	// Inline city mentions like "... onde compro em Rio?" are re-scanned over the
	// whole utterance, not just the continuation-only anchor.
	if resolved.Intent == IntentWhereToBuy && StringValue(resolved.Slots.City) == "" {
		if city := ExtractTrailingCity(utterance); city != "" {
			resolved.Slots.City = Str(city)
		}
	}

	return resolved
}
