package catalogService

import (
	"EditorialAssistant/internal/entity"
	"EditorialAssistant/pkg/nlp"
	"strings"
)

// citySynonyms maps popular abbreviations and nicknames to the normalized
// form of the catalog city they stand for.
var citySynonyms = map[string]string{
	"sp":             "sao paulo",
	"sampa":          "sao paulo",
	"sao-paulo":      "sao paulo",
	"rj":             "rio de janeiro",
	"rio":            "rio de janeiro",
	"rio-de-janeiro": "rio de janeiro",
	"bh":             "belo horizonte",
	"floripa":        "florianopolis",
}

type cityMatch struct {
	City   string
	Stores []string
}

func canonicalCityInput(city string) string {
	normalized := nlp.Normalize(city)
	if canonical, ok := citySynonyms[normalized]; ok {
		return canonical
	}
	return normalized
}

// resolveCity matches a free-form city mention against the book's physical
// availability entries. Exact normalized matches win; otherwise a fuzzy pass
// accepts prefix or substring overlap between the candidate and the entry.
// Entries with no stores never match, and the Online pseudo-location is
// excluded entirely. Availability order decides ties.
func resolveCity(rawCity string, availability []entity.LocationAvailability) *cityMatch {
	if strings.TrimSpace(rawCity) == "" {
		return nil
	}

	candidate := canonicalCityInput(rawCity)

	type indexEntry struct {
		key   string
		entry entity.LocationAvailability
	}

	index := make([]indexEntry, 0, len(availability))
	for _, loc := range availability {
		if loc.Location == entity.OnlineLocation {
			continue
		}
		if len(loc.Stores) == 0 {
			continue
		}
		index = append(index, indexEntry{key: nlp.Normalize(loc.Location), entry: loc})
	}

	for _, e := range index {
		if e.key == candidate {
			return &cityMatch{City: e.entry.Location, Stores: e.entry.Stores}
		}
	}

	for _, e := range index {
		if strings.HasPrefix(candidate, e.key) ||
			strings.HasPrefix(e.key, candidate) ||
			strings.Contains(e.key, candidate) {
			return &cityMatch{City: e.entry.Location, Stores: e.entry.Stores}
		}
	}

	return nil
}
