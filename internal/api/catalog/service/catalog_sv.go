package catalogService

import (
	"EditorialAssistant/internal/api/catalog"
	"EditorialAssistant/internal/entity"
	contextPkg "EditorialAssistant/pkg/context"
	"EditorialAssistant/pkg/nlp"
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

func (s *catalogService) GetBookDetails(ctx context.Context, title string) (*catalog.BookDetailsResponse, error) {
	book, err := s.getBookByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	availability := make([]catalog.AvailabilityResponse, 0, len(book.Availability))
	for _, loc := range book.Availability {
		availability = append(availability, catalog.AvailabilityResponse{
			Location: loc.Location,
			Stores:   loc.Stores,
		})
	}

	return &catalog.BookDetailsResponse{
		ID:           book.ID,
		Title:        book.Title,
		Author:       book.Author,
		Imprint:      book.Imprint,
		ReleaseDate:  book.ReleaseDate,
		Synopsis:     book.Synopsis,
		Availability: availability,
	}, nil
}

// FindStores always reports the online vendors; the city section is filled
// only when the requested city resolves to a catalog entry with stores.
// An unresolved city is a normal outcome, not an error: City echoes the
// trimmed input and Stores stays empty.
func (s *catalogService) FindStores(ctx context.Context, title string, city string) (*catalog.StoresResponse, error) {
	book, err := s.getBookByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	resp := &catalog.StoresResponse{
		Title:  book.Title,
		Stores: []string{},
		Online: []string{},
	}

	for _, loc := range book.Availability {
		if loc.Location == entity.OnlineLocation {
			resp.Online = loc.Stores
			break
		}
	}

	if trimmed := strings.TrimSpace(city); trimmed != "" {
		resp.City = &trimmed
		if match := resolveCity(city, book.Availability); match != nil {
			resp.City = &match.City
			resp.Stores = match.Stores
		}
	}

	return resp, nil
}

// getBookByTitle matches the requested title against the catalog ignoring
// case and diacritics, then loads the full record.
func (s *catalogService) getBookByTitle(ctx context.Context, title string) (entity.Book, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(title) == "" {
		return entity.Book{}, catalog.ErrTitleRequired
	}

	client, err := s.catalogRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create catalog repository client")
		return entity.Book{}, err
	}

	books, err := client.Books.ListBooks(ctx)
	if err != nil {
		return entity.Book{}, err
	}

	want := nlp.Normalize(title)
	for _, book := range books {
		if nlp.Normalize(book.Title) == want {
			return client.Books.GetBookByID(ctx, book.ID)
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"title":      title,
	}).Warn("Book title not found in catalog")

	return entity.Book{}, catalog.ErrBookNotFound
}
