package catalogService

import (
	"EditorialAssistant/internal/api/catalog"
	catalogRepository "EditorialAssistant/internal/api/catalog/repository"
	"EditorialAssistant/internal/entity"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBooks struct {
	books []entity.Book
}

func (f *fakeBooks) ListBooks(_ context.Context) ([]entity.Book, error) {
	listed := make([]entity.Book, 0, len(f.books))
	for _, b := range f.books {
		stripped := b
		stripped.Availability = nil
		listed = append(listed, stripped)
	}
	return listed, nil
}

func (f *fakeBooks) GetBookByID(_ context.Context, id string) (entity.Book, error) {
	for _, b := range f.books {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Book{}, catalog.ErrBookNotFound
}

type fakeCatalogRepo struct {
	books *fakeBooks
}

func (f *fakeCatalogRepo) NewClient(_ bool) (catalogRepository.Client, error) {
	return catalogRepository.Client{
		Books:    f.books,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestCatalogService() ICatalogService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := &fakeCatalogRepo{books: &fakeBooks{books: []entity.Book{
		{
			ID:          "01J0000000000000000000TEST",
			Title:       "A Abelha",
			Author:      "Maria Santos",
			Imprint:     "Selo Infantil",
			ReleaseDate: "01/03/2024",
			Synopsis:    "Uma abelha que descobre o mundo.",
			Availability: []entity.LocationAvailability{
				{Location: "São Paulo", Stores: []string{"Livraria Central"}},
				{Location: "Online", Stores: []string{"Amazon"}},
			},
		},
	}}}

	return NewCatalogService(logger, repo)
}

func TestGetBookDetailsDiacriticInsensitive(t *testing.T) {
	svc := newTestCatalogService()

	for _, title := range []string{"A Abelha", "a abelha", "A ABELHA", "  a Abelha "} {
		details, err := svc.GetBookDetails(context.Background(), title)
		require.NoError(t, err, "title %q", title)
		assert.Equal(t, "A Abelha", details.Title)
		assert.Equal(t, "Maria Santos", details.Author)
		require.Len(t, details.Availability, 2)
	}
}

func TestGetBookDetailsNotFound(t *testing.T) {
	svc := newTestCatalogService()

	_, err := svc.GetBookDetails(context.Background(), "Livro Inexistente")
	assert.ErrorIs(t, err, catalog.ErrBookNotFound)
}

func TestGetBookDetailsEmptyTitle(t *testing.T) {
	svc := newTestCatalogService()

	_, err := svc.GetBookDetails(context.Background(), "   ")
	assert.ErrorIs(t, err, catalog.ErrTitleRequired)
}

func TestFindStoresWithCityMatch(t *testing.T) {
	svc := newTestCatalogService()

	stores, err := svc.FindStores(context.Background(), "a abelha", "sp")
	require.NoError(t, err)

	require.NotNil(t, stores.City)
	assert.Equal(t, "São Paulo", *stores.City)
	assert.Equal(t, []string{"Livraria Central"}, stores.Stores)
	assert.Equal(t, []string{"Amazon"}, stores.Online)
}

func TestFindStoresUnresolvedCityKeepsOnline(t *testing.T) {
	svc := newTestCatalogService()

	stores, err := svc.FindStores(context.Background(), "A Abelha", "Salvador")
	require.NoError(t, err)

	require.NotNil(t, stores.City)
	assert.Equal(t, "Salvador", *stores.City)
	assert.Empty(t, stores.Stores)
	assert.Equal(t, []string{"Amazon"}, stores.Online)
}

func TestFindStoresWithoutCity(t *testing.T) {
	svc := newTestCatalogService()

	stores, err := svc.FindStores(context.Background(), "A Abelha", "")
	require.NoError(t, err)

	assert.Nil(t, stores.City)
	assert.Empty(t, stores.Stores)
	assert.Equal(t, []string{"Amazon"}, stores.Online)
}
