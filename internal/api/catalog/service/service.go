package catalogService

import (
	"EditorialAssistant/internal/api/catalog"
	catalogRepository "EditorialAssistant/internal/api/catalog/repository"
	"context"

	"github.com/sirupsen/logrus"
)

type ICatalogService interface {
	GetBookDetails(ctx context.Context, title string) (*catalog.BookDetailsResponse, error)
	FindStores(ctx context.Context, title string, city string) (*catalog.StoresResponse, error)
}

type catalogService struct {
	log         *logrus.Logger
	catalogRepo catalogRepository.Repository
}

func NewCatalogService(
	log *logrus.Logger,
	catalogRepo catalogRepository.Repository,
) ICatalogService {
	return &catalogService{
		log:         log,
		catalogRepo: catalogRepo,
	}
}
