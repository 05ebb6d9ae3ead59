package catalogHandler

import (
	catalogService "EditorialAssistant/internal/api/catalog/service"
	"EditorialAssistant/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs catalogService.ICatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		catalogService: cs,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	books := srv.Group("/catalog/books")

	books.Get("/:title", h.middleware.NewTokenMiddleware, h.GetBookDetails)
	books.Get("/:title/stores", h.middleware.NewTokenMiddleware, h.FindStores)
}
