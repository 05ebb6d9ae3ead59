package supportHandler

import (
	supportService "EditorialAssistant/internal/api/support/service"
	"EditorialAssistant/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SupportHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	supportService supportService.ISupportService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ss supportService.ISupportService,
) *SupportHandler {
	return &SupportHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		supportService: ss,
	}
}

func (h *SupportHandler) Start(srv fiber.Router) {
	tickets := srv.Group("/support/tickets")

	tickets.Post("/", h.middleware.NewTokenMiddleware, h.OpenTicket)
	tickets.Get("/:id", h.middleware.NewTokenMiddleware, h.GetTicket)
}
