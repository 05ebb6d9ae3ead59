package assistantHandler

import (
	assistantService "EditorialAssistant/internal/api/assistant/service"
	"EditorialAssistant/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	assistant := srv.Group("/assistant")

	assistant.Post("/chat", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.Chat)
	assistant.Post("/classify", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.Classify)
	assistant.Delete("/session/:session_id", h.middleware.NewTokenMiddleware, h.ClearSession)
}
