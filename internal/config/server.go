package config

import (
	"EditorialAssistant/database/postgres"
	assistantHandler "EditorialAssistant/internal/api/assistant/handler"
	assistantService "EditorialAssistant/internal/api/assistant/service"
	catalogHandler "EditorialAssistant/internal/api/catalog/handler"
	catalogRepository "EditorialAssistant/internal/api/catalog/repository"
	catalogService "EditorialAssistant/internal/api/catalog/service"
	supportHandler "EditorialAssistant/internal/api/support/handler"
	supportRepository "EditorialAssistant/internal/api/support/repository"
	supportService "EditorialAssistant/internal/api/support/service"
	"EditorialAssistant/internal/middleware"
	"EditorialAssistant/pkg/gemini"
	"EditorialAssistant/pkg/nlp"
	openaiPkg "EditorialAssistant/pkg/openai"
	"EditorialAssistant/pkg/redis"
	"EditorialAssistant/pkg/utils"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	redisServer redis.IRedis
	fallback    nlp.FallbackClassifier
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithFallbackClassifier picks the LLM provider from FALLBACK_PROVIDER.
// Gemini is the default; set FALLBACK_PROVIDER=openai to swap. An
// unconfigured provider is not fatal: the engine degrades to its
// fail-safe verdict when no classifier is available.
func WithFallbackClassifier() ServerOption {
	return func(s *Server) error {
		provider := os.Getenv("FALLBACK_PROVIDER")

		if provider == "openai" {
			s.fallback = openaiPkg.NewFallbackClassifier()
			return nil
		}

		client, err := gemini.NewFallbackClassifier()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini fallback classifier unavailable: %v", err)
			}
			return nil
		}
		s.fallback = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Catalog Domain
	catalogRepo := catalogRepository.New(s.db, s.log)
	catalogServices := catalogService.NewCatalogService(s.log, catalogRepo)
	catalogHandlers := catalogHandler.New(s.log, s.validator, s.middleware, catalogServices)

	// Support Domain
	supportRepo := supportRepository.New(s.db, s.log)
	supportServices := supportService.NewSupportService(s.log, supportRepo, s.utils)
	supportHandlers := supportHandler.New(s.log, s.validator, s.middleware, supportServices)

	// Assistant Domain
	classifier := nlp.NewClassifier(s.log, s.fallback)
	assistantServices := assistantService.NewAssistantService(s.log, classifier, catalogServices, supportServices, s.redisServer, s.utils)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, catalogHandlers, supportHandlers, assistantHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
