package assistantService

import (
	"EditorialAssistant/internal/api/assistant"
	catalogService "EditorialAssistant/internal/api/catalog/service"
	supportService "EditorialAssistant/internal/api/support/service"
	"EditorialAssistant/pkg/nlp"
	redisPkg "EditorialAssistant/pkg/redis"
	"EditorialAssistant/pkg/utils"
	"context"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultSessionTTL = 24 * time.Hour

type IAssistantService interface {
	Chat(ctx context.Context, userID string, req assistant.ChatRequest) (*assistant.ChatResponse, error)
	Classify(ctx context.Context, req assistant.ClassifyRequest) (*assistant.ClassifyResponse, error)
	ClearSession(ctx context.Context, userID string, sessionID string) error
}

type assistantService struct {
	log            *logrus.Logger
	classifier     *nlp.Classifier
	catalogService catalogService.ICatalogService
	supportService supportService.ISupportService
	sessionStore   redisPkg.IRedis
	utils          utils.IUtils
	sessionTTL     time.Duration
}

func NewAssistantService(
	log *logrus.Logger,
	classifier *nlp.Classifier,
	cs catalogService.ICatalogService,
	ss supportService.ISupportService,
	sessionStore redisPkg.IRedis,
	utils utils.IUtils,
) IAssistantService {
	return &assistantService{
		log:            log,
		classifier:     classifier,
		catalogService: cs,
		supportService: ss,
		sessionStore:   sessionStore,
		utils:          utils,
		sessionTTL:     sessionTTLFromEnv(),
	}
}

func sessionTTLFromEnv() time.Duration {
	raw := os.Getenv("SESSION_TTL_HOURS")
	if raw == "" {
		return defaultSessionTTL
	}

	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		return defaultSessionTTL
	}

	return time.Duration(hours) * time.Hour
}
