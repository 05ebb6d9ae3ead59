package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"EditorialAssistant/internal/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

type IRedis interface {
	GetSession(ctx context.Context, sessionID string) (entity.ChatSession, error)
	SaveSession(ctx context.Context, session entity.ChatSession, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func sessionKey(sessionID string) string {
	return "chat_session:" + sessionID
}

func (r *redisClient) GetSession(ctx context.Context, sessionID string) (entity.ChatSession, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		logrus.Debug(fmt.Sprintf("Session %s not found", sessionID))
		return entity.ChatSession{}, ErrSessionNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting session %s: %v", sessionID, err))
		return entity.ChatSession{}, err
	}

	var session entity.ChatSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		logrus.Error(fmt.Sprintf("Error decoding session %s: %v", sessionID, err))
		return entity.ChatSession{}, err
	}

	return session, nil
}

func (r *redisClient) SaveSession(ctx context.Context, session entity.ChatSession, expiration time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		logrus.Error(fmt.Sprintf("Error encoding session %s: %v", session.ID, err))
		return err
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), payload, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error saving session %s: %v", session.ID, err))
		return err
	}

	logrus.Debug(fmt.Sprintf("Saved session %s with expiration %v", session.ID, expiration))
	return nil
}

func (r *redisClient) DeleteSession(ctx context.Context, sessionID string) error {
	result, err := r.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error deleting session %s: %v", sessionID, err))
		return err
	}

	if result == 0 {
		logrus.Debug(fmt.Sprintf("Session %s not found for deletion", sessionID))
		return nil
	}

	return nil
}
