package assistantService

import (
	"EditorialAssistant/internal/api/assistant"
	"EditorialAssistant/internal/entity"
	contextPkg "EditorialAssistant/pkg/context"
	redisPkg "EditorialAssistant/pkg/redis"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// loadOrCreateSession resumes the requested session when it exists and
// belongs to the caller; otherwise it starts a fresh one.
func (s *assistantService) loadOrCreateSession(ctx context.Context, userID string, sessionID string) (entity.ChatSession, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if sessionID != "" {
		session, err := s.sessionStore.GetSession(ctx, sessionID)
		if err == nil {
			if session.UserID != "" && session.UserID != userID {
				return entity.ChatSession{}, assistant.ErrSessionNotOwned
			}
			return session, nil
		}
		if !errors.Is(err, redisPkg.ErrSessionNotFound) {
			return entity.ChatSession{}, err
		}
	}

	now := time.Now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session ID")
		return entity.ChatSession{}, err
	}

	return entity.ChatSession{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
	}, nil
}

// ClearSession drops the conversational memory. Carry-over slots survive
// every turn until this is called or the TTL expires.
func (s *assistantService) ClearSession(ctx context.Context, userID string, sessionID string) error {
	session, err := s.sessionStore.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redisPkg.ErrSessionNotFound) {
			return assistant.ErrSessionNotFound
		}
		return err
	}

	if session.UserID != "" && session.UserID != userID {
		return assistant.ErrSessionNotOwned
	}

	return s.sessionStore.DeleteSession(ctx, sessionID)
}
