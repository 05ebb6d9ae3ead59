package assistantService

import (
	"EditorialAssistant/internal/api/assistant"
	"EditorialAssistant/internal/api/catalog"
	"EditorialAssistant/internal/api/support"
	"EditorialAssistant/internal/entity"
	contextPkg "EditorialAssistant/pkg/context"
	"EditorialAssistant/pkg/nlp"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Chat runs one conversational turn: classify the utterance against the
// session snapshot, resolve carried-over slots, execute the intent and
// persist the updated session. The session is written exactly once per turn.
func (s *assistantService) Chat(ctx context.Context, userID string, req assistant.ChatRequest) (*assistant.ChatResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(req.Message) == "" {
		return nil, assistant.ErrEmptyMessage
	}

	session, err := s.loadOrCreateSession(ctx, userID, req.SessionID)
	if err != nil {
		return nil, err
	}

	snapshot := nlp.Session{LastTitle: session.LastTitle, LastCity: session.LastCity}
	result := s.classifier.Classify(ctx, req.Message, snapshot)
	result = nlp.Resolve(result, req.Message, snapshot)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": session.ID,
		"intent":     result.Intent,
		"confidence": result.Confidence,
	}).Info("Utterance classified")

	var reply string
	switch result.Intent {
	case nlp.IntentWhereToBuy:
		reply, err = s.handleWhereToBuy(ctx, &session, result)
	case nlp.IntentSupport:
		reply, err = s.handleSupport(ctx, result)
	default:
		reply, err = s.handleDetails(ctx, &session, result)
	}
	if err != nil {
		return nil, err
	}

	session.LastActivity = time.Now()
	if err := s.sessionStore.SaveSession(ctx, session, s.sessionTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": session.ID,
			"error":      err.Error(),
		}).Error("Failed to persist chat session")
	}

	return &assistant.ChatResponse{
		Reply:      reply,
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Slots:      result.Slots,
		SessionID:  session.ID,
		Session: assistant.SessionState{
			LastTitle: session.LastTitle,
			LastCity:  session.LastCity,
		},
	}, nil
}

// Classify exposes the engine's verdict without executing the intent or
// writing the session.
func (s *assistantService) Classify(ctx context.Context, req assistant.ClassifyRequest) (*assistant.ClassifyResponse, error) {
	snapshot := nlp.Session{}
	if req.SessionID != "" {
		session, err := s.sessionStore.GetSession(ctx, req.SessionID)
		if err == nil {
			snapshot = nlp.Session{LastTitle: session.LastTitle, LastCity: session.LastCity}
		}
	}

	result := s.classifier.Classify(ctx, req.Message, snapshot)
	result = nlp.Resolve(result, req.Message, snapshot)

	return &assistant.ClassifyResponse{
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Slots:      result.Slots,
	}, nil
}

func (s *assistantService) handleDetails(ctx context.Context, session *entity.ChatSession, result nlp.Result) (string, error) {
	title := nlp.StringValue(result.Slots.Title)
	if title == "" {
		return msgAskTitle, nil
	}

	details, err := s.catalogService.GetBookDetails(ctx, title)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) || errors.Is(err, catalog.ErrTitleRequired) {
			return msgBookNotFound, nil
		}
		return "", err
	}

	session.LastTitle = details.Title

	return formatBookDetails(details) + "\n" + msgSuggestWhere, nil
}

func (s *assistantService) handleWhereToBuy(ctx context.Context, session *entity.ChatSession, result nlp.Result) (string, error) {
	title := nlp.StringValue(result.Slots.Title)
	if title == "" {
		return msgAskTitle, nil
	}

	city := nlp.StringValue(result.Slots.City)

	stores, err := s.catalogService.FindStores(ctx, title, city)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) || errors.Is(err, catalog.ErrTitleRequired) {
			return msgStoresNotFound, nil
		}
		return "", err
	}

	session.LastTitle = stores.Title
	if stores.City != nil && *stores.City != "" {
		session.LastCity = *stores.City
	}

	return formatWhereToBuy(stores), nil
}

func (s *assistantService) handleSupport(ctx context.Context, result nlp.Result) (string, error) {
	name := nlp.StringValue(result.Slots.Name)
	email := nlp.StringValue(result.Slots.Email)
	subject := nlp.StringValue(result.Slots.Subject)
	message := nlp.StringValue(result.Slots.Message)

	var missing []string
	if name == "" {
		missing = append(missing, "nome")
	}
	if email == "" {
		missing = append(missing, "e-mail")
	}
	if subject == "" {
		missing = append(missing, "assunto")
	}
	if message == "" {
		missing = append(missing, "mensagem")
	}
	if len(missing) > 0 {
		return formatMissingTicketFields(missing), nil
	}

	ticket, err := s.supportService.OpenTicket(ctx, support.CreateTicketRequest{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		if errors.Is(err, support.ErrCreateTicket) {
			return msgTicketFailed, nil
		}
		return "", err
	}

	return formatTicketOpened(ticket), nil
}
