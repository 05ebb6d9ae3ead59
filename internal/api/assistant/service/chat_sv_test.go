package assistantService

import (
	"EditorialAssistant/internal/api/assistant"
	"EditorialAssistant/internal/api/catalog"
	"EditorialAssistant/internal/api/support"
	"EditorialAssistant/internal/entity"
	"EditorialAssistant/pkg/nlp"
	redisPkg "EditorialAssistant/pkg/redis"
	"EditorialAssistant/pkg/utils"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	detailsCalls []string
	storesCalls  [][2]string
}

func (f *fakeCatalog) GetBookDetails(_ context.Context, title string) (*catalog.BookDetailsResponse, error) {
	f.detailsCalls = append(f.detailsCalls, title)

	if !strings.EqualFold(strings.TrimSpace(title), "a abelha") {
		return nil, catalog.ErrBookNotFound
	}

	return &catalog.BookDetailsResponse{
		ID:          "01J0000000000000000000TEST",
		Title:       "A Abelha",
		Author:      "Maria Santos",
		Imprint:     "Selo Infantil",
		ReleaseDate: "01/03/2024",
		Synopsis:    "Uma abelha que descobre o mundo.",
	}, nil
}

func (f *fakeCatalog) FindStores(_ context.Context, title string, city string) (*catalog.StoresResponse, error) {
	f.storesCalls = append(f.storesCalls, [2]string{title, city})

	if !strings.EqualFold(strings.TrimSpace(title), "a abelha") {
		return nil, catalog.ErrBookNotFound
	}

	resp := &catalog.StoresResponse{
		Title:  "A Abelha",
		Stores: []string{},
		Online: []string{"Amazon"},
	}

	if strings.TrimSpace(city) != "" {
		canonical := "Florianópolis"
		resp.City = &canonical
		resp.Stores = []string{"Livraria da Ilha"}
	}

	return resp, nil
}

type fakeSupport struct {
	requests []support.CreateTicketRequest
}

func (f *fakeSupport) OpenTicket(_ context.Context, req support.CreateTicketRequest) (*support.TicketResponse, error) {
	f.requests = append(f.requests, req)
	return &support.TicketResponse{
		ID:        "TCK-20260828-AB12",
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    entity.TicketStatusOpen,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeSupport) GetTicket(_ context.Context, id string) (*support.TicketResponse, error) {
	return nil, support.ErrTicketNotFound
}

type fakeSessionStore struct {
	sessions map[string]entity.ChatSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]entity.ChatSession)}
}

func (f *fakeSessionStore) GetSession(_ context.Context, sessionID string) (entity.ChatSession, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return entity.ChatSession{}, redisPkg.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessionStore) SaveSession(_ context.Context, session entity.ChatSession, _ time.Duration) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionStore) DeleteSession(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type testHarness struct {
	svc      IAssistantService
	catalog  *fakeCatalog
	support  *fakeSupport
	sessions *fakeSessionStore
}

func newTestHarness() *testHarness {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	catalogSvc := &fakeCatalog{}
	supportSvc := &fakeSupport{}
	sessions := newFakeSessionStore()

	svc := NewAssistantService(
		logger,
		nlp.NewClassifier(logger, nil),
		catalogSvc,
		supportSvc,
		sessions,
		utils.New(),
	)

	return &testHarness{svc: svc, catalog: catalogSvc, support: supportSvc, sessions: sessions}
}

func TestChatDetailsThenCityContinuation(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	first, err := h.svc.Chat(ctx, "user-1", assistant.ChatRequest{Message: `Me fale sobre "A Abelha"`})
	require.NoError(t, err)

	assert.Equal(t, nlp.IntentDetails, first.Intent)
	assert.Equal(t, 0.98, first.Confidence)
	assert.Contains(t, first.Reply, "**Título:** A Abelha")
	assert.Contains(t, first.Reply, msgSuggestWhere)
	assert.Equal(t, "A Abelha", first.Session.LastTitle)
	require.NotEmpty(t, first.SessionID)

	second, err := h.svc.Chat(ctx, "user-1", assistant.ChatRequest{
		Message:   "E em Florianópolis?",
		SessionID: first.SessionID,
	})
	require.NoError(t, err)

	assert.Equal(t, nlp.IntentWhereToBuy, second.Intent)
	assert.Equal(t, 0.99, second.Confidence)
	assert.Contains(t, second.Reply, "**Onde comprar — A Abelha**")
	assert.Contains(t, second.Reply, "Livraria da Ilha")
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, "Florianópolis", second.Session.LastCity)

	require.Len(t, h.catalog.storesCalls, 1)
	assert.Equal(t, [2]string{"A Abelha", "Florianópolis"}, h.catalog.storesCalls[0])
}

func TestChatTitleSticksAcrossTurns(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	first, err := h.svc.Chat(ctx, "user-1", assistant.ChatRequest{Message: `Quero detalhes de "A Abelha"`})
	require.NoError(t, err)

	second, err := h.svc.Chat(ctx, "user-1", assistant.ChatRequest{
		Message:   "Onde compro?",
		SessionID: first.SessionID,
	})
	require.NoError(t, err)

	assert.Equal(t, nlp.IntentWhereToBuy, second.Intent)
	require.Len(t, h.catalog.storesCalls, 1)
	assert.Equal(t, "A Abelha", h.catalog.storesCalls[0][0])
	assert.Equal(t, "A Abelha", second.Session.LastTitle)
}

func TestChatWhereToBuyWithoutAnyTitle(t *testing.T) {
	h := newTestHarness()

	resp, err := h.svc.Chat(context.Background(), "user-1", assistant.ChatRequest{Message: "Onde compro?"})
	require.NoError(t, err)

	assert.Equal(t, msgAskTitle, resp.Reply)
	assert.Empty(t, h.catalog.storesCalls)
}

func TestChatUnknownTitle(t *testing.T) {
	h := newTestHarness()

	resp, err := h.svc.Chat(context.Background(), "user-1", assistant.ChatRequest{Message: `Me fale sobre "Livro Fantasma"`})
	require.NoError(t, err)

	assert.Equal(t, msgBookNotFound, resp.Reply)
	assert.Empty(t, resp.Session.LastTitle)
}

func TestChatOpensTicketWithFullPayload(t *testing.T) {
	h := newTestHarness()

	resp, err := h.svc.Chat(context.Background(), "user-1", assistant.ChatRequest{
		Message: "Abrir ticket: nome=Ana Silva, email=ana@exemplo.com, assunto=Erro no site, mensagem=O carrinho não abre",
	})
	require.NoError(t, err)

	assert.Equal(t, nlp.IntentSupport, resp.Intent)
	assert.Equal(t, "Ticket aberto com sucesso (ID: TCK-20260828-AB12). Status: open.", resp.Reply)

	require.Len(t, h.support.requests, 1)
	assert.Equal(t, "Ana Silva", h.support.requests[0].Name)
	assert.Equal(t, "ana@exemplo.com", h.support.requests[0].Email)
}

func TestChatTicketMissingFields(t *testing.T) {
	h := newTestHarness()

	resp, err := h.svc.Chat(context.Background(), "user-1", assistant.ChatRequest{
		Message: "abra um chamado 'Pedido não chegou'",
	})
	require.NoError(t, err)

	assert.Equal(t, nlp.IntentSupport, resp.Intent)
	assert.Contains(t, resp.Reply, "Para abrir o ticket, preciso de:")
	assert.Contains(t, resp.Reply, "nome")
	assert.Contains(t, resp.Reply, "e-mail")
	assert.Contains(t, resp.Reply, "mensagem")
	assert.NotContains(t, resp.Reply, "assunto")
	assert.Empty(t, h.support.requests)
}

func TestChatEmptyMessageRejected(t *testing.T) {
	h := newTestHarness()

	_, err := h.svc.Chat(context.Background(), "user-1", assistant.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, assistant.ErrEmptyMessage)
}

func TestChatSessionOwnership(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	first, err := h.svc.Chat(ctx, "user-1", assistant.ChatRequest{Message: `Me fale sobre "A Abelha"`})
	require.NoError(t, err)

	_, err = h.svc.Chat(ctx, "user-2", assistant.ChatRequest{
		Message:   "E em Florianópolis?",
		SessionID: first.SessionID,
	})
	assert.ErrorIs(t, err, assistant.ErrSessionNotOwned)
}

func TestClearSession(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	first, err := h.svc.Chat(ctx, "user-1", assistant.ChatRequest{Message: `Me fale sobre "A Abelha"`})
	require.NoError(t, err)

	require.NoError(t, h.svc.ClearSession(ctx, "user-1", first.SessionID))

	// The memory is gone: the continuation no longer resolves a title.
	err = h.svc.ClearSession(ctx, "user-1", first.SessionID)
	assert.ErrorIs(t, err, assistant.ErrSessionNotFound)
}

func TestClassifyDoesNotWriteSession(t *testing.T) {
	h := newTestHarness()
	ctx := context.Background()

	resp, err := h.svc.Classify(ctx, assistant.ClassifyRequest{Message: `Onde comprar "A Abelha" em São Paulo?`})
	require.NoError(t, err)

	assert.Equal(t, nlp.IntentWhereToBuy, resp.Intent)
	assert.Equal(t, 0.95, resp.Confidence)
	assert.Equal(t, "A Abelha", nlp.StringValue(resp.Slots.Title))
	assert.Equal(t, "São Paulo", nlp.StringValue(resp.Slots.City))
	assert.Empty(t, h.sessions.sessions)
	assert.Empty(t, h.catalog.storesCalls)
}
