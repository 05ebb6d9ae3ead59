package supportService

import (
	"EditorialAssistant/internal/api/support"
	supportRepository "EditorialAssistant/internal/api/support/repository"
	"EditorialAssistant/internal/entity"
	"EditorialAssistant/pkg/utils"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTickets struct {
	created []entity.Ticket
}

func (f *fakeTickets) CreateTicket(_ context.Context, ticket entity.Ticket) error {
	f.created = append(f.created, ticket)
	return nil
}

func (f *fakeTickets) GetTicketByID(_ context.Context, id string) (entity.Ticket, error) {
	for _, t := range f.created {
		if t.ID == id {
			return t, nil
		}
	}
	return entity.Ticket{}, support.ErrTicketNotFound
}

type fakeSupportRepo struct {
	tickets   *fakeTickets
	committed bool
}

func (f *fakeSupportRepo) NewClient(_ bool) (supportRepository.Client, error) {
	return supportRepository.Client{
		Tickets:  f.tickets,
		Commit:   func() error { f.committed = true; return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestSupportService() (ISupportService, *fakeSupportRepo) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := &fakeSupportRepo{tickets: &fakeTickets{}}
	return NewSupportService(logger, repo, utils.New()), repo
}

func TestOpenTicket(t *testing.T) {
	svc, repo := newTestSupportService()

	ticket, err := svc.OpenTicket(context.Background(), support.CreateTicketRequest{
		Name:    "Ana Silva",
		Email:   "ana@exemplo.com",
		Subject: "Erro no site",
		Message: "O carrinho não abre",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^TCK-\d{8}-[A-Z0-9]{4}$`, ticket.ID)
	assert.Equal(t, entity.TicketStatusOpen, ticket.Status)
	assert.Equal(t, "Ana Silva", ticket.Name)

	require.Len(t, repo.tickets.created, 1)
	assert.True(t, repo.committed)
}

func TestGetTicket(t *testing.T) {
	svc, _ := newTestSupportService()
	ctx := context.Background()

	created, err := svc.OpenTicket(ctx, support.CreateTicketRequest{
		Name:    "Ana Silva",
		Email:   "ana@exemplo.com",
		Subject: "Erro no site",
		Message: "O carrinho não abre",
	})
	require.NoError(t, err)

	found, err := svc.GetTicket(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetTicket(ctx, "TCK-00000000-XXXX")
	assert.ErrorIs(t, err, support.ErrTicketNotFound)
}
