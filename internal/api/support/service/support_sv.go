package supportService

import (
	"EditorialAssistant/internal/api/support"
	"EditorialAssistant/internal/entity"
	contextPkg "EditorialAssistant/pkg/context"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *supportService) OpenTicket(ctx context.Context, req support.CreateTicketRequest) (*support.TicketResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	client, err := s.supportRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create support repository client")
		return nil, err
	}
	defer client.Rollback()

	now := time.Now()
	ticketID, err := s.utils.NewTicketID(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ticket ID")
		return nil, support.ErrCreateTicket
	}

	ticket := entity.Ticket{
		ID:        ticketID,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    entity.TicketStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := client.Tickets.CreateTicket(ctx, ticket); err != nil {
		return nil, support.ErrCreateTicket
	}

	if err := client.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit ticket creation")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"ticket_id":  ticket.ID,
	}).Info("Ticket opened")

	return toTicketResponse(ticket), nil
}

func (s *supportService) GetTicket(ctx context.Context, id string) (*support.TicketResponse, error) {
	client, err := s.supportRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	ticket, err := client.Tickets.GetTicketByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toTicketResponse(ticket), nil
}

func toTicketResponse(ticket entity.Ticket) *support.TicketResponse {
	return &support.TicketResponse{
		ID:        ticket.ID,
		Name:      ticket.Name,
		Email:     ticket.Email,
		Subject:   ticket.Subject,
		Message:   ticket.Message,
		Status:    ticket.Status,
		CreatedAt: ticket.CreatedAt,
	}
}
