package supportRepository

import (
	"EditorialAssistant/internal/api/support"
	"EditorialAssistant/internal/entity"
	contextPkg "EditorialAssistant/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type TicketDB struct {
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	Email     sql.NullString `db:"email"`
	Subject   sql.NullString `db:"subject"`
	Message   sql.NullString `db:"message"`
	Status    sql.NullString `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (t TicketDB) toEntity() entity.Ticket {
	return entity.Ticket{
		ID:        t.ID.String,
		Name:      t.Name.String,
		Email:     t.Email.String,
		Subject:   t.Subject.String,
		Message:   t.Message.String,
		Status:    t.Status.String,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *ticketsRepository) CreateTicket(ctx context.Context, ticket entity.Ticket) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         ticket.ID,
		"name":       ticket.Name,
		"email":      ticket.Email,
		"subject":    ticket.Subject,
		"message":    ticket.Message,
		"status":     ticket.Status,
		"created_at": ticket.CreatedAt,
		"updated_at": ticket.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTicket, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTicket")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating ticket")
		return err
	}

	return nil
}

func (r *ticketsRepository) GetTicketByID(ctx context.Context, id string) (entity.Ticket, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row TicketDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetTicketByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTicketByID named query preparation err")
		return entity.Ticket{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"ticket_id":  id,
			}).Warn("GetTicketByID no rows found")
			return entity.Ticket{}, support.ErrTicketNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting ticket by ID")
		return entity.Ticket{}, err
	}

	return row.toEntity(), nil
}
