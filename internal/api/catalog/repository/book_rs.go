package catalogRepository

import (
	"EditorialAssistant/internal/api/catalog"
	"EditorialAssistant/internal/entity"
	contextPkg "EditorialAssistant/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type BookDB struct {
	ID          sql.NullString `db:"id"`
	Title       sql.NullString `db:"title"`
	Author      sql.NullString `db:"author"`
	Imprint     sql.NullString `db:"imprint"`
	ReleaseDate sql.NullString `db:"release_date"`
	Synopsis    sql.NullString `db:"synopsis"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type AvailabilityDB struct {
	Location sql.NullString `db:"location"`
	Stores   pq.StringArray `db:"stores"`
}

func (b BookDB) toEntity() entity.Book {
	return entity.Book{
		ID:          b.ID.String,
		Title:       b.Title.String,
		Author:      b.Author.String,
		Imprint:     b.Imprint.String,
		ReleaseDate: b.ReleaseDate.String,
		Synopsis:    b.Synopsis.String,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *booksRepository) ListBooks(ctx context.Context) ([]entity.Book, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var rows []BookDB
	if err := r.q.SelectContext(ctx, &rows, queryListBooks); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing books")
		return nil, err
	}

	books := make([]entity.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, row.toEntity())
	}

	return books, nil
}

func (r *booksRepository) GetBookByID(ctx context.Context, id string) (entity.Book, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row BookDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBookByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBookByID named query preparation err")
		return entity.Book{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"book_id":    id,
			}).Warn("GetBookByID no rows found")
			return entity.Book{}, catalog.ErrBookNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting book by ID")
		return entity.Book{}, err
	}

	book := row.toEntity()

	availability, err := r.getAvailability(ctx, id)
	if err != nil {
		return entity.Book{}, err
	}
	book.Availability = availability

	return book, nil
}

// getAvailability preserves the catalog's insertion order (position column)
// so city matching stays deterministic across calls.
func (r *booksRepository) getAvailability(ctx context.Context, bookID string) ([]entity.LocationAvailability, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"book_id": bookID,
	}

	query, args, err := sqlx.Named(queryGetAvailabilityByBookID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("getAvailability named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var rows []AvailabilityDB
	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting book availability")
		return nil, err
	}

	availability := make([]entity.LocationAvailability, 0, len(rows))
	for _, row := range rows {
		availability = append(availability, entity.LocationAvailability{
			Location: row.Location.String,
			Stores:   []string(row.Stores),
		})
	}

	return availability, nil
}
