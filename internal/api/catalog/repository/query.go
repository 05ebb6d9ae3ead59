package catalogRepository

const (
	queryListBooks = `
		SELECT
			id,
			title,
			author,
			imprint,
			release_date,
			synopsis,
			created_at,
			updated_at
		FROM books
		ORDER BY title ASC
	`

	queryGetBookByID = `
		SELECT
			id,
			title,
			author,
			imprint,
			release_date,
			synopsis,
			created_at,
			updated_at
		FROM books
		WHERE id = :id
	`

	queryGetAvailabilityByBookID = `
		SELECT
			location,
			stores
		FROM book_availability
		WHERE book_id = :book_id
		ORDER BY position ASC
	`
)
