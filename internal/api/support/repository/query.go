package supportRepository

const (
	queryCreateTicket = `
		INSERT INTO tickets (
			id,
			name,
			email,
			subject,
			message,
			status,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:email,
			:subject,
			:message,
			:status,
			:created_at,
			:updated_at
		)
	`

	queryGetTicketByID = `
		SELECT
			id,
			name,
			email,
			subject,
			message,
			status,
			created_at,
			updated_at
		FROM tickets
		WHERE id = :id
	`
)
