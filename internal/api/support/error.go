package support

import "EditorialAssistant/pkg/response"

var (
	ErrTicketNotFound    = response.NewError(404, "ticket not found")
	ErrCreateTicket      = response.NewError(500, "failed to create ticket")
	ErrInvalidTicketData = response.NewError(400, "invalid ticket data")
)
