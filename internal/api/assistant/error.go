package assistant

import "EditorialAssistant/pkg/response"

var (
	ErrSessionNotFound = response.NewError(404, "chat session not found")
	ErrSessionNotOwned = response.NewError(403, "chat session does not belong to user")
	ErrEmptyMessage    = response.NewError(400, "message must not be empty")
)
