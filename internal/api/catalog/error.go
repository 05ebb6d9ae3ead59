package catalog

import "EditorialAssistant/pkg/response"

var (
	ErrBookNotFound    = response.NewError(404, "book not found in catalog")
	ErrTitleRequired   = response.NewError(400, "book title is required")
	ErrInvalidBookData = response.NewError(400, "invalid book data")
)
