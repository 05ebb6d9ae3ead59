package support

import "time"

type CreateTicketRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=128"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=2,max=256"`
	Message string `json:"message" validate:"required,min=2"`
}

type TicketResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
