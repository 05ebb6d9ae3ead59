package assistant

import "EditorialAssistant/pkg/nlp"

type ChatRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=1000"`
	SessionID string `json:"session_id" validate:"omitempty,max=64"`
}

type SessionState struct {
	LastTitle string `json:"last_title"`
	LastCity  string `json:"last_city"`
}

type ChatResponse struct {
	Reply      string       `json:"reply"`
	Intent     nlp.Intent   `json:"intent"`
	Confidence float64      `json:"confidence"`
	Slots      nlp.Slots    `json:"slots"`
	SessionID  string       `json:"session_id"`
	Session    SessionState `json:"session"`
}

type ClassifyRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=1000"`
	SessionID string `json:"session_id" validate:"omitempty,max=64"`
}

type ClassifyResponse struct {
	Intent     nlp.Intent `json:"intent"`
	Confidence float64    `json:"confidence"`
	Slots      nlp.Slots  `json:"slots"`
}
