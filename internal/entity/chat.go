package entity

import (
	"time"
)

// ChatSession is the conversational memory for one assistant session.
// LastTitle sticks once set; only an explicit session clear removes it.
type ChatSession struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	LastTitle    string    `json:"last_title"`
	LastCity     string    `json:"last_city"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}
