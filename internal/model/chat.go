package model

import "time"

// Chat is built per request and never stored. The HTTP layer decides which
// fields each endpoint exposes.
type Chat struct {
	ID        string
	Title     string
	CreatedAt time.Time
	Messages  []Message
}

// Message is a single chat message. Role is optional.
type Message struct {
	ChatID    string
	Content   string
	Role      string
	Timestamp time.Time
}
