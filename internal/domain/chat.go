package domain

import "time"

// Sender marks who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is one line of the coach conversation.
type ChatMessage struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
