package models

import (
	"time"
)

// ChatMessage is a single entry in an assistant chat transcript. Transcripts
// are append-only and ordered by append time.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}
