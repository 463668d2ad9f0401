package domain

import "time"

const SchemaVersion = 1

type ActiveSession struct {
	SessionID     string    `json:"session_id"`
	DocumentID    string    `json:"document_id"`
	DocumentTitle string    `json:"document_title"`
	StartedAt     time.Time `json:"started_at"`
	StartPage     int       `json:"start_page"`
	Goal          string    `json:"goal"`
}

type Session struct {
	ID            string
	DocumentID    string
	DocumentTitle string
	StartedAt     time.Time
	EndedAt       time.Time
	DurationMin   int
	Goal          string
	Outcome       string
	StartPage     int
	EndPage       int
	PagesRead     int
}
