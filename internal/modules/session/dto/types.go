package dto

import "time"

type StartInput struct {
	DocumentID    string
	DocumentTitle string
	Goal          string
}

type StartOutput struct {
	SessionID  string
	DocumentID string
	StartedAt  time.Time
	StartPage  int
}

type EndInput struct {
	SessionID string
	Outcome   string
}

type EndOutput struct {
	SessionID   string
	DocumentID  string
	Path        string
	DurationMin int
	StartPage   int
	EndPage     int
	PagesRead   int
}

type ActiveSessionOutput struct {
	SessionID     string
	DocumentID    string
	DocumentTitle string
	StartedAt     time.Time
	StartPage     int
	Goal          string
}

type StateOutput struct {
	DocumentID string
	Page       int
	Zoom       int
	ZoomMode   string
}

type SetPositionInput struct {
	DocumentID string
	Page       int
}

type SetZoomInput struct {
	DocumentID string
	Zoom       int
	Mode       string
	Step       int
	Preset     int
}
