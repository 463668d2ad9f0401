package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"lector/internal/modules/session/domain"
	sessionout "lector/internal/modules/session/port/out"
	"lector/internal/platform/markdown"
	"lector/internal/platform/slug"
)

// SessionLogStore writes one markdown note per finished session into a
// dated directory tree.
type SessionLogStore struct {
	libraryPath string
}

func NewSessionLogStore(libraryPath string) sessionout.SessionStore {
	return &SessionLogStore{libraryPath: libraryPath}
}

func (s *SessionLogStore) Save(_ context.Context, session domain.Session) (string, error) {
	date := session.StartedAt
	dir := filepath.Join(s.libraryPath, "sessions", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("150405"), slug.Make(session.DocumentTitle))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version":   domain.SchemaVersion,
		"id":               session.ID,
		"document_id":      session.DocumentID,
		"started_at":       session.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		"ended_at":         session.EndedAt.Format("2006-01-02T15:04:05Z07:00"),
		"duration_minutes": session.DurationMin,
		"goal":             session.Goal,
		"outcome":          session.Outcome,
		"start_page":       session.StartPage,
		"end_page":         session.EndPage,
		"pages_read":       session.PagesRead,
	}
	body := fmt.Sprintf("# Session %s\n\n- Document: [[%s]]\n- Duration: %d minutes\n- Pages: %d-%d (%d read)\n\n## Goal\n\n%s\n\n## Outcome\n\n%s\n",
		session.ID, session.DocumentTitle, session.DurationMin, session.StartPage, session.EndPage, session.PagesRead, session.Goal, session.Outcome)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}
