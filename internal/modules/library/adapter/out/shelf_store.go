package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"lector/internal/modules/library/domain"
	libraryout "lector/internal/modules/library/port/out"
	apperrors "lector/internal/platform/errors"
	"lector/internal/platform/markdown"
)

// ShelfStore persists each document as a markdown note with YAML
// frontmatter. The notes are the source of truth; the SQLite index is a
// rebuildable projection.
type ShelfStore struct {
	shelfPath string
}

func NewShelfStore(shelfPath string) libraryout.DocumentStore {
	return &ShelfStore{shelfPath: shelfPath}
}

func (s *ShelfStore) Save(_ context.Context, note domain.DocumentNote) (string, error) {
	document := note.Document
	notePath := filepath.Join(s.shelfPath, document.Slug+".md")
	if err := os.MkdirAll(filepath.Dir(notePath), 0o755); err != nil {
		return "", fmt.Errorf("create shelf directory: %w", err)
	}

	body := note.Body
	if existing, err := os.ReadFile(notePath); err == nil {
		_, existingBody, splitErr := markdown.SplitFrontmatter(string(existing))
		if splitErr == nil && strings.TrimSpace(body) == "" {
			body = existingBody
		}
	}
	if strings.TrimSpace(body) == "" {
		body = "## Notes\n\n## Vocabulary\n\n## Quotes\n"
	}

	rendered, err := markdown.RenderFrontmatter(toFrontmatter(document), body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(notePath, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write shelf note: %w", err)
	}
	return notePath, nil
}

func (s *ShelfStore) FindByID(ctx context.Context, id string) (domain.DocumentNote, error) {
	notes, err := s.List(ctx)
	if err != nil {
		return domain.DocumentNote{}, err
	}
	for _, note := range notes {
		if note.Document.ID == id {
			return note, nil
		}
	}
	return domain.DocumentNote{}, apperrors.ErrNotFound
}

func (s *ShelfStore) List(_ context.Context) ([]domain.DocumentNote, error) {
	glob := filepath.Join(s.shelfPath, "*.md")
	matches, err := filepath.Glob(glob)
	if err != nil {
		return nil, fmt.Errorf("glob shelf notes: %w", err)
	}
	sort.Strings(matches)

	out := make([]domain.DocumentNote, 0, len(matches))
	for _, path := range matches {
		content, readErr := os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", path, readErr)
		}
		meta, body, splitErr := markdown.SplitFrontmatter(string(content))
		if splitErr != nil {
			return nil, fmt.Errorf("parse %s: %w", path, splitErr)
		}
		document, convErr := fromFrontmatter(meta, path)
		if convErr != nil {
			return nil, fmt.Errorf("decode document %s: %w", path, convErr)
		}
		out = append(out, domain.DocumentNote{Document: document, Body: body})
	}
	return out, nil
}

func toFrontmatter(document domain.Document) map[string]any {
	return map[string]any{
		"schema_version":   domain.SchemaVersion,
		"id":               document.ID,
		"format":           string(document.Format),
		"title":            document.Title,
		"authors":          document.Authors,
		"file_path":        document.FilePath,
		"tags":             document.Tags,
		"status":           document.Status,
		"page_count":       document.PageCount,
		"current_page":     document.CurrentPage,
		"progress_percent": document.ProgressPct,
		"added_at":         document.AddedAt.Format(time.RFC3339),
		"updated_at":       document.UpdatedAt.Format(time.RFC3339),
		"last_session_id":  document.LastSessionID,
	}
}

func fromFrontmatter(meta map[string]any, notePath string) (domain.Document, error) {
	document := domain.Document{
		ID:            asString(meta["id"]),
		Format:        domain.Format(asString(meta["format"])),
		Title:         asString(meta["title"]),
		Authors:       asStringSlice(meta["authors"]),
		FilePath:      asString(meta["file_path"]),
		NotePath:      notePath,
		Tags:          asStringSlice(meta["tags"]),
		Status:        asString(meta["status"]),
		PageCount:     int(asFloat(meta["page_count"])),
		CurrentPage:   int(asFloat(meta["current_page"])),
		ProgressPct:   asFloat(meta["progress_percent"]),
		LastSessionID: asString(meta["last_session_id"]),
	}
	document.Slug = strings.TrimSuffix(filepath.Base(notePath), filepath.Ext(notePath))
	addedAt, _ := time.Parse(time.RFC3339, asString(meta["added_at"]))
	updatedAt, _ := time.Parse(time.RFC3339, asString(meta["updated_at"]))
	document.AddedAt = addedAt
	document.UpdatedAt = updatedAt
	if err := document.Validate(); err != nil {
		return domain.Document{}, err
	}
	return document, nil
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	case float32:
		return float64(x)
	case string:
		var out float64
		_, _ = fmt.Sscanf(x, "%f", &out)
		return out
	default:
		return 0
	}
}

func asStringSlice(v any) []string {
	if v == nil {
		return nil
	}
	switch x := v.(type) {
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return nil
	}
}
