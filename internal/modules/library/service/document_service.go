package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"lector/internal/modules/library/domain"
	libraryout "lector/internal/modules/library/port/out"
	"lector/internal/platform/clock"
	"lector/internal/platform/id"
	"lector/internal/platform/slug"
)

type DocumentService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     libraryout.DocumentStore
	projector libraryout.DocumentIndexProjector
}

func NewDocumentService(clock clock.Clock, idGen id.Generator, store libraryout.DocumentStore, projector libraryout.DocumentIndexProjector) *DocumentService {
	return &DocumentService{clock: clock, idGen: idGen, store: store, projector: projector}
}

func (s *DocumentService) AddDocument(ctx context.Context, format domain.Format, filePath, title string, authors, tags []string) (domain.Document, string, error) {
	if strings.TrimSpace(filePath) == "" {
		return domain.Document{}, "", fmt.Errorf("file path is required")
	}
	if format == "" {
		detected, err := domain.DetectFormat(filePath)
		if err != nil {
			return domain.Document{}, "", err
		}
		format = detected
	}
	if err := format.Validate(); err != nil {
		return domain.Document{}, "", err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}
	now := s.clock.Now()
	document := domain.Document{
		ID:        s.idGen.New(),
		Format:    format,
		Title:     title,
		Authors:   authors,
		FilePath:  filePath,
		Slug:      slug.Make(title),
		Tags:      tags,
		Status:    "reading",
		AddedAt:   now,
		UpdatedAt: now,
	}
	if err := document.Validate(); err != nil {
		return domain.Document{}, "", err
	}
	path, err := s.store.Save(ctx, domain.DocumentNote{Document: document})
	if err != nil {
		return domain.Document{}, "", err
	}
	document.NotePath = path
	if err := s.projector.UpsertDocument(ctx, document); err != nil {
		return domain.Document{}, "", err
	}
	return document, path, nil
}

func (s *DocumentService) UpdateProgress(ctx context.Context, documentID string, page, pageCount int, sessionID string) (domain.Document, error) {
	note, err := s.store.FindByID(ctx, documentID)
	if err != nil {
		return domain.Document{}, err
	}
	if page < 1 {
		page = 1
	}
	if pageCount > 0 {
		note.Document.PageCount = pageCount
	}
	if sessionID != "" {
		note.Document.LastSessionID = sessionID
	}
	if note.Document.PageCount > 0 && page > note.Document.PageCount {
		page = note.Document.PageCount
	}
	note.Document.CurrentPage = page
	note.Document.ProgressPct = note.Document.Progress()
	note.Document.UpdatedAt = s.clock.Now()
	if _, err := s.store.Save(ctx, note); err != nil {
		return domain.Document{}, err
	}
	if err := s.projector.UpsertDocument(ctx, note.Document); err != nil {
		return domain.Document{}, err
	}
	return note.Document, nil
}

func (s *DocumentService) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	notes, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Document, 0, len(notes))
	for _, note := range notes {
		out = append(out, note.Document)
	}
	return out, nil
}

func (s *DocumentService) GetDocument(ctx context.Context, documentID string) (domain.Document, error) {
	note, err := s.store.FindByID(ctx, documentID)
	if err != nil {
		return domain.Document{}, err
	}
	return note.Document, nil
}

func (s *DocumentService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	notes, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	for _, note := range notes {
		if err := s.projector.UpsertDocument(ctx, note.Document); err != nil {
			return err
		}
	}
	return nil
}
