package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"lector/internal/modules/session/domain"
	sessionout "lector/internal/modules/session/port/out"
	apperrors "lector/internal/platform/errors"
)

// FileStateStore keeps one JSON file per document under the state
// directory. State is machine-owned and rewritten whole on every change.
type FileStateStore struct {
	stateDir string
}

func NewFileStateStore(stateDir string) sessionout.StateStore {
	return &FileStateStore{stateDir: stateDir}
}

func (s *FileStateStore) Load(_ context.Context, documentID string) (domain.ReadingState, error) {
	payload, err := os.ReadFile(s.path(documentID))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ReadingState{}, apperrors.ErrNotFound
		}
		return domain.ReadingState{}, fmt.Errorf("read reading state: %w", err)
	}
	state := domain.ReadingState{}
	if err := json.Unmarshal(payload, &state); err != nil {
		return domain.ReadingState{}, fmt.Errorf("decode reading state: %w", err)
	}
	if state.DocumentID == "" {
		state.DocumentID = documentID
	}
	return state, nil
}

func (s *FileStateStore) Save(_ context.Context, state domain.ReadingState) error {
	if err := os.MkdirAll(s.stateDir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal reading state: %w", err)
	}
	if err := os.WriteFile(s.path(state.DocumentID), payload, 0o644); err != nil {
		return fmt.Errorf("write reading state: %w", err)
	}
	return nil
}

func (s *FileStateStore) path(documentID string) string {
	return filepath.Join(s.stateDir, documentID+".json")
}
