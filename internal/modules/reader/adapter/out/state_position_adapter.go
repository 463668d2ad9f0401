package out

import (
	"context"

	readerout "lector/internal/modules/reader/port/out"
	sessionin "lector/internal/modules/session/port/in"
)

// StatePositionAdapter surfaces the persisted reading position so that
// opening a document resumes at the saved page.
type StatePositionAdapter struct {
	session sessionin.Usecase
}

func NewStatePositionAdapter(session sessionin.Usecase) readerout.PositionPort {
	return &StatePositionAdapter{session: session}
}

func (a *StatePositionAdapter) Position(ctx context.Context, documentID string) (int, bool) {
	state, err := a.session.GetState(ctx, documentID)
	if err != nil || state.Page <= 0 {
		return 0, false
	}
	return state.Page, true
}
