package domain

import (
	"fmt"
	"time"
)

const (
	ZoomDefault = 100
	ZoomMin     = 50
	ZoomMax     = 400
	ZoomStep    = 10
)

// ZoomPresets are the zoom levels offered for direct selection. Values
// outside the clamp range are brought back inside when applied.
var ZoomPresets = []int{25, 50, 75, 100, 125, 150, 200, 300, 400}

type ZoomMode string

const (
	ZoomModeCustom   ZoomMode = "custom"
	ZoomModeFitWidth ZoomMode = "fit-width"
	ZoomModeFitPage  ZoomMode = "fit-page"
)

func (m ZoomMode) Validate() error {
	switch m {
	case ZoomModeCustom, ZoomModeFitWidth, ZoomModeFitPage:
		return nil
	default:
		return fmt.Errorf("unsupported zoom mode %q", string(m))
	}
}

// ReadingState is the per-document view state that survives restarts.
type ReadingState struct {
	DocumentID string    `json:"document_id"`
	Page       int       `json:"page"`
	Zoom       int       `json:"zoom"`
	ZoomMode   ZoomMode  `json:"zoom_mode"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewReadingState(documentID string) ReadingState {
	return ReadingState{
		DocumentID: documentID,
		Page:       1,
		Zoom:       ZoomDefault,
		ZoomMode:   ZoomModeCustom,
	}
}

func (s *ReadingState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// SetZoom sets an explicit zoom percentage and switches to custom mode.
func (s *ReadingState) SetZoom(zoom int) {
	s.Zoom = clampZoom(zoom)
	s.ZoomMode = ZoomModeCustom
}

func (s *ReadingState) ZoomIn() {
	s.SetZoom(s.Zoom + ZoomStep)
}

func (s *ReadingState) ZoomOut() {
	s.SetZoom(s.Zoom - ZoomStep)
}

// ApplyPreset selects one of the preset zoom levels. The chosen value still
// goes through the clamp, so the 25% preset lands on ZoomMin.
func (s *ReadingState) ApplyPreset(preset int) error {
	for _, p := range ZoomPresets {
		if p == preset {
			s.SetZoom(p)
			return nil
		}
	}
	return fmt.Errorf("unsupported zoom preset %d", preset)
}

func (s *ReadingState) SetZoomMode(mode ZoomMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	s.ZoomMode = mode
	return nil
}

func clampZoom(zoom int) int {
	if zoom < ZoomMin {
		return ZoomMin
	}
	if zoom > ZoomMax {
		return ZoomMax
	}
	return zoom
}
