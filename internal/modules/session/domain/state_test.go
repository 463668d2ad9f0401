package domain_test

import (
	"testing"

	"lector/internal/modules/session/domain"
)

func TestNewReadingStateDefaults(t *testing.T) {
	t.Parallel()
	state := domain.NewReadingState("doc-1")
	if state.Page != 1 {
		t.Fatalf("page = %d, want 1", state.Page)
	}
	if state.Zoom != domain.ZoomDefault {
		t.Fatalf("zoom = %d, want %d", state.Zoom, domain.ZoomDefault)
	}
	if state.ZoomMode != domain.ZoomModeCustom {
		t.Fatalf("mode = %s", state.ZoomMode)
	}
}

func TestSetZoomClamps(t *testing.T) {
	t.Parallel()
	state := domain.NewReadingState("doc-1")

	state.SetZoom(25)
	if state.Zoom != domain.ZoomMin {
		t.Fatalf("zoom below minimum should clamp to %d, got %d", domain.ZoomMin, state.Zoom)
	}
	state.SetZoom(1000)
	if state.Zoom != domain.ZoomMax {
		t.Fatalf("zoom above maximum should clamp to %d, got %d", domain.ZoomMax, state.Zoom)
	}
}

func TestZoomStepping(t *testing.T) {
	t.Parallel()
	state := domain.NewReadingState("doc-1")

	state.ZoomIn()
	if state.Zoom != 110 {
		t.Fatalf("zoom = %d, want 110", state.Zoom)
	}
	state.ZoomOut()
	state.ZoomOut()
	if state.Zoom != 90 {
		t.Fatalf("zoom = %d, want 90", state.Zoom)
	}

	state.SetZoom(domain.ZoomMin)
	state.ZoomOut()
	if state.Zoom != domain.ZoomMin {
		t.Fatalf("zoom out at minimum should stay at %d, got %d", domain.ZoomMin, state.Zoom)
	}
	state.SetZoom(domain.ZoomMax)
	state.ZoomIn()
	if state.Zoom != domain.ZoomMax {
		t.Fatalf("zoom in at maximum should stay at %d, got %d", domain.ZoomMax, state.Zoom)
	}
}

func TestZoomModeResetOnExplicitZoom(t *testing.T) {
	t.Parallel()
	state := domain.NewReadingState("doc-1")
	if err := state.SetZoomMode(domain.ZoomModeFitWidth); err != nil {
		t.Fatalf("set fit-width: %v", err)
	}
	state.SetZoom(150)
	if state.ZoomMode != domain.ZoomModeCustom {
		t.Fatalf("explicit zoom should switch back to custom, got %s", state.ZoomMode)
	}
	if err := state.SetZoomMode("stretch"); err == nil {
		t.Fatal("invalid zoom mode should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	t.Parallel()
	state := domain.NewReadingState("doc-1")
	if err := state.SetZoomMode(domain.ZoomModeFitPage); err != nil {
		t.Fatalf("set fit-page: %v", err)
	}

	if err := state.ApplyPreset(150); err != nil {
		t.Fatalf("apply preset: %v", err)
	}
	if state.Zoom != 150 || state.ZoomMode != domain.ZoomModeCustom {
		t.Fatalf("preset should set zoom 150 in custom mode, got %d %s", state.Zoom, state.ZoomMode)
	}

	if err := state.ApplyPreset(25); err != nil {
		t.Fatalf("apply smallest preset: %v", err)
	}
	if state.Zoom != domain.ZoomMin {
		t.Fatalf("25%% preset should clamp to %d, got %d", domain.ZoomMin, state.Zoom)
	}

	if err := state.ApplyPreset(33); err == nil {
		t.Fatal("unlisted preset should fail")
	}
}

func TestSetPageFloorsAtOne(t *testing.T) {
	t.Parallel()
	state := domain.NewReadingState("doc-1")
	state.SetPage(-5)
	if state.Page != 1 {
		t.Fatalf("page = %d, want 1", state.Page)
	}
	state.SetPage(42)
	if state.Page != 42 {
		t.Fatalf("page = %d, want 42", state.Page)
	}
}
