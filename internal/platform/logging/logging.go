package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	hclog "github.com/hashicorp/go-hclog"
)

// New returns a named logger appending to the given file. A logger that
// discards everything is returned when the file cannot be opened so that
// logging never takes the application down.
func New(name, path string) hclog.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return discard(name)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discard(name)
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: f,
		Level:  hclog.Info,
	})
}

func discard(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Name: name, Output: io.Discard, Level: hclog.NoLevel})
}

const sanitizeThreshold = 20

// Sanitize redacts user-selected text before it reaches the log file. Only
// the length may be recorded, never the content.
func Sanitize(text string) string {
	if len(text) <= sanitizeThreshold {
		return "[REDACTED]"
	}
	return fmt.Sprintf("[REDACTED: %d chars]", len(text))
}
