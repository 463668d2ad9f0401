package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the filesystem layout derived from the library root.
type Config struct {
	LibraryPath   string
	ShelfPath     string
	DictDir       string
	StateDir      string
	ProvidersPath string
	DBPath        string
	LogPath       string
}

func New(libraryPath string) (Config, error) {
	if libraryPath == "" {
		return Config{}, fmt.Errorf("library path is required")
	}
	dictDir := os.Getenv("LECTOR_DICT_DIR")
	if dictDir == "" {
		dictDir = filepath.Join(libraryPath, "dictionaries")
	}
	return Config{
		LibraryPath:   libraryPath,
		ShelfPath:     filepath.Join(libraryPath, "shelf"),
		DictDir:       dictDir,
		StateDir:      filepath.Join(libraryPath, ".lector", "state"),
		ProvidersPath: filepath.Join(libraryPath, "providers", "providers.json"),
		DBPath:        filepath.Join(libraryPath, ".lector", "lector.db"),
		LogPath:       filepath.Join(libraryPath, ".lector", "lector.log"),
	}, nil
}

// WithDictDir overrides the dictionary directory when the flag is set.
func (c Config) WithDictDir(dir string) Config {
	if dir != "" {
		c.DictDir = dir
	}
	return c
}
