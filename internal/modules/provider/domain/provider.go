package domain

import (
	"fmt"
	"regexp"
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one external lookup provider: a standalone binary
// speaking the provider RPC protocol, pinned by checksum.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Binary  string `json:"binary"`
	SHA256  string `json:"sha256"`
	Enabled bool   `json:"enabled"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("provider name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("provider version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("provider binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("provider sha256 must be lowercase 64-char hex")
	}
	return nil
}

// Metadata is what a running provider reports about itself.
type Metadata struct {
	Name         string
	Version      string
	Dictionaries []string
}

// Entry is a single definition returned by a provider.
type Entry struct {
	Headword   string
	Dictionary string
	Phonetic   string
	Definition string
}

func (e Entry) Validate() error {
	if e.Headword == "" {
		return fmt.Errorf("entry headword is required")
	}
	if e.Definition == "" {
		return fmt.Errorf("entry definition is required")
	}
	return nil
}
