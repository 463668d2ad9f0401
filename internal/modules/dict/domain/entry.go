package domain

import "time"

// Entry is one definition of a term as served by a single dictionary.
type Entry struct {
	Term       string
	Headword   string
	Dictionary string
	Phonetic   string
	Definition string
}

// LookupResult is everything found for a lookup across all dictionaries.
type LookupResult struct {
	Term      string
	Matched   string
	Entries   []Entry
	FromCache bool
	LookedUp  time.Time
}

// Found reports whether any dictionary had a definition.
func (r LookupResult) Found() bool {
	return len(r.Entries) > 0
}

// DictionaryInfo describes one available dictionary.
type DictionaryInfo struct {
	Name      string
	Source    string
	WordCount int64
}

// HistoryItem is one recorded lookup.
type HistoryItem struct {
	Term     string
	Matched  string
	Hits     int
	LookedUp time.Time
}
