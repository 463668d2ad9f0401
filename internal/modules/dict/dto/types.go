package dto

import "time"

type LookupInput struct {
	Term string
}

type EntryOutput struct {
	Headword   string
	Dictionary string
	Phonetic   string
	Definition string
}

type LookupOutput struct {
	Term      string
	Matched   string
	Entries   []EntryOutput
	FromCache bool
}

type DictionaryOutput struct {
	Name      string
	Source    string
	WordCount int64
}

type HistoryOutput struct {
	Term     string
	Matched  string
	Hits     int
	LookedUp time.Time
}
