package dto

type ProviderInfo struct {
	Name    string
	Version string
	Enabled bool
	Path    string
}

type DoctorResult struct {
	Name            string
	ChecksumValid   bool
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}

type LookupInput struct {
	Provider string
	Term     string
}

type EntryOutput struct {
	Headword   string
	Dictionary string
	Phonetic   string
	Definition string
}

type LookupOutput struct {
	Term    string
	Entries []EntryOutput
}
