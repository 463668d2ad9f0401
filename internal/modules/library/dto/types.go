package dto

type AddDocumentInput struct {
	Path    string
	Format  string
	Title   string
	Authors []string
	Tags    []string
}

type UpdateProgressInput struct {
	DocumentID string
	Page       int
	PageCount  int
	SessionID  string
}

type ReindexInput struct{}

type DocumentOutput struct {
	ID       string
	Title    string
	Format   string
	Percent  float64
	Page     int
	NotePath string
}

type DocumentDetailOutput struct {
	ID          string
	Title       string
	Format      string
	Authors     []string
	FilePath    string
	NotePath    string
	Status      string
	Percent     float64
	CurrentPage int
	PageCount   int
	Tags        []string
}
