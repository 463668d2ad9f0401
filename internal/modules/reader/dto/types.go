package dto

type OpenDocumentInput struct {
	DocumentID string
	Page       int
}

type OpenResult struct {
	DocumentID string
	Title      string
	Format     string
	Page       int
	TotalPages int
	Content    string
	Percent    float64
}

type PageTextInput struct {
	DocumentID string
	Page       int
}

type PageTextOutput struct {
	Page       int
	TotalPages int
	Text       string
}

type WordAtInput struct {
	DocumentID string
	Page       int
	X          float64
	Y          float64
}

type WordAtOutput struct {
	Word     string
	SpanText string
}
