package domain

type Page struct {
	Number int
	Text   string
}

// TextSpan is one run of text on a page with its position in page
// coordinates. X and Y locate the baseline start; W is the advance width.
type TextSpan struct {
	Text     string
	X        float64
	Y        float64
	W        float64
	FontSize float64
}

type PageLayout struct {
	Number int
	Spans  []TextSpan
}

type DocumentRef struct {
	ID          string
	Title       string
	Format      string
	FilePath    string
	NotePath    string
	CurrentPage int
	PageCount   int
	Percent     float64
}
