package out

import (
	"context"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/k3a/html2text"

	"lector/internal/modules/dict/domain"
	dictout "lector/internal/modules/dict/port/out"
	"lector/internal/platform/stardict"
)

// noiseHeaders mark trailing sections that commercial dictionary exports
// append after the senses. Everything from the first such line on is cut.
var noiseHeaders = map[string]bool{
	"Word Origin":    true,
	"Word Family":    true,
	"Extra Examples": true,
	"More About":     true,
	"Culture":        true,
	"Synonyms":       true,
}

// StarDictProvider serves definitions from every StarDict dictionary found
// under a directory.
type StarDictProvider struct {
	dicts  []*stardict.Dictionary
	logger hclog.Logger
}

func NewStarDictProvider(dir string, logger hclog.Logger) *StarDictProvider {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	dicts, errs := stardict.OpenAll(dir)
	for _, err := range errs {
		logger.Warn("skipping unreadable dictionary", "error", err)
	}
	for _, d := range dicts {
		logger.Info("dictionary loaded", "bookname", d.Bookname(), "words", d.WordCount())
	}
	return &StarDictProvider{dicts: dicts, logger: logger}
}

var _ dictout.Provider = (*StarDictProvider)(nil)

func (p *StarDictProvider) Name() string {
	return "stardict"
}

func (p *StarDictProvider) Lookup(ctx context.Context, headword string) ([]domain.Entry, error) {
	var out []domain.Entry
	for _, d := range p.dicts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, articles, err := d.Search(headword)
		if err != nil {
			p.logger.Warn("dictionary search failed", "bookname", d.Bookname(), "error", err)
			continue
		}
		for i, article := range articles {
			phonetic, definition := renderArticle(article)
			if definition == "" {
				continue
			}
			out = append(out, domain.Entry{
				Term:       headword,
				Headword:   entries[i].Word,
				Dictionary: d.Bookname(),
				Phonetic:   phonetic,
				Definition: definition,
			})
		}
	}
	return out, nil
}

func (p *StarDictProvider) Dictionaries(context.Context) ([]domain.DictionaryInfo, error) {
	out := make([]domain.DictionaryInfo, 0, len(p.dicts))
	for _, d := range p.dicts {
		out = append(out, domain.DictionaryInfo{
			Name:      d.Bookname(),
			Source:    d.Path(),
			WordCount: d.WordCount(),
		})
	}
	return out, nil
}

func (p *StarDictProvider) Close() {
	for _, d := range p.dicts {
		if err := d.Close(); err != nil {
			p.logger.Warn("closing dictionary failed", "bookname", d.Bookname(), "error", err)
		}
	}
}

// renderArticle flattens a decoded article into a phonetic transcription
// and plain definition text.
func renderArticle(article *stardict.Article) (string, string) {
	var phonetic string
	var parts []string
	for _, segment := range article.Data {
		switch segment.Type {
		case stardict.PhoneticType, stardict.YinBiaoOrKataType:
			if phonetic == "" {
				phonetic = "/" + strings.TrimSpace(string(segment.Data)) + "/"
			}
		case stardict.HTMLType:
			text := strings.TrimSpace(html2text.HTML2Text(string(segment.Data)))
			if text != "" {
				parts = append(parts, text)
			}
		case stardict.UTFTextType, stardict.LocaleTextType, stardict.XDXFType,
			stardict.PangoTextType, stardict.MediaWikiType, stardict.WordNetType:
			text := strings.TrimSpace(string(segment.Data))
			if text != "" {
				parts = append(parts, text)
			}
		default:
			// Media and resource segments have no text rendering.
		}
	}
	return phonetic, truncateNoise(strings.Join(parts, "\n"))
}

func truncateNoise(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if noiseHeaders[strings.TrimSpace(line)] {
			lines = lines[:i]
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
