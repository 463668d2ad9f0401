package out

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/k3a/html2text"

	"lector/internal/modules/reader/domain"
	readerout "lector/internal/modules/reader/port/out"
)

// EPUBReader treats each spine item of an EPUB as one page. Chapter markup
// is flattened to plain text.
type EPUBReader struct{}

func NewEPUBReader() readerout.PageSource {
	return &EPUBReader{}
}

type container struct {
	Rootfiles []struct {
		FullPath string `xml:"full-path,attr"`
	} `xml:"rootfiles>rootfile"`
}

type packageDoc struct {
	Manifest struct {
		Items []struct {
			ID   string `xml:"id,attr"`
			Href string `xml:"href,attr"`
		} `xml:"item"`
	} `xml:"manifest"`
	Spine struct {
		ItemRefs []struct {
			IDRef string `xml:"idref,attr"`
		} `xml:"itemref"`
	} `xml:"spine"`
}

func (r *EPUBReader) ReadPage(_ context.Context, filePath string, page int) (domain.Page, int, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return domain.Page{}, 0, fmt.Errorf("open epub: %w", err)
	}
	defer zr.Close()

	opfPath, err := rootfilePath(&zr.Reader)
	if err != nil {
		return domain.Page{}, 0, err
	}
	raw, err := readZipFile(&zr.Reader, opfPath)
	if err != nil {
		return domain.Page{}, 0, err
	}
	var pkg packageDoc
	if err := xml.Unmarshal(raw, &pkg); err != nil {
		return domain.Page{}, 0, fmt.Errorf("parse opf: %w", err)
	}

	hrefs := make(map[string]string, len(pkg.Manifest.Items))
	for _, item := range pkg.Manifest.Items {
		hrefs[item.ID] = item.Href
	}
	var chapters []string
	for _, ref := range pkg.Spine.ItemRefs {
		if href, ok := hrefs[ref.IDRef]; ok {
			chapters = append(chapters, path.Join(path.Dir(opfPath), href))
		}
	}
	total := len(chapters)
	if total == 0 {
		return domain.Page{}, 0, fmt.Errorf("epub has an empty spine")
	}
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}

	markup, err := readZipFile(&zr.Reader, chapters[page-1])
	if err != nil {
		return domain.Page{}, total, err
	}
	text := strings.TrimSpace(html2text.HTML2Text(string(markup)))
	return domain.Page{Number: page, Text: text}, total, nil
}

func rootfilePath(zr *zip.Reader) (string, error) {
	raw, err := readZipFile(zr, "META-INF/container.xml")
	if err != nil {
		return "", err
	}
	var c container
	if err := xml.Unmarshal(raw, &c); err != nil {
		return "", fmt.Errorf("parse container.xml: %w", err)
	}
	if len(c.Rootfiles) == 0 || c.Rootfiles[0].FullPath == "" {
		return "", fmt.Errorf("epub container has no rootfile")
	}
	return c.Rootfiles[0].FullPath, nil
}

func readZipFile(zr *zip.Reader, name string) ([]byte, error) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s in epub: %w", name, err)
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s in epub: %w", name, err)
	}
	return raw, nil
}
