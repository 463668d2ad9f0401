// Package stardict reads StarDict dictionaries.
//
// A dictionary is a set of sibling files sharing a base name:
//
//  1. a .ifo file with dictionary metadata
//  2. a .idx file (optionally gzipped) mapping words to article offsets
//  3. a .dict file (optionally dictzip compressed) with article data
//  4. an optional .syn file linking synonyms to index entries
//
// The format is described at
// https://github.com/huzheng001/stardict-3/blob/master/dict/doc/StarDictFileFormat
package stardict

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// Dictionary is an open StarDict dictionary.
type Dictionary struct {
	ifoPath string

	version          string
	bookname         string
	wordcount        int64
	idxoffsetbits    int64
	sametypesequence []DataType

	index *Index
	syn   *Syn
	dict  *Dict

	dictFile *os.File
}

// Open opens the dictionary rooted at the given .ifo file path. The index
// and synonym files are loaded eagerly; article data is read on demand.
func Open(path string) (*Dictionary, error) {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".ifo" {
		return nil, fmt.Errorf("bad extension: %v", filepath.Ext(path))
	}

	d := &Dictionary{ifoPath: path, idxoffsetbits: 32}

	ifoFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	ifo, err := ParseIfo(ifoFile)
	ifoFile.Close()
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	d.version = ifo.Value("version")
	switch d.version {
	case "2.4.2", "3.0.0":
	default:
		return nil, fmt.Errorf("invalid version: %v", d.version)
	}

	d.bookname = ifo.Value("bookname")
	if d.bookname == "" {
		return nil, fmt.Errorf("missing bookname")
	}
	d.wordcount, err = strconv.ParseInt(ifo.Value("wordcount"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad wordcount: %w", err)
	}
	if _, err := strconv.ParseInt(ifo.Value("idxfilesize"), 10, 64); err != nil {
		return nil, fmt.Errorf("bad idxfilesize: %w", err)
	}
	if bits := ifo.Value("idxoffsetbits"); bits != "" && d.version == "3.0.0" {
		d.idxoffsetbits, err = strconv.ParseInt(bits, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid idxoffsetbits: %w", err)
		}
	}
	for _, r := range ifo.Value("sametypesequence") {
		d.sametypesequence = append(d.sametypesequence, DataType(r))
	}

	if err := d.openIndex(); err != nil {
		return nil, err
	}
	if err := d.openSyn(); err != nil {
		return nil, err
	}
	if err := d.openDict(); err != nil {
		return nil, err
	}

	return d, nil
}

// OpenAll opens every dictionary found under dir. Successfully opened
// dictionaries are returned along with any per-dictionary errors.
func OpenAll(dir string) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	err := filepath.WalkDir(dir, func(path string, info fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if info.IsDir() || strings.ToLower(filepath.Ext(info.Name())) != ".ifo" {
			return nil
		}
		d, err := Open(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		dicts = append(dicts, d)
		return nil
	})
	if err != nil {
		errs = append(errs, err)
	}
	return dicts, errs
}

// Bookname returns the dictionary name.
func (d *Dictionary) Bookname() string {
	return d.bookname
}

// WordCount returns the declared word count.
func (d *Dictionary) WordCount() int64 {
	return d.wordcount
}

// Version returns the dictionary format version.
func (d *Dictionary) Version() string {
	return d.version
}

// Path returns the path of the dictionary's .ifo file.
func (d *Dictionary) Path() string {
	return d.ifoPath
}

// Search returns the decoded articles for every index entry matching the
// query under folding, including synonym hits.
func (d *Dictionary) Search(query string) ([]IndexEntry, []*Article, error) {
	entries := d.index.Search(query)
	if d.syn != nil {
		for _, s := range d.syn.Search(query) {
			if e, ok := d.index.At(int(s.WordIndex)); ok {
				entries = append(entries, e)
			}
		}
	}

	var articles []*Article
	for _, e := range entries {
		a, err := d.dict.Article(e)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", d.bookname, err)
		}
		articles = append(articles, a)
	}
	return entries, articles, nil
}

// Close releases the underlying .dict file handle.
func (d *Dictionary) Close() error {
	if d.dictFile == nil {
		return nil
	}
	err := d.dictFile.Close()
	d.dictFile = nil
	return err
}

func (d *Dictionary) openIndex() error {
	idxPath, err := findSibling(d.ifoPath, []string{".idx", ".idx.gz"})
	if err != nil {
		return fmt.Errorf("no index found for %q", d.ifoPath)
	}
	f, err := os.Open(idxPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", idxPath, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.ToLower(filepath.Ext(idxPath)) == ".gz" {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("opening %q: %w", idxPath, err)
		}
		defer zr.Close()
		r = zr
	}

	s, err := NewIdxScanner(r, int(d.idxoffsetbits))
	if err != nil {
		return err
	}
	d.index, err = NewIndex(s)
	if err != nil {
		return fmt.Errorf("reading %q: %w", idxPath, err)
	}
	return nil
}

func (d *Dictionary) openSyn() error {
	synPath, err := findSibling(d.ifoPath, []string{".syn", ".syn.gz", ".syn.dz"})
	if err != nil {
		// The synonym file is optional.
		return nil
	}
	f, err := os.Open(synPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", synPath, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(synPath)) {
	case ".gz", ".dz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("opening %q: %w", synPath, err)
		}
		defer zr.Close()
		r = zr
	}

	d.syn, err = NewSyn(NewSynScanner(r))
	if err != nil {
		return fmt.Errorf("reading %q: %w", synPath, err)
	}
	return nil
}

func (d *Dictionary) openDict() error {
	dictPath, err := findSibling(d.ifoPath, []string{".dict", ".dict.dz"})
	if err != nil {
		return fmt.Errorf("no dict found for %q", d.ifoPath)
	}
	f, err := os.Open(dictPath)
	if err != nil {
		return fmt.Errorf("opening %q: %w", dictPath, err)
	}

	var r io.ReaderAt = f
	if strings.ToLower(filepath.Ext(dictPath)) == ".dz" {
		zr, err := dictzip.NewReader(f)
		if err != nil {
			f.Close()
			return fmt.Errorf("opening %q: %w", dictPath, err)
		}
		r = zr
	}

	d.dictFile = f
	d.dict, err = NewDict(r, d.sametypesequence)
	if err != nil {
		f.Close()
		d.dictFile = nil
		return err
	}
	return nil
}

// findSibling locates a sibling file of the .ifo with one of the given
// extensions, trying each in order in lower and upper case.
func findSibling(ifoPath string, exts []string) (string, error) {
	base := strings.TrimSuffix(ifoPath, filepath.Ext(ifoPath))
	for _, ext := range exts {
		for _, candidate := range []string{base + ext, base + strings.ToUpper(ext)} {
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", errors.New("not found")
}
