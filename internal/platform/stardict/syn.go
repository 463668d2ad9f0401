package stardict

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
)

// SynEntry is a .syn file entry: a synonym word and the .idx position of the
// entry it aliases.
type SynEntry struct {
	Word      string
	WordIndex uint32
}

// SynScanner scans a .syn file. Entries are a NUL-terminated word followed
// by a big-endian 32-bit index into the .idx file.
type SynScanner struct {
	s *bufio.Scanner
}

func NewSynScanner(r io.Reader) *SynScanner {
	scanner := &SynScanner{s: bufio.NewScanner(bufio.NewReader(r))}
	scanner.s.Split(splitSyn)
	return scanner
}

func (s *SynScanner) Scan() bool {
	return s.s.Scan()
}

func (s *SynScanner) Err() error {
	return s.s.Err()
}

func (s *SynScanner) Entry() SynEntry {
	var e SynEntry
	b := s.s.Bytes()
	if i := bytes.IndexByte(b, 0); i >= 0 {
		e.Word = string(b[:i])
		e.WordIndex = binary.BigEndian.Uint32(b[i+1:])
	}
	return e
}

func splitSyn(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		tokenSize := i + 1 + 4
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}
	if atEOF {
		return 0, nil, fmt.Errorf("truncated synonym entry")
	}
	return 0, nil, nil
}

type foldedSyn struct {
	folded string
	entry  SynEntry
}

// Syn is an in-memory synonym index sorted by folded word.
type Syn struct {
	entries []foldedSyn
}

// NewSyn reads all synonym entries from the scanner into a sorted index.
func NewSyn(s *SynScanner) (*Syn, error) {
	syn := &Syn{}
	for s.Scan() {
		e := s.Entry()
		syn.entries = append(syn.entries, foldedSyn{folded: Fold(e.Word), entry: e})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning synonym index: %w", err)
	}
	sort.SliceStable(syn.entries, func(i, j int) bool {
		return syn.entries[i].folded < syn.entries[j].folded
	})
	return syn, nil
}

// Search returns every synonym whose folded word equals the folded query.
func (syn *Syn) Search(query string) []SynEntry {
	folded := Fold(query)
	i := sort.Search(len(syn.entries), func(i int) bool {
		return syn.entries[i].folded >= folded
	})
	var out []SynEntry
	for ; i < len(syn.entries) && syn.entries[i].folded == folded; i++ {
		out = append(out, syn.entries[i].entry)
	}
	return out
}
