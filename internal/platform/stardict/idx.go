package stardict

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
)

// ErrInvalidOffsetBits indicates an unsupported idxoffsetbits value.
var ErrInvalidOffsetBits = errors.New("invalid idxoffsetbits")

// IndexEntry is a single .idx file entry: a search word and the location of
// its article in the .dict file.
type IndexEntry struct {
	Word   string
	Offset uint64
	Size   uint32
}

// IdxScanner scans a .idx file from start to end. Entries are encoded as a
// NUL-terminated word followed by a big-endian offset (32 or 64 bits) and a
// big-endian 32-bit size.
type IdxScanner struct {
	s          *bufio.Scanner
	offsetBits int
}

func NewIdxScanner(r io.Reader, offsetBits int) (*IdxScanner, error) {
	if offsetBits != 32 && offsetBits != 64 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOffsetBits, offsetBits)
	}
	scanner := &IdxScanner{
		s:          bufio.NewScanner(bufio.NewReader(r)),
		offsetBits: offsetBits,
	}
	scanner.s.Split(scanner.split)
	return scanner, nil
}

// Scan advances to the next index entry. It returns false when the index is
// exhausted or an error occurred.
func (s *IdxScanner) Scan() bool {
	return s.s.Scan()
}

func (s *IdxScanner) Err() error {
	return s.s.Err()
}

// Entry decodes the current index entry.
func (s *IdxScanner) Entry() IndexEntry {
	var e IndexEntry
	b := s.s.Bytes()
	if i := bytes.IndexByte(b, 0); i >= 0 {
		e.Word = string(b[:i])
		if s.offsetBits == 64 {
			e.Offset = binary.BigEndian.Uint64(b[i+1:])
		} else {
			e.Offset = uint64(binary.BigEndian.Uint32(b[i+1:]))
		}
		e.Size = binary.BigEndian.Uint32(b[i+1+s.offsetBits/8:])
	}
	return e
}

func (s *IdxScanner) split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		tokenSize := i + 1 + s.offsetBits/8 + 4
		if len(data) >= tokenSize {
			return tokenSize, data[:tokenSize], nil
		}
	}
	if atEOF {
		return 0, nil, fmt.Errorf("truncated index entry")
	}
	return 0, nil, nil
}

type foldedEntry struct {
	folded string
	entry  IndexEntry
}

// Index is an in-memory search index over .idx entries, sorted by the
// folded form of each word so that lookups are case- and
// whitespace-insensitive.
type Index struct {
	// ordered keeps .idx file order; synonym entries address it by position.
	ordered []IndexEntry
	entries []foldedEntry
}

// NewIndex reads all entries from the scanner into a sorted index.
func NewIndex(s *IdxScanner) (*Index, error) {
	idx := &Index{}
	for s.Scan() {
		e := s.Entry()
		idx.ordered = append(idx.ordered, e)
		idx.entries = append(idx.entries, foldedEntry{folded: Fold(e.Word), entry: e})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scanning index: %w", err)
	}
	sort.SliceStable(idx.entries, func(i, j int) bool {
		return idx.entries[i].folded < idx.entries[j].folded
	})
	return idx, nil
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.ordered)
}

// At returns the entry at .idx file position i. Synonym files reference
// entries by this position.
func (idx *Index) At(i int) (IndexEntry, bool) {
	if i < 0 || i >= len(idx.ordered) {
		return IndexEntry{}, false
	}
	return idx.ordered[i], true
}

// Search returns every entry whose folded word equals the folded query.
func (idx *Index) Search(query string) []IndexEntry {
	folded := Fold(query)
	i := sort.Search(len(idx.entries), func(i int) bool {
		return idx.entries[i].folded >= folded
	})
	var out []IndexEntry
	for ; i < len(idx.entries) && idx.entries[i].folded == folded; i++ {
		out = append(out, idx.entries[i].entry)
	}
	return out
}
