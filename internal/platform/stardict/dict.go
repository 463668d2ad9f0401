package stardict

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	errInvalidType   = errors.New("invalid data type")
	errOffsetTooBig  = errors.New("article offset too large")
	errTruncatedData = errors.New("truncated article data")
)

// DataType is the type of one data segment in an article. Lower case types
// are NUL-terminated strings; upper case types are 32-bit size-prefixed
// blobs.
type DataType byte

const (
	UTFTextType          = DataType('m')
	LocaleTextType       = DataType('l')
	PangoTextType        = DataType('g')
	PhoneticType         = DataType('t')
	XDXFType             = DataType('x')
	YinBiaoOrKataType    = DataType('y')
	PowerWordType        = DataType('p')
	MediaWikiType        = DataType('w')
	HTMLType             = DataType('h')
	WordNetType          = DataType('n')
	ResourceFileListType = DataType('r')
	WavType              = DataType('W')
	PictureType          = DataType('P')
	ExperimentalType     = DataType('X')
)

func (t DataType) valid() bool {
	switch t {
	case UTFTextType, LocaleTextType, PangoTextType, PhoneticType, XDXFType,
		YinBiaoOrKataType, PowerWordType, MediaWikiType, HTMLType,
		WordNetType, ResourceFileListType, WavType, PictureType,
		ExperimentalType:
		return true
	}
	return false
}

// Data is one typed segment of an article.
type Data struct {
	Type DataType
	Data []byte
}

// Article is the full decoded data for one dictionary entry.
type Article struct {
	Data []Data
}

// Dict reads articles out of a .dict file.
type Dict struct {
	r                io.ReaderAt
	sametypesequence []DataType
}

// NewDict returns a Dict over r. When sametypesequence is non-empty it
// fixes the segment types for every article and the type bytes are omitted
// from the file.
func NewDict(r io.ReaderAt, sametypesequence []DataType) (*Dict, error) {
	for _, t := range sametypesequence {
		if !t.valid() {
			return nil, fmt.Errorf("%w: %q", errInvalidType, byte(t))
		}
	}
	return &Dict{r: r, sametypesequence: sametypesequence}, nil
}

// Article reads and decodes the article for the given index entry.
func (d *Dict) Article(e IndexEntry) (*Article, error) {
	if e.Offset > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", errOffsetTooBig, e.Offset)
	}
	b := make([]byte, e.Size)
	if _, err := d.r.ReadAt(b, int64(e.Offset)); err != nil {
		return nil, fmt.Errorf("reading article: %w", err)
	}

	var segments []Data
	if len(d.sametypesequence) > 0 {
		for _, t := range d.sametypesequence {
			var data []byte
			if isStringType(t) {
				i := bytes.IndexByte(b, 0)
				if i >= 0 {
					data = b[:i]
					b = b[i+1:]
				} else {
					// The final segment carries no terminator.
					data = b
					b = nil
				}
			} else {
				var err error
				data, b, err = readSizedSegment(b)
				if err != nil {
					return nil, err
				}
			}
			segments = append(segments, Data{Type: t, Data: data})
		}
	} else {
		for len(b) > 0 {
			t := DataType(b[0])
			if !t.valid() {
				return nil, fmt.Errorf("%w: %q", errInvalidType, b[0])
			}
			b = b[1:]
			var data []byte
			if isStringType(t) {
				i := bytes.IndexByte(b, 0)
				if i < 0 {
					data = b
					b = nil
				} else {
					data = b[:i]
					b = b[i+1:]
				}
			} else {
				var err error
				data, b, err = readSizedSegment(b)
				if err != nil {
					return nil, err
				}
			}
			segments = append(segments, Data{Type: t, Data: data})
		}
	}

	return &Article{Data: segments}, nil
}

func isStringType(t DataType) bool {
	return 'a' <= t && t <= 'z'
}

func readSizedSegment(b []byte) (data, rest []byte, err error) {
	if len(b) < 4 {
		return nil, nil, errTruncatedData
	}
	size := binary.BigEndian.Uint32(b)
	if uint64(len(b)) < 4+uint64(size) {
		return nil, nil, errTruncatedData
	}
	return b[4 : 4+size], b[4+size:], nil
}
