package stardict

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fixtureWord is one entry in a generated test dictionary.
type fixtureWord struct {
	word     string
	synonyms []string
	data     []Data
}

// writeFixture writes a complete dictionary (.ifo/.idx/.dict and, when any
// word has synonyms, .syn) into dir and returns the .ifo path.
func writeFixture(t *testing.T, dir, name string, words []fixtureWord, sameTypeSequence string) string {
	t.Helper()

	var dict []byte
	var idx []byte
	var syn []byte
	synCount := 0

	for i, w := range words {
		offset := len(dict)
		dict = append(dict, encodeArticle(t, w.data, sameTypeSequence)...)

		idx = append(idx, []byte(w.word)...)
		idx = append(idx, 0)
		idx = appendUint32(idx, uint32(offset))
		idx = appendUint32(idx, uint32(len(dict)-offset))

		for _, s := range w.synonyms {
			syn = append(syn, []byte(s)...)
			syn = append(syn, 0)
			syn = appendUint32(syn, uint32(i))
			synCount++
		}
	}

	base := filepath.Join(dir, name)
	mustWrite(t, base+".idx", idx)
	mustWrite(t, base+".dict", dict)
	if synCount > 0 {
		mustWrite(t, base+".syn", syn)
	}

	ifo := "StarDict's dict ifo file\n" +
		"version=2.4.2\n" +
		fmt.Sprintf("bookname=%s\n", name) +
		fmt.Sprintf("wordcount=%d\n", len(words)) +
		fmt.Sprintf("idxfilesize=%d\n", len(idx))
	if synCount > 0 {
		ifo += fmt.Sprintf("synwordcount=%d\n", synCount)
	}
	if sameTypeSequence != "" {
		ifo += fmt.Sprintf("sametypesequence=%s\n", sameTypeSequence)
	}
	mustWrite(t, base+".ifo", []byte(ifo))

	return base + ".ifo"
}

func encodeArticle(t *testing.T, segments []Data, sameTypeSequence string) []byte {
	t.Helper()
	var b []byte
	for i, d := range segments {
		typed := sameTypeSequence == ""
		if typed {
			b = append(b, byte(d.Type))
		}
		if isStringType(d.Type) {
			b = append(b, d.Data...)
			// With sametypesequence the final segment omits its terminator.
			if typed || i < len(segments)-1 {
				b = append(b, 0)
			}
		} else {
			b = appendUint32(b, uint32(len(d.Data)))
			b = append(b, d.Data...)
		}
	}
	return b
}

func appendUint32(b []byte, v uint32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return append(b, buf[:]...)
}

func mustWrite(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}
