package stardict

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

const ifoMagic = "StarDict's dict ifo file"

var ifoKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)

// Ifo holds the key/value metadata from a dictionary's .ifo file.
type Ifo struct {
	metadata map[string]string
}

// ParseIfo reads .ifo metadata from r. The first line must be the StarDict
// magic string and the first key must be the format version.
func ParseIfo(r io.Reader) (*Ifo, error) {
	s := bufio.NewScanner(bufio.NewReader(r))
	if !s.Scan() || s.Text() != ifoMagic {
		return nil, fmt.Errorf("bad magic data")
	}

	metadata := map[string]string{}
	i := 0
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid ifo line: %q", line)
		}
		key := strings.TrimRight(kv[0], " ")
		value := strings.TrimLeft(kv[1], " ")
		if !ifoKeyPattern.MatchString(key) {
			return nil, fmt.Errorf("invalid ifo key: %q", key)
		}
		if i == 0 && key != "version" {
			return nil, fmt.Errorf("missing version")
		}
		metadata[key] = value
		i++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading ifo: %w", err)
	}

	return &Ifo{metadata: metadata}, nil
}

func (i *Ifo) Value(key string) string {
	return i.metadata[key]
}
