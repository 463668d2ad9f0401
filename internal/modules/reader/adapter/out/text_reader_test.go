package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextReaderPaginates(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	for i := 1; i <= 100; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewTextReader()
	page, total, err := r.ReadPage(context.Background(), path, 2)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	if !strings.HasPrefix(page.Text, "line 41") {
		t.Fatalf("page 2 should start at line 41: %q", page.Text)
	}

	page, _, err = r.ReadPage(context.Background(), path, 50)
	if err != nil {
		t.Fatalf("read past end: %v", err)
	}
	if page.Number != 3 {
		t.Fatalf("page = %d, want clamp to 3", page.Number)
	}
}
