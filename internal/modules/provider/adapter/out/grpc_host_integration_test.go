package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	providerout "lector/internal/modules/provider/adapter/out"
	"lector/internal/modules/provider/domain"
)

func TestGRPCHostIntegrationReferenceProvider(t *testing.T) {
	binPath, checksum := buildReferenceProvider(t)
	manifest := domain.Manifest{
		Name:    "reference",
		Version: "1.0.0",
		Binary:  binPath,
		SHA256:  checksum,
		Enabled: true,
	}

	host := providerout.NewGRPCHost()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "reference" {
		t.Fatalf("unexpected metadata name: %s", metadata.Name)
	}
	if len(metadata.Dictionaries) == 0 {
		t.Fatalf("expected at least one dictionary")
	}

	entries, err := host.Lookup(ctx, manifest, "tea")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(entries) != 1 || entries[0].Headword != "tea" {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	missing, err := host.Lookup(ctx, manifest, "absent")
	if err != nil {
		t.Fatalf("lookup miss: %v", err)
	}
	if len(missing) != 0 {
		t.Fatalf("expected no entries, got %+v", missing)
	}
}

func buildReferenceProvider(t *testing.T) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	binPath := filepath.Join(tmp, "reference-provider")
	cmd := exec.Command("go", "build", "-o", binPath, "./providers/reference")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build reference provider: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built provider: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
