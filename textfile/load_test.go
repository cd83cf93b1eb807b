package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(name, []byte(content), 0644); err != nil {
		t.Fatal(err.Error())
	}
	return name
}

func TestLoadSmallFile(t *testing.T) {
	name := writeTempFile(t, "alpha\nbeta\ngamma\n")
	v, err := Load(name)
	if err != nil {
		t.Fatal(err.Error())
	}
	if v.Len() != 3 {
		t.Fatalf("expected 3 lines, have %d", v.Len())
	}
	if v.MustAt(0) != "alpha" || v.MustAt(2) != "gamma" {
		t.Errorf("unexpected line contents")
	}
}

func TestLoadWithoutTrailingNewline(t *testing.T) {
	name := writeTempFile(t, "one\ntwo")
	v, err := Load(name)
	if err != nil {
		t.Fatal(err.Error())
	}
	if v.Len() != 2 || v.MustAt(1) != "two" {
		t.Errorf("expected 2 lines ending in %q", "two")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	name := writeTempFile(t, "")
	v, err := Load(name)
	if err != nil {
		t.Fatal(err.Error())
	}
	if v.Len() != 0 {
		t.Errorf("expected no lines, have %d", v.Len())
	}
}

func TestLoadLargeFileKeepsOrder(t *testing.T) {
	var sb strings.Builder
	const n = 20000
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "line %d\n", i)
	}
	name := writeTempFile(t, sb.String())
	v, err := Load(name)
	if err != nil {
		t.Fatal(err.Error())
	}
	if v.Len() != n {
		t.Fatalf("expected %d lines, have %d", n, v.Len())
	}
	for _, i := range []int{0, 1, 9999, n - 1} {
		if v.MustAt(i) != fmt.Sprintf("line %d", i) {
			t.Errorf("unexpected line at index %d: %q", i, v.MustAt(i))
		}
	}
	if err := v.Check(); err != nil {
		t.Errorf("integrity check failed: %v", err)
	}
}

func TestLoadAsyncProgress(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 5000; i++ {
		fmt.Fprintf(&sb, "row-%d\n", i)
	}
	name := writeTempFile(t, sb.String())
	loading, err := LoadAsync(name)
	if err != nil {
		t.Fatal(err.Error())
	}
	ch, ok := loading.Subscribe()
	if ok {
		go func() {
			for range ch {
				// drain progress broadcasts
			}
		}()
	}
	v, err := loading.Wait()
	if err != nil {
		t.Fatal(err.Error())
	}
	if v.Len() != 5000 {
		t.Fatalf("expected 5000 lines, have %d", v.Len())
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "no-such-file")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Errorf("expected an error for a directory")
	}
}
