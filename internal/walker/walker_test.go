package walker

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testdataDir returns the absolute path to testdata/sample_docs/docs.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	root := filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "sample_docs", "docs")
	abs, err := filepath.Abs(root)
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		t.Fatalf("testdata dir does not exist: %s", abs)
	}
	return abs
}

func relPaths(pages []Page) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.RelPath
	}
	return out
}

func TestWalk_AllPages(t *testing.T) {
	pages, err := Walk(WalkerConfig{RootDir: testdataDir(t)})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{"_partial.md", "drafts/wip.md", "guide/code.md", "index.md", "tax/gst.md"}
	got := relPaths(pages)
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("page[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_IncludeExclude(t *testing.T) {
	pages, err := Walk(WalkerConfig{
		RootDir: testdataDir(t),
		Include: []string{"**/*.md"},
		Exclude: []string{"**/_*.md", "**/drafts/**"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := relPaths(pages)
	want := []string{"guide/code.md", "index.md", "tax/gst.md"}
	if len(got) != len(want) {
		t.Fatalf("Walk() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("page[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalk_PageFields(t *testing.T) {
	pages, err := Walk(WalkerConfig{RootDir: testdataDir(t), Include: []string{"index.md"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(pages))
	}
	p := pages[0]
	if !filepath.IsAbs(p.Path) {
		t.Errorf("Path %q should be absolute", p.Path)
	}
	if p.Size == 0 {
		t.Error("Size should be non-zero")
	}
	if len(p.ContentHash) != 64 {
		t.Errorf("ContentHash length = %d, want 64", len(p.ContentHash))
	}
}

func TestWalk_SkipsNonMarkdownAndLargeFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "page.md"), "# ok")
	writeFile(t, filepath.Join(dir, "notes.markdown"), "# ok too")
	writeFile(t, filepath.Join(dir, "image.png"), "binary")
	writeFile(t, filepath.Join(dir, "big.md"), string(make([]byte, 2048)))
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "README.md"), "# vendored")

	pages, err := Walk(WalkerConfig{RootDir: dir, MaxFileSize: 1024})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	got := relPaths(pages)
	if len(got) != 2 || got[0] != "notes.markdown" || got[1] != "page.md" {
		t.Errorf("Walk() = %v, want [notes.markdown page.md]", got)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	if _, err := Walk(WalkerConfig{RootDir: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Error("Walk() should fail for a missing docs directory")
	}
}

func TestWalk_HashChangesWithContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.md")

	writeFile(t, path, "one")
	first, _ := Walk(WalkerConfig{RootDir: dir})
	writeFile(t, path, "two")
	second, _ := Walk(WalkerConfig{RootDir: dir})

	if first[0].ContentHash == second[0].ContentHash {
		t.Error("content hash should change when the page changes")
	}
}

func TestMatchesFilters(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"index.md", []string{"*.md"}, true},
		{"a/b/c.md", []string{"*.md"}, true},
		{"a/b/c.md", []string{"a/**"}, true},
		{"a/b/c.md", []string{"b/**"}, false},
		{"drafts/x.md", []string{"**/drafts/**"}, true},
		{"x/_p.md", []string{"**/_*.md"}, true},
	}
	for _, tt := range tests {
		if got := MatchesInclude(tt.path, tt.patterns); got != tt.want {
			t.Errorf("MatchesInclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}

	if !MatchesInclude("any.md", nil) {
		t.Error("empty include list should include everything")
	}
	if MatchesExclude("any.md", nil) {
		t.Error("empty exclude list should exclude nothing")
	}
}

func TestValidatePatterns(t *testing.T) {
	if err := ValidatePatterns([]string{"**/*.md", "docs/{a,b}/*.md"}); err != nil {
		t.Errorf("valid patterns rejected: %v", err)
	}
	if err := ValidatePatterns([]string{"[unclosed"}); err == nil {
		t.Error("malformed pattern accepted")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
