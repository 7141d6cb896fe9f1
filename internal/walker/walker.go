package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize is the maximum page size to process (4 MB).
const DefaultMaxFileSize int64 = 4 << 20

// markdownExts are the file extensions treated as pages.
var markdownExts = []string{".md", ".markdown"}

// Page holds metadata about a single Markdown page discovered during traversal.
type Page struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the docs directory.
	Size        int64  // File size in bytes.
	ContentHash string // SHA-256 hex digest of the file content.
}

// WalkerConfig controls the behaviour of the Walk function.
type WalkerConfig struct {
	RootDir     string   // Docs directory to walk.
	Include     []string // Glob patterns — only matching pages are included.
	Exclude     []string // Glob patterns — matching pages are excluded.
	MaxFileSize int64    // Pages larger than this are skipped (0 = use default).
}

// Walk traverses the docs directory rooted at config.RootDir and returns
// every Markdown page that passes filtering, in lexical path order.
func Walk(config WalkerConfig) ([]Page, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}

	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var pages []Page

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		name := d.Name()

		// Skip default-excluded directories.
		if d.IsDir() {
			if path != root && shouldExcludeDir(name) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() || !IsMarkdown(name) {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		// Apply user-defined include/exclude filters.
		if !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() > maxSize {
			return nil
		}

		hash, err := hashFile(path)
		if err != nil {
			return err
		}

		pages = append(pages, Page{
			Path:        path,
			RelPath:     filepath.ToSlash(relPath),
			Size:        info.Size(),
			ContentHash: hash,
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	return pages, nil
}

// IsMarkdown reports whether name has a Markdown extension.
func IsMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range markdownExts {
		if ext == e {
			return true
		}
	}
	return false
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
