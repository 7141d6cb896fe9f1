package site

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/ziadkadry99/abbrtip/internal/walker"
)

// maxSearchContent caps the text stored per page in the search index.
const maxSearchContent = 2000

// SearchEntry represents a single searchable page in the documentation.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex builds the client search index from raw page sources,
// keyed by page RelPath.
func BuildSearchIndex(pages []walker.Page, sources map[string]string) []SearchEntry {
	entries := make([]SearchEntry, 0, len(pages))
	for _, p := range pages {
		entries = append(entries, parseMarkdownForSearch(p.RelPath, sources[p.RelPath]))
	}
	return entries
}

// parseMarkdownForSearch extracts title, summary, and content from Markdown.
func parseMarkdownForSearch(relPath, src string) SearchEntry {
	entry := SearchEntry{Path: mdPathToHTML(relPath)}

	var kept []string
	foundTitle := false
	inFence := false
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if trimmed == "" {
			continue
		}
		if !inFence && !foundTitle && strings.HasPrefix(trimmed, "# ") {
			entry.Title = strings.TrimPrefix(trimmed, "# ")
			foundTitle = true
			continue
		}
		if !inFence && entry.Summary == "" && !strings.HasPrefix(trimmed, "#") {
			entry.Summary = trimmed
		}
		kept = append(kept, trimmed)
	}

	content := strings.Join(kept, " ")
	if len(content) > maxSearchContent {
		content = truncateUTF8(content, maxSearchContent)
	}
	entry.Content = content

	if entry.Title == "" {
		entry.Title = relPath
	}
	return entry
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	for n > 0 && n < len(s) && s[n]&0xC0 == 0x80 {
		n--
	}
	return s[:n]
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
