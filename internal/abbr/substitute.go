package abbr

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Markup shared between the build-time output and the page script.
const (
	MarkerClass = "mlabbr"
	PayloadAttr = "data-mlabbr"
	LineClass   = "mlabbr-line"
	LevelPrefix = "mlabbr-l"
)

// fenceRe matches fenced code blocks. Fences are not anchored to line starts
// and may span lines.
var fenceRe = regexp.MustCompile("(?s)```.*?```|~~~.*?~~~")

// Substituter rewrites abbreviation keys in page text into tooltip markers.
// It is safe for concurrent use once built.
type Substituter struct {
	index   *Index
	keys    []string
	pattern *regexp.Regexp
}

// NewSubstituter prepares a substituter for the keys in idx. The alternation
// lists longer keys first so a key that prefixes another never shadows it.
func NewSubstituter(idx *Index) *Substituter {
	s := &Substituter{index: idx, keys: idx.MatchOrder()}
	if len(s.keys) == 0 {
		return s
	}
	quoted := make([]string, len(s.keys))
	for i, k := range s.keys {
		quoted[i] = regexp.QuoteMeta(k)
	}
	s.pattern = regexp.MustCompile(strings.Join(quoted, "|"))
	return s
}

// Substitute returns page with every bounded key occurrence outside fenced
// code replaced by a marker. An empty index returns page unchanged.
func (s *Substituter) Substitute(page string) string {
	out, _ := s.SubstituteStats(page)
	return out
}

// SubstituteStats is Substitute that also reports how many markers were
// emitted.
func (s *Substituter) SubstituteStats(page string) (string, int) {
	if s.pattern == nil {
		return page, 0
	}

	var (
		b     strings.Builder
		count int
		last  int
	)
	b.Grow(len(page))
	for _, loc := range fenceRe.FindAllStringIndex(page, -1) {
		count += s.replacePlain(&b, page[last:loc[0]])
		b.WriteString(page[loc[0]:loc[1]])
		last = loc[1]
	}
	count += s.replacePlain(&b, page[last:])
	return b.String(), count
}

// replacePlain writes text to b with keys replaced and returns the number of
// markers written.
func (s *Substituter) replacePlain(b *strings.Builder, text string) int {
	var n, pos, written int
	for pos < len(text) {
		loc := s.pattern.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		key, end, ok := s.matchAt(text, start)
		if !ok {
			_, size := utf8.DecodeRuneInString(text[start:])
			pos = start + size
			continue
		}
		b.WriteString(text[written:start])
		if s.writeMarker(b, key) {
			n++
		}
		written, pos = end, end
	}
	b.WriteString(text[written:])
	return n
}

// matchAt returns the longest key starting at start whose neighbours are not
// ASCII letters or digits. Shorter keys are tried when a longer one fails
// the trailing boundary.
func (s *Substituter) matchAt(text string, start int) (string, int, bool) {
	if start > 0 && isASCIIAlnum(text[start-1]) {
		return "", 0, false
	}
	rest := text[start:]
	for _, k := range s.keys {
		if !strings.HasPrefix(rest, k) {
			continue
		}
		end := start + len(k)
		if end < len(text) && isASCIIAlnum(text[end]) {
			continue
		}
		return k, end, true
	}
	return "", 0, false
}

// writeMarker writes the marker for key, or the bare key if the index has no
// definition for it.
func (s *Substituter) writeMarker(b *strings.Builder, key string) bool {
	doc, ok := s.index.Get(key)
	if !ok || doc.HTML == "" {
		b.WriteString(key)
		return false
	}
	b.WriteString(`<span class="` + MarkerClass + `" ` + PayloadAttr + `="`)
	b.WriteString(html.EscapeString(doc.HTML))
	b.WriteString(`">`)
	b.WriteString(key)
	b.WriteString(`</span>`)
	return true
}

// isASCIIAlnum reports whether c is an ASCII letter or digit. Neighbouring
// non-ASCII characters, CJK included, never block a match.
func isASCIIAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
