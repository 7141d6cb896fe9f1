package abbr

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// space is any character Unicode treats as whitespace, plus the ASCII
// information separators that also end a line in definitions files.
const space = `[\s\v\p{Z}\x{1c}-\x{1f}\x{85}]`

var (
	// blockCommentRe matches HTML comments, including ones spanning lines.
	blockCommentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	// lineCommentRe matches a line that opens a comment that never closes.
	lineCommentRe = regexp.MustCompile(`^` + space + `*<!--`)
	// headerRe matches a definition header such as "*[GST]:".
	headerRe = regexp.MustCompile(`^\*\[([^\]]+)\]` + space + `*:` + space + `*$`)
)

// Load reads a definitions file and parses it. A missing file yields an
// empty index; any other read failure is returned.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewIndex(), nil
		}
		return nil, fmt.Errorf("reading definitions %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("reading definitions %s: content is not valid UTF-8", path)
	}
	return Parse(string(data)), nil
}

// Parse builds an index from definitions text made of repeated blocks:
//
//	*[KEY]:
//	first line of the definition
//	second line
//
// HTML comments are ignored. A later block for the same key replaces the
// earlier one, and a block with no body lines is dropped.
func Parse(raw string) *Index {
	idx := NewIndex()
	text := blockCommentRe.ReplaceAllString(raw, "")

	var (
		key     string
		inBlock bool
		buf     []string
	)
	flush := func() {
		if key != "" && len(buf) > 0 {
			idx.set(key, render(buf))
		}
	}

	for _, line := range splitLines(text) {
		if lineCommentRe.MatchString(line) {
			continue
		}
		if m := headerRe.FindStringSubmatch(line); m != nil {
			flush()
			key = strings.TrimSpace(m[1])
			inBlock = true
			buf = nil
			continue
		}
		if !inBlock {
			continue
		}
		if strings.TrimSpace(line) == "" && (len(buf) == 0 || strings.TrimSpace(buf[len(buf)-1]) == "") {
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return idx
}

// render classifies and escapes the buffered lines of one block.
func render(raw []string) Document {
	doc := Document{Lines: make([]Line, 0, len(raw))}
	var b strings.Builder
	for _, r := range raw {
		text := strings.TrimRightFunc(r, unicode.IsSpace)
		level := Classify(text)
		doc.Lines = append(doc.Lines, Line{Text: text, Level: level})
		fmt.Fprintf(&b, `<div class="%s %s%d">%s</div>`, LineClass, LevelPrefix, level, html.EscapeString(text))
	}
	doc.HTML = b.String()
	return doc
}

// lineBreaks folds every line boundary to \n. "\r\n" comes first so it
// counts as a single break.
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\v", "\n",
	"\f", "\n",
	"\x1c", "\n",
	"\x1d", "\n",
	"\x1e", "\n",
	"\u0085", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// splitLines splits on \n, \r\n, \r and the other Unicode line
// boundaries. A trailing line break does not produce an empty final line.
func splitLines(s string) []string {
	s = lineBreaks.Replace(s)
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
