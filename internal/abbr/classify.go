package abbr

import "regexp"

// MaxLevel is the deepest indentation level a line can be assigned.
const MaxLevel = 4

// levelRule maps an enumerator pattern to the nesting level it denotes.
type levelRule struct {
	Name    string
	Pattern *regexp.Regexp
	Level   int
}

// lead matches optional leading whitespace, including ideographic spaces.
const lead = `^[\s\p{Z}]*`

// levelRules is evaluated in order; the first match wins. Article markers
// come first so "第1條" is never mistaken for a bullet.
var levelRules = []levelRule{
	{"article", regexp.MustCompile(lead + `第[\s\p{Z}]*\p{Nd}+[-－]?\p{Nd}*[\s\p{Z}]*條`), 0},
	{"paragraph", regexp.MustCompile(lead + `第[\s\p{Z}]*\p{Nd}+[\s\p{Z}]*項[：:]`), 1},
	{"item", regexp.MustCompile(lead + `第[\s\p{Z}]*\p{Nd}+[\s\p{Z}]*款[：:]`), 2},
	{"subitem", regexp.MustCompile(lead + `第[\s\p{Z}]*\p{Nd}+[\s\p{Z}]*目[：:]`), 3},
	{"clause", regexp.MustCompile(lead + `第[\s\p{Z}]*\p{Nd}+[\s\p{Z}]*次[：:]`), 4},
	{"cjk-bullet", regexp.MustCompile(lead + `[一二三四五六七八九十]+、`), 2},
	{"fullwidth-paren-digit", regexp.MustCompile(lead + `（\p{Nd}+）`), 3},
	{"paren-digit", regexp.MustCompile(lead + `\(\p{Nd}+\)`), 3},
	{"fullwidth-paren-cjk", regexp.MustCompile(lead + `（[一二三四五六七八九十]+）`), 4},
	{"paren-letter", regexp.MustCompile(lead + `\([a-zA-Z]\)`), 4},
	{"digit-bullet", regexp.MustCompile(lead + `\p{Nd}+、`), 2},
}

// Classify returns the nesting level of a definition line, inferred from
// its leading enumerator. Lines without a recognized enumerator are level 0.
func Classify(line string) int {
	level, _ := ClassifyRule(line)
	return level
}

// ClassifyRule is like Classify but also reports the name of the matching
// rule, or "" when the line fell through to the default level.
func ClassifyRule(line string) (int, string) {
	for _, r := range levelRules {
		if r.Pattern.MatchString(line) {
			return r.Level, r.Name
		}
	}
	return 0, ""
}
