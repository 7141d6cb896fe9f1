package abbr

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		// Articles.
		{"第1條", 0},
		{"第 12 條 總則", 0},
		{"第12-1條", 0},
		{"第12－1條", 0},
		{"  第3條", 0},
		{"第１條", 0},
		// Paragraphs, items, sub-items, clauses.
		{"第1項：本法所稱", 1},
		{"第 2 項: half-width colon", 1},
		{"第1款：營業人", 2},
		{"第1目：", 3},
		{"第1次：", 4},
		// CJK numeral bullets.
		{"一、foo", 2},
		{"十二、bar", 2},
		{"　二、ideographic indent", 2},
		// Parenthesized numerals and letters.
		{"（1）foo", 3},
		{"（１）full-width digit", 3},
		{"(2) foo", 3},
		{"（三）foo", 4},
		{"（十二）bar", 4},
		{"　（五）indented", 4},
		{"(a) foo", 4},
		{"  (Z) foo", 4},
		// Arabic numeral bullets.
		{"1、foo", 2},
		{"23、foo", 2},
		// First matching rule wins.
		{"第1條第2項：", 0},
		{"第1項：一、", 1},
		// Defaults.
		{"", 0},
		{"plain text", 0},
		{"第1項 no colon", 0},
		{"foo 一、bar", 0},
		{"(ab) two letters", 0},
		{"(1a)", 0},
	}
	for _, tt := range tests {
		got := Classify(tt.line)
		if got != tt.want {
			t.Errorf("Classify(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestClassifyLevelRange(t *testing.T) {
	for _, r := range levelRules {
		if r.Level < 0 || r.Level > MaxLevel {
			t.Errorf("rule %s has level %d outside [0,%d]", r.Name, r.Level, MaxLevel)
		}
	}
}

func TestClassifyRule(t *testing.T) {
	level, name := ClassifyRule("(b) foo")
	if level != 4 || name != "paren-letter" {
		t.Errorf("ClassifyRule = (%d, %q), want (4, %q)", level, name, "paren-letter")
	}

	level, name = ClassifyRule("（三）foo")
	if level != 4 || name != "fullwidth-paren-cjk" {
		t.Errorf("ClassifyRule = (%d, %q), want (4, %q)", level, name, "fullwidth-paren-cjk")
	}

	level, name = ClassifyRule("nothing here")
	if level != 0 || name != "" {
		t.Errorf("ClassifyRule = (%d, %q), want (0, \"\")", level, name)
	}
}
