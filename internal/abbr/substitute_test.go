package abbr

import (
	"strings"
	"testing"
)

func TestSubstituteEmptyIndex(t *testing.T) {
	page := "see GST for details"
	got := NewSubstituter(NewIndex()).Substitute(page)
	if got != page {
		t.Errorf("Substitute = %q, want input unchanged", got)
	}
}

func TestSubstituteEndToEnd(t *testing.T) {
	idx := Parse("*[GST]:\n第1條\n一、foo\n")
	got, n := NewSubstituter(idx).SubstituteStats("see GST for details")

	if n != 1 {
		t.Errorf("markers = %d, want 1", n)
	}
	want := `see <span class="mlabbr" data-mlabbr="` +
		`&lt;div class=&#34;mlabbr-line mlabbr-l0&#34;&gt;第1條&lt;/div&gt;` +
		`&lt;div class=&#34;mlabbr-line mlabbr-l2&#34;&gt;一、foo&lt;/div&gt;` +
		`">GST</span> for details`
	if got != want {
		t.Errorf("Substitute =\n%s\nwant\n%s", got, want)
	}
}

func TestSubstituteLongestMatchFirst(t *testing.T) {
	idx := Parse("*[AB]:\nshort\n*[ABC]:\nlong\n")
	got, n := NewSubstituter(idx).SubstituteStats("ABC")

	if n != 1 {
		t.Fatalf("markers = %d, want 1", n)
	}
	if !strings.HasSuffix(got, `">ABC</span>`) {
		t.Errorf("Substitute = %q, want a single ABC marker", got)
	}
	if strings.Contains(got, ">AB</span>") {
		t.Errorf("AB must not shadow ABC: %q", got)
	}
}

func TestSubstituteFallsBackToShorterKey(t *testing.T) {
	idx := Parse("*[A-B]:\nshort\n*[A-B-C]:\nlong\n")
	got := NewSubstituter(idx).Substitute("A-B-Cx")

	if !strings.Contains(got, ">A-B</span>-Cx") {
		t.Errorf("Substitute = %q, want A-B marker followed by -Cx", got)
	}
}

func TestSubstituteBoundaries(t *testing.T) {
	idx := Parse("*[AB]:\ndef\n")
	s := NewSubstituter(idx)

	tests := []struct {
		page string
		want int
	}{
		{"AB", 1},
		{"XABY", 0},
		{"XAB", 0},
		{"ABY", 0},
		{"AB1", 0},
		{"1AB", 0},
		{"中AB文", 1},
		{"_AB_", 1},
		{"(AB)", 1},
		{"AB-AB", 2},
		{"AB AB AB", 3},
		{"ab", 0},
	}
	for _, tt := range tests {
		_, n := s.SubstituteStats(tt.page)
		if n != tt.want {
			t.Errorf("SubstituteStats(%q) markers = %d, want %d", tt.page, n, tt.want)
		}
	}
}

func TestSubstituteSkipsCodeFences(t *testing.T) {
	idx := Parse("*[AB]:\ndef\n")
	s := NewSubstituter(idx)

	onlyFenced := "```\nAB\n```"
	if got := s.Substitute(onlyFenced); got != onlyFenced {
		t.Errorf("fenced key was rewritten: %q", got)
	}

	tilde := "~~~text\nAB\n~~~"
	if got := s.Substitute(tilde); got != tilde {
		t.Errorf("tilde-fenced key was rewritten: %q", got)
	}

	mixed := "AB before\n```go\nAB inside\n```\nAB after"
	got, n := s.SubstituteStats(mixed)
	if n != 2 {
		t.Errorf("markers = %d, want 2", n)
	}
	if !strings.Contains(got, "```go\nAB inside\n```") {
		t.Errorf("fenced content changed: %q", got)
	}
	if !strings.HasPrefix(got, `<span class="mlabbr"`) {
		t.Errorf("key before fence not substituted: %q", got)
	}
	if !strings.HasSuffix(got, ">AB</span> after") {
		t.Errorf("key after fence not substituted: %q", got)
	}
}

func TestSubstitutePayloadEscapedTwice(t *testing.T) {
	idx := Parse("*[K]:\n<b>&</b>\n")
	got := NewSubstituter(idx).Substitute("K")

	if !strings.Contains(got, "&amp;lt;b&amp;gt;&amp;amp;&amp;lt;/b&amp;gt;") {
		t.Errorf("payload not escaped for attribute use: %q", got)
	}
	if strings.Contains(got, "<b>") {
		t.Errorf("raw definition markup leaked: %q", got)
	}
}

func TestSubstituteDoesNotRewriteMarkers(t *testing.T) {
	idx := Parse("*[GST]:\nGST is a tax\n")
	got, n := NewSubstituter(idx).SubstituteStats("GST")
	if n != 1 {
		t.Errorf("markers = %d, want 1", n)
	}
	if strings.Count(got, `class="mlabbr"`) != 1 {
		t.Errorf("definition text was substituted again: %q", got)
	}
}

func TestSubstituteKeyMissingFromIndex(t *testing.T) {
	s := NewSubstituter(Parse("*[AB]:\ndef\n"))
	s.index = NewIndex()

	got, n := s.SubstituteStats("x AB y")
	if got != "x AB y" || n != 0 {
		t.Errorf("SubstituteStats = (%q, %d), want plain text and 0 markers", got, n)
	}
}

func TestSubstituteRegexMetaInKeys(t *testing.T) {
	idx := Parse("*[C++]:\nlang\n*[a.b]:\ndotted\n")
	s := NewSubstituter(idx)

	if _, n := s.SubstituteStats("use C++ here"); n != 1 {
		t.Errorf("C++ markers = %d, want 1", n)
	}
	if _, n := s.SubstituteStats("axb"); n != 0 {
		t.Errorf("a.b must match literally, got %d markers for axb", n)
	}
}

func TestMatchOrder(t *testing.T) {
	idx := Parse("*[AB]:\nx\n*[ABCD]:\nx\n*[ABC]:\nx\n*[XY]:\nx\n")
	got := strings.Join(idx.MatchOrder(), ",")
	if got != "ABCD,ABC,AB,XY" {
		t.Errorf("MatchOrder = %s, want ABCD,ABC,AB,XY", got)
	}
}
