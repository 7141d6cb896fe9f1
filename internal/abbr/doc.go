// Package abbr parses multi-line abbreviation definitions and rewrites
// occurrences of their keys in Markdown sources into tooltip markers.
//
// A definitions file is a sequence of blocks:
//
//	*[GST]:
//	第1條
//	一、foo
//
// Every body line is assigned a nesting level from 0 to 4 according to its
// leading enumerator (article, paragraph, item, sub-item, clause) and is
// rendered as an indented line of the tooltip. Substitution skips fenced
// code blocks and only accepts a key when the characters on either side are
// not ASCII letters or digits.
package abbr
