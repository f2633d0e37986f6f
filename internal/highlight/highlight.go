// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package highlight splits lines of Structured Text into styled spans for
// the renderer: keywords, comments, and plain text. The rule is purely
// token-based; the language is never parsed.
package highlight

import "strings"

// Style classifies a span for rendering.
type Style int

const (
	StylePlain Style = iota
	StyleKeyword
	StyleComment
)

// Span is a run of characters sharing one style. Concatenating the spans
// of a line reproduces the line verbatim.
type Span struct {
	Text  string
	Style Style
}

// Line splits one source line into styled spans. Keywords are matched on
// word boundaries against the given set. Comments run from "//" to end of
// line; "(* ... *)" comments closed on the same line are a single span
// with the remainder of the line processed normally.
func Line(line string, keywords map[string]bool) []Span {
	var spans []Span
	rest := line
	for rest != "" {
		lineIdx := strings.Index(rest, "//")
		blockIdx := strings.Index(rest, "(*")

		switch {
		case lineIdx < 0 && blockIdx < 0:
			spans = appendCode(spans, rest, keywords)
			return spans

		case blockIdx < 0 || (lineIdx >= 0 && lineIdx < blockIdx):
			spans = appendCode(spans, rest[:lineIdx], keywords)
			spans = append(spans, Span{Text: rest[lineIdx:], Style: StyleComment})
			return spans

		default:
			spans = appendCode(spans, rest[:blockIdx], keywords)
			end := strings.Index(rest[blockIdx:], "*)")
			if end < 0 {
				spans = append(spans, Span{Text: rest[blockIdx:], Style: StyleComment})
				return spans
			}
			stop := blockIdx + end + 2
			spans = append(spans, Span{Text: rest[blockIdx:stop], Style: StyleComment})
			rest = rest[stop:]
		}
	}
	return spans
}

// appendCode tokenizes a comment-free fragment, emitting keyword spans for
// word-boundary matches and merging everything else into plain spans.
func appendCode(spans []Span, code string, keywords map[string]bool) []Span {
	if code == "" {
		return spans
	}
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, Span{Text: plain.String(), Style: StylePlain})
			plain.Reset()
		}
	}

	for i := 0; i < len(code); {
		if !isWordByte(code[i]) {
			plain.WriteByte(code[i])
			i++
			continue
		}
		j := i
		for j < len(code) && isWordByte(code[j]) {
			j++
		}
		word := code[i:j]
		if keywords[word] {
			flush()
			spans = append(spans, Span{Text: word, Style: StyleKeyword})
		} else {
			plain.WriteString(word)
		}
		i = j
	}
	flush()
	return spans
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
