package tools

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"
)

// TextStats is the word-counter output.
type TextStats struct {
	Words      int `json:"words"`
	Characters int `json:"characters"`
	Lines      int `json:"lines"`
}

// CountText computes word, character and line counts. Characters are
// runes, not bytes, so CJK text counts as users expect.
func CountText(text string) TextStats {
	stats := TextStats{
		Characters: utf8.RuneCountInString(text),
		Words:      len(strings.Fields(text)),
	}
	if text != "" {
		stats.Lines = strings.Count(text, "\n") + 1
	}
	return stats
}

var (
	htmlTagPattern       = regexp.MustCompile(`<[^>]*>`)
	whitespaceRunPattern = regexp.MustCompile(`[ \t]+`)
	blankLineRunPattern  = regexp.MustCompile(`\n{3,}`)
)

// StripHTML removes tags and decodes entities, collapsing the
// whitespace the removed markup leaves behind.
func StripHTML(markup string) string {
	text := htmlTagPattern.ReplaceAllString(markup, " ")
	text = html.UnescapeString(text)
	text = whitespaceRunPattern.ReplaceAllString(text, " ")
	text = blankLineRunPattern.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ConvertCase transforms text into the named case style: upper, lower,
// title or sentence. Unknown styles return the input unchanged.
func ConvertCase(text, style string) string {
	switch style {
	case "upper":
		return strings.ToUpper(text)
	case "lower":
		return strings.ToLower(text)
	case "title":
		words := strings.Fields(strings.ToLower(text))
		for i, word := range words {
			words[i] = upperFirst(word)
		}
		return strings.Join(words, " ")
	case "sentence":
		return upperFirst(strings.ToLower(strings.TrimSpace(text)))
	default:
		return text
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}
