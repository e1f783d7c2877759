package fields

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"bio-scraper/pkg/domain"
)

const (
	// maxSentenceLen drops degenerate "sentences" produced by boilerplate
	// with no real punctuation.
	maxSentenceLen = 300
	// snippetRadius bounds how much sentence text is kept on each side of
	// the matched keyword.
	snippetRadius = 80
	// maxKeywordsPerTheme caps how many matched keywords are searched for
	// supporting sentences.
	maxKeywordsPerTheme = 3
	// maxSnippetsPerTheme caps evidence collected per theme per region.
	maxSnippetsPerTheme = 2
)

// SplitSentences breaks text into sentence-like units on terminator
// punctuation followed by whitespace, keeping the terminator with its
// sentence. Empty and over-long units are discarded.
func SplitSentences(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		atEnd := i == len(runes)-1
		if !atEnd && !isSpace(runes[i+1]) {
			continue
		}
		if s := strings.TrimSpace(string(runes[start : i+1])); s != "" && len(s) <= maxSentenceLen {
			sentences = append(sentences, s)
		}
		start = i + 1
	}
	if s := strings.TrimSpace(string(runes[start:])); s != "" && len(s) <= maxSentenceLen {
		sentences = append(sentences, s)
	}
	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// themeSnippets finds supporting sentences for a theme's matched keywords.
// Keywords are already sorted; only the first few are searched, and the
// first sentence containing each keyword wins.
func themeSnippets(theme string, keywords, sentences []string) []domain.Snippet {
	var snippets []domain.Snippet
	limit := len(keywords)
	if limit > maxKeywordsPerTheme {
		limit = maxKeywordsPerTheme
	}
	for _, kw := range keywords[:limit] {
		if len(snippets) >= maxSnippetsPerTheme {
			break
		}
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		for _, sentence := range sentences {
			loc := re.FindStringIndex(sentence)
			if loc == nil {
				continue
			}
			snippets = append(snippets, domain.Snippet{
				Theme:    theme,
				Keyword:  kw,
				Sentence: clipAround(sentence, loc[0], loc[1]),
			})
			break
		}
	}
	return snippets
}

// clipAround keeps at most snippetRadius characters of sentence on each side
// of the keyword occurrence. Short sentences come back whole.
func clipAround(sentence string, start, end int) string {
	lo := start - snippetRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + snippetRadius
	if hi > len(sentence) {
		hi = len(sentence)
	}
	for lo > 0 && !utf8.RuneStart(sentence[lo]) {
		lo--
	}
	for hi < len(sentence) && !utf8.RuneStart(sentence[hi]) {
		hi++
	}
	return strings.TrimSpace(sentence[lo:hi])
}
