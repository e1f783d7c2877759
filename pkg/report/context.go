package report

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"bio-scraper/pkg/domain"
	"bio-scraper/pkg/lexicon"
)

// maxContextSnippets caps the combined context view across all themes.
// At most one snippet per theme is surfaced here even when extraction
// collected more.
const maxContextSnippets = 6

var sanitizer = bluemonday.StrictPolicy()

// ContextHTML renders the themed evidence snippets for one record as an HTML
// fragment. Sentence text comes from scraped pages, so it is sanitized
// before the matched keyword is wrapped in a <mark> tag.
func ContextHTML(rec domain.BioRecord) string {
	var b strings.Builder
	count := 0
	for _, theme := range lexicon.Names() {
		if count >= maxContextSnippets {
			break
		}
		snips := rec.Snippets[theme]
		if len(snips) == 0 {
			continue
		}
		snip := snips[0]
		fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>\n",
			sanitizer.Sanitize(theme), markedHTML(snip))
		count++
	}
	return b.String()
}

// markedHTML sanitizes the snippet sentence and highlights the first
// occurrence of the keyword.
func markedHTML(snip domain.Snippet) string {
	idx := strings.Index(strings.ToLower(snip.Sentence), strings.ToLower(snip.Keyword))
	if idx < 0 {
		return sanitizer.Sanitize(snip.Sentence)
	}
	end := idx + len(snip.Keyword)
	return sanitizer.Sanitize(snip.Sentence[:idx]) +
		"<mark>" + sanitizer.Sanitize(snip.Sentence[idx:end]) + "</mark>" +
		sanitizer.Sanitize(snip.Sentence[end:])
}
