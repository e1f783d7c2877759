package fields

import (
	"net/url"

	"bio-scraper/pkg/domain"
	"bio-scraper/pkg/lexicon"
	"bio-scraper/pkg/locator"
)

// Result holds the structured fields mined from one bio region. Name and URL
// are filled in by the caller.
type Result struct {
	LawSchools []string
	Undergrad  []string
	Keywords   map[string][]string
	Snippets   map[string][]domain.Snippet
	Links      []domain.Link
	Headshot   string
	Excerpt    string
}

// Extract runs all field heuristics over a region. Link and headshot mining
// requires a region subtree; in whole-page fallback mode those fields stay
// empty. base resolves relative link and image targets.
func Extract(region locator.Region, base *url.URL) Result {
	res := Result{
		Keywords: map[string][]string{},
		Snippets: map[string][]domain.Snippet{},
		Excerpt:  Excerpt(region.Text),
	}

	res.LawSchools, res.Undergrad = ExtractSchools(region.Text)

	sentences := SplitSentences(region.Text)
	for _, theme := range lexicon.Themes() {
		matched := theme.Match(region.Text)
		if len(matched) == 0 {
			continue
		}
		res.Keywords[theme.Name] = matched
		if snips := themeSnippets(theme.Name, matched, sentences); len(snips) > 0 {
			res.Snippets[theme.Name] = snips
		}
	}

	if region.Selection != nil {
		res.Links = ExtractLinks(region.Selection, base)
		res.Headshot = ExtractHeadshot(region.Selection, base)
	}

	return res
}

const maxExcerptLen = 300

// Excerpt caps the region text for display. Texts longer than the cap keep
// exactly the first 300 characters followed by an ellipsis.
func Excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= maxExcerptLen {
		return text
	}
	return string(runes[:maxExcerptLen]) + "..."
}
