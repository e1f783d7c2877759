package domain

import "strings"

// FetchFailedExcerpt is the excerpt value recorded when a page could not be
// fetched or parsed. The rest of the record stays empty but well-formed.
const FetchFailedExcerpt = "Fetch error"

// InputRow is one row of the uploaded URL list.
type InputRow struct {
	URL        string
	TargetName string
}

// Link is an outbound profile link found in a bio region.
type Link struct {
	Label string
	URL   string
}

// Snippet is a short excerpt of original page text quoted as evidence for a
// theme match.
type Snippet struct {
	Theme    string
	Keyword  string
	Sentence string
}

// Marked returns the sentence with the first occurrence of the matched
// keyword wrapped in emphasis markers, preserving the original casing.
func (s Snippet) Marked() string {
	idx := strings.Index(strings.ToLower(s.Sentence), strings.ToLower(s.Keyword))
	if idx < 0 {
		return s.Sentence
	}
	end := idx + len(s.Keyword)
	return s.Sentence[:idx] + "**" + s.Sentence[idx:end] + "**" + s.Sentence[end:]
}

// BioRecord is the structured result for one (URL, target name) pair.
// Slice and map values are kept in sorted order so repeated runs over the
// same markup produce identical records.
type BioRecord struct {
	Name       string
	URL        string
	LawSchools []string
	Undergrad  []string
	Keywords   map[string][]string // theme name -> matched vocabulary phrases
	Snippets   map[string][]Snippet
	Links      []Link
	Headshot   string
	Excerpt    string
	TalkTrack  string
}

// FailedRecord builds the well-formed record emitted when a fetch fails.
func FailedRecord(name, url string) BioRecord {
	return BioRecord{
		Name:     name,
		URL:      url,
		Keywords: map[string][]string{},
		Snippets: map[string][]Snippet{},
		Excerpt:  FetchFailedExcerpt,
	}
}
