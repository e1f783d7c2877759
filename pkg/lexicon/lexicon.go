package lexicon

import (
	"regexp"
	"sort"
)

// Theme names, also used as column keys in the output projection.
const (
	Hobbies   = "Hobbies"
	Pets      = "Pets"
	Family    = "Family"
	Community = "Community"
	Languages = "Languages"
	Awards    = "Awards"
	BarCourts = "Bar / Courts"
)

// Theme is a named category with a vocabulary of trigger phrases.
// Matching is case-insensitive and bounded at word edges, so "cat" does not
// match inside "catalog".
type Theme struct {
	Name       string
	Vocabulary []string

	matchers []*regexp.Regexp
}

func newTheme(name string, vocabulary ...string) Theme {
	t := Theme{
		Name:       name,
		Vocabulary: vocabulary,
		matchers:   make([]*regexp.Regexp, len(vocabulary)),
	}
	for i, phrase := range vocabulary {
		t.matchers[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return t
}

// Match returns the vocabulary phrases present in text as standalone words or
// phrases, sorted lexically and deduplicated.
func (t Theme) Match(text string) []string {
	var found []string
	for i, phrase := range t.Vocabulary {
		if t.matchers[i].MatchString(text) {
			found = append(found, phrase)
		}
	}
	sort.Strings(found)
	return found
}

var themes = []Theme{
	newTheme(Hobbies,
		"golf", "skiing", "hiking", "reading", "travel", "cooking", "fishing",
		"boating", "tennis", "running", "cycling", "yoga", "camping", "kayaking",
		"photography", "music", "piano", "guitar", "basketball", "football",
		"soccer", "baseball"),
	newTheme(Pets,
		"dog", "dogs", "cat", "cats", "puppy", "kitten", "golden retriever",
		"pets", "animal lover"),
	newTheme(Family,
		"husband", "wife", "spouse", "partner", "children", "kids", "daughter",
		"son", "mother", "father", "family", "married"),
	newTheme(Community,
		"volunteer", "board member", "foundation", "nonprofit", "mentor",
		"coach", "community", "pro bono"),
	newTheme(Languages,
		"spanish", "french", "mandarin", "cantonese", "vietnamese", "korean",
		"portuguese", "italian", "german", "russian", "arabic", "tagalog",
		"bilingual"),
	newTheme(Awards,
		"super lawyers", "best lawyers", "rising star", "rising stars",
		"av preeminent", "martindale-hubbell", "top 100", "top 40 under 40",
		"million dollar advocates", "avvo", "lawyer of the year"),
	newTheme(BarCourts,
		"state bar", "bar association", "admitted", "supreme court",
		"district court", "court of appeals", "fifth circuit", "ninth circuit",
		"federal courts"),
}

// Themes returns all themes in their canonical display order.
func Themes() []Theme {
	return themes
}

// Names returns the theme names in canonical display order.
func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
