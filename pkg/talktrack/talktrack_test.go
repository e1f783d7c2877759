package talktrack

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"bio-scraper/pkg/domain"
	"bio-scraper/pkg/lexicon"
)

func TestLawSchoolSuppressesUndergrad(t *testing.T) {
	rec := domain.BioRecord{
		Name:       "John Smith",
		LawSchools: []string{"Harvard Law School"},
		Undergrad:  []string{"Yale College"},
	}

	got := Synthesize(rec)
	assert.Contains(t, got, "studied law at Harvard Law School")
	assert.NotContains(t, got, "Yale College")
}

func TestUndergradWhenNoLawSchool(t *testing.T) {
	rec := domain.BioRecord{
		Name:      "John Smith",
		Undergrad: []string{"Yale College"},
	}

	assert.Contains(t, Synthesize(rec), "studied at Yale College")
}

func TestAllClauses(t *testing.T) {
	rec := domain.BioRecord{
		Name:       "Jane Roe",
		LawSchools: []string{"Baylor Law School"},
		Keywords: map[string][]string{
			lexicon.Awards:    {"super lawyers"},
			lexicon.BarCourts: {"state bar"},
			lexicon.Community: {"volunteer"},
			lexicon.Languages: {"spanish"},
			lexicon.Hobbies:   {"golf"},
			lexicon.Pets:      {"animal lover"},
			lexicon.Family:    {"married"},
		},
	}

	got := Synthesize(rec)
	want := "studied law at Baylor Law School; " +
		"recognized by super lawyers, admitted (state bar); " +
		"involved in volunteer work, speaks spanish, enjoys golf, has an animal lover, mentions married"
	assert.Equal(t, want, got)
}

func TestArticleSelection(t *testing.T) {
	rec := domain.BioRecord{
		Name:     "Jane Roe",
		Keywords: map[string][]string{lexicon.Pets: {"dog"}},
	}
	assert.Contains(t, Synthesize(rec), "has a dog")

	rec.Keywords[lexicon.Pets] = []string{"animal lover"}
	assert.Contains(t, Synthesize(rec), "has an animal lover")
}

func TestFallbackNamesThePerson(t *testing.T) {
	got := Synthesize(domain.BioRecord{Name: "Jane Roe"})
	assert.Contains(t, got, "Jane Roe")
}

func TestLengthCap(t *testing.T) {
	rec := domain.BioRecord{
		Name:       "Jane Roe",
		LawSchools: []string{strings.Repeat("Very Long Law School Name ", 20)},
		Keywords: map[string][]string{
			lexicon.Awards:  {"super lawyers"},
			lexicon.Hobbies: {"golf"},
		},
	}

	got := Synthesize(rec)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), 220)
	assert.True(t, strings.HasSuffix(got, "..."), "expected ellipsis suffix, got %q", got)
	trimmed := strings.TrimSuffix(got, "...")
	assert.NotRegexp(t, `[,;\s]$`, trimmed, "separators must be stripped before the ellipsis")
}
