package fields

import (
	"regexp"
	"sort"
	"strings"
)

// School names are mined as runs of capitalized phrases. Both patterns are
// best-effort: the 120-character cutoff discards runaway greedy captures
// rather than trying to make the boundaries exact.
var (
	lawSchoolRe = regexp.MustCompile(`[A-Z][A-Za-z&.\-,'\s]+(?:School of Law| Law)(?:,?\s*[A-Z][A-Za-z&.\-,'\s]+)*`)
	undergradRe = regexp.MustCompile(`[A-Z][A-Za-z&.\-,'\s]+(?:University|College)(?: of [A-Z][A-Za-z&.\-,'\s]+)*`)
)

const maxSchoolLen = 120

// ExtractSchools mines law-school and undergraduate affiliations from text.
// Both lists come back deduplicated and lexically sorted so the joined
// display string is stable across runs.
func ExtractSchools(text string) (lawSchools, undergrad []string) {
	return matchSchools(lawSchoolRe, text), matchSchools(undergradRe, text)
}

func matchSchools(re *regexp.Regexp, text string) []string {
	seen := map[string]bool{}
	var schools []string
	for _, m := range re.FindAllString(text, -1) {
		m = strings.TrimSpace(m)
		if m == "" || len(m) >= maxSchoolLen || seen[m] {
			continue
		}
		seen[m] = true
		schools = append(schools, m)
	}
	sort.Strings(schools)
	return schools
}
