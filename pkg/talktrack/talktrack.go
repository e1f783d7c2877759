// Package talktrack turns one extracted bio record into a short spoken-style
// summary for conference use.
package talktrack

import (
	"strings"

	"bio-scraper/pkg/domain"
	"bio-scraper/pkg/lexicon"
)

// maxLen is the hard cap on a synthesized talk track.
const maxLen = 220

// Synthesize composes up to three clauses from a record: education,
// professional recognition, and personal color. A law school suppresses the
// undergraduate school since it matters more in a legal-conference setting.
// Records with nothing to say get a generic fallback naming the person.
func Synthesize(rec domain.BioRecord) string {
	var clauses []string

	if edu := educationClause(rec); edu != "" {
		clauses = append(clauses, edu)
	}
	if recog := recognitionClause(rec); recog != "" {
		clauses = append(clauses, recog)
	}
	if color := personalClause(rec); color != "" {
		clauses = append(clauses, color)
	}

	if len(clauses) == 0 {
		return truncate("No conference-ready talking points found for " + rec.Name + ".")
	}
	return truncate(strings.Join(clauses, "; "))
}

func educationClause(rec domain.BioRecord) string {
	if law := first(rec.LawSchools); law != "" {
		return "studied law at " + law
	}
	if ug := first(rec.Undergrad); ug != "" {
		return "studied at " + ug
	}
	return ""
}

func recognitionClause(rec domain.BioRecord) string {
	var parts []string
	if award := firstKeyword(rec, lexicon.Awards); award != "" {
		parts = append(parts, "recognized by "+award)
	}
	if bar := firstKeyword(rec, lexicon.BarCourts); bar != "" {
		parts = append(parts, "admitted ("+bar+")")
	}
	return strings.Join(parts, ", ")
}

func personalClause(rec domain.BioRecord) string {
	var parts []string
	if c := firstKeyword(rec, lexicon.Community); c != "" {
		parts = append(parts, "involved in "+c+" work")
	}
	if lang := firstKeyword(rec, lexicon.Languages); lang != "" {
		parts = append(parts, "speaks "+lang)
	}
	if hobby := firstKeyword(rec, lexicon.Hobbies); hobby != "" {
		parts = append(parts, "enjoys "+hobby)
	}
	if pet := firstKeyword(rec, lexicon.Pets); pet != "" {
		parts = append(parts, "has "+article(pet)+" "+pet)
	}
	if fam := firstKeyword(rec, lexicon.Family); fam != "" {
		parts = append(parts, "mentions "+fam)
	}
	return strings.Join(parts, ", ")
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func firstKeyword(rec domain.BioRecord, theme string) string {
	return first(rec.Keywords[theme])
}

// article picks "a" or "an" from the first letter of the phrase.
func article(phrase string) string {
	if phrase == "" {
		return "a"
	}
	switch phrase[0] {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return "an"
	}
	return "a"
}

// truncate enforces the length cap, cutting at the last word boundary that
// fits, stripping trailing separator punctuation, and appending an ellipsis.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	const ellipsis = "..."
	cut := string(runes[:maxLen-len(ellipsis)])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	cut = strings.TrimRight(cut, " ,;")
	return cut + ellipsis
}
