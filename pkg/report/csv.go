// Package report projects bio records into the downloadable CSV table and
// the display-only HTML context view.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"bio-scraper/pkg/domain"
	"bio-scraper/pkg/lexicon"
)

// Columns is the stable output column order. The context view is display
// only and is deliberately not part of the persisted table.
var Columns = []string{
	"Name",
	"URL",
	"Law School",
	"Undergrad",
	"Hobbies",
	"Pets",
	"Family",
	"Community",
	"Languages",
	"Awards",
	"Bar / Courts",
	"Links",
	"Headshot",
	"Talk Track",
}

// Row projects one record into the output column order.
func Row(rec domain.BioRecord) []string {
	return []string{
		rec.Name,
		rec.URL,
		strings.Join(rec.LawSchools, ", "),
		strings.Join(rec.Undergrad, ", "),
		keywordCell(rec, lexicon.Hobbies),
		keywordCell(rec, lexicon.Pets),
		keywordCell(rec, lexicon.Family),
		keywordCell(rec, lexicon.Community),
		keywordCell(rec, lexicon.Languages),
		keywordCell(rec, lexicon.Awards),
		keywordCell(rec, lexicon.BarCourts),
		linksCell(rec.Links),
		rec.Headshot,
		rec.TalkTrack,
	}
}

// WriteCSV writes the header and one row per record.
func WriteCSV(w io.Writer, records []domain.BioRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write(Row(rec)); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", rec.URL, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func keywordCell(rec domain.BioRecord, theme string) string {
	return strings.Join(rec.Keywords[theme], ", ")
}

func linksCell(links []domain.Link) string {
	parts := make([]string, len(links))
	for i, l := range links {
		parts[i] = l.Label + ": " + l.URL
	}
	return strings.Join(parts, "; ")
}
