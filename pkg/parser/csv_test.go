package parser

import (
	"strings"
	"testing"
)

func TestCSVParser_Parse(t *testing.T) {
	input := `URL,Target Name
https://friedmanlawfirm.com/about-our-law-firm/,Alda Gojcaj
http://boustanylawfirm.com/attorneys/,Alfred Boustany
`
	rows, err := NewCSVParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].URL != "https://friedmanlawfirm.com/about-our-law-firm/" {
		t.Errorf("Unexpected URL: %s", rows[0].URL)
	}
	if rows[1].TargetName != "Alfred Boustany" {
		t.Errorf("Unexpected name: %s", rows[1].TargetName)
	}
}

func TestCSVParser_LowercaseHeadersAndNameAlias(t *testing.T) {
	input := `url,name
https://example.com/attorneys/,Angel Reyes
`
	rows, err := NewCSVParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected alias headers to validate, got error: %v", err)
	}
	if len(rows) != 1 || rows[0].TargetName != "Angel Reyes" {
		t.Fatalf("Unexpected rows: %+v", rows)
	}
}

func TestCSVParser_ExtraColumnsIgnored(t *testing.T) {
	input := `Firm,URL,Notes,Target Name
Friedman,https://example.com/a,ignore,Alda Gojcaj
`
	rows, err := NewCSVParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if rows[0].URL != "https://example.com/a" || rows[0].TargetName != "Alda Gojcaj" {
		t.Fatalf("Unexpected row: %+v", rows[0])
	}
}

func TestCSVParser_MissingColumnIsFatal(t *testing.T) {
	input := `URL,Firm
https://example.com/a,Friedman
`
	if _, err := NewCSVParser().Parse(strings.NewReader(input)); err == nil {
		t.Fatal("Expected validation error for missing Target Name column")
	}
}

func TestCSVParser_TargetNamePreferredOverAlias(t *testing.T) {
	input := `Name,Target Name,URL
Wrong Person,Right Person,https://example.com/a
`
	rows, err := NewCSVParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if rows[0].TargetName != "Right Person" {
		t.Errorf("Expected 'Target Name' column to win, got %s", rows[0].TargetName)
	}
}
