// Package scraper runs the per-person pipeline: fetch the page, locate the
// bio region, extract structured fields, and synthesize the talk track.
package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"bio-scraper/pkg/domain"
	"bio-scraper/pkg/fields"
	"bio-scraper/pkg/httpclient"
	"bio-scraper/pkg/locator"
	"bio-scraper/pkg/talktrack"
)

// Scraper processes one (URL, target name) unit at a time. It is safe for
// concurrent use; all state is per-call.
type Scraper struct {
	client *httpclient.Client
}

// New creates a scraper whose fetches time out after the given duration.
func New(timeout time.Duration) *Scraper {
	return &Scraper{client: httpclient.New(timeout)}
}

// Scrape always returns a well-formed record, one per call. On fetch or
// parse failure the record's structured fields are empty, the excerpt holds
// the failure marker, and the error describes what went wrong for logging;
// nothing propagates as a panic or aborts a batch.
func (s *Scraper) Scrape(ctx context.Context, pageURL, targetName string) (domain.BioRecord, error) {
	rawHTML, err := s.client.FetchPage(ctx, pageURL)
	if err != nil {
		return domain.FailedRecord(targetName, pageURL), fmt.Errorf("fetch failed for %s: %w", pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return domain.FailedRecord(targetName, pageURL), fmt.Errorf("parse failed for %s: %w", pageURL, err)
	}

	// An expected heuristic outcome, not an error: with no trustworthy
	// subtree for this person, extraction runs over the whole-page text and
	// link/headshot mining stays off.
	region, ok := locator.Locate(doc, targetName)
	if !ok {
		region = locator.Region{Text: locator.FallbackText(rawHTML, doc)}
	}

	base, _ := url.Parse(pageURL)
	extracted := fields.Extract(region, base)

	rec := domain.BioRecord{
		Name:       targetName,
		URL:        pageURL,
		LawSchools: extracted.LawSchools,
		Undergrad:  extracted.Undergrad,
		Keywords:   extracted.Keywords,
		Snippets:   extracted.Snippets,
		Links:      extracted.Links,
		Headshot:   extracted.Headshot,
		Excerpt:    extracted.Excerpt,
	}
	rec.TalkTrack = talktrack.Synthesize(rec)

	return rec, nil
}
