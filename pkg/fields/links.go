package fields

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bio-scraper/pkg/domain"
)

// ExtractLinks mines outbound profile links from a region subtree. Platforms
// are recognized by host substring, email by the mailto scheme; anything else
// is skipped. Relative targets resolve against base.
func ExtractLinks(sel *goquery.Selection, base *url.URL) []domain.Link {
	var links []domain.Link
	seen := map[string]bool{}

	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}

		if strings.HasPrefix(strings.ToLower(href), "mailto:") {
			if !seen[href] {
				seen[href] = true
				links = append(links, domain.Link{Label: "Email", URL: href})
			}
			return
		}

		abs := resolveURL(href, base)
		if abs == "" {
			return
		}
		parsed, err := url.Parse(abs)
		if err != nil {
			return
		}

		label := platformLabel(strings.ToLower(parsed.Hostname()))
		if label == "" || seen[abs] {
			return
		}
		seen[abs] = true
		links = append(links, domain.Link{Label: label, URL: abs})
	})

	return links
}

func platformLabel(host string) string {
	switch {
	case strings.Contains(host, "linkedin"):
		return "LinkedIn"
	case strings.Contains(host, "twitter"), host == "x.com", strings.HasSuffix(host, ".x.com"):
		return "X"
	case strings.Contains(host, "facebook"):
		return "Facebook"
	}
	return ""
}

// ExtractHeadshot picks the first image in the region subtree as the
// person's headshot and resolves it to an absolute URL.
func ExtractHeadshot(sel *goquery.Selection, base *url.URL) string {
	img := sel.Find("img").First()
	if img.Length() == 0 {
		return ""
	}
	src := strings.TrimSpace(img.AttrOr("src", ""))
	if src == "" {
		return ""
	}
	return resolveURL(src, base)
}

// resolveURL makes target absolute against base, or returns it unchanged
// when already absolute or no base is available.
func resolveURL(target string, base *url.URL) string {
	ref, err := url.Parse(target)
	if err != nil {
		return ""
	}
	if ref.IsAbs() || base == nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}
