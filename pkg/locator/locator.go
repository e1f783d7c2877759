package locator

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

const (
	// maxClimb bounds the upward walk from a matching text node.
	maxClimb = 6
	// minBlockText rejects bare headings and single-word links as regions.
	minBlockText = 30
)

// blockTags are the structural tags eligible to act as a bio region.
var blockTags = map[string]bool{
	"section": true,
	"article": true,
	"li":      true,
	"div":     true,
}

// Region is the part of a page judged most likely to describe one person.
// Selection is nil when no region was found and the caller fell back to the
// whole-page text; link and image mining is only possible with a Selection.
type Region struct {
	Text      string
	Selection *goquery.Selection
}

// Locate finds the smallest enclosing block whose text mentions targetName.
// It scans text nodes in document order for a case-insensitive substring
// match, then climbs at most maxClimb ancestors to the first block-like
// element with enough visible text. The first qualifying match wins.
func Locate(doc *goquery.Document, targetName string) (Region, bool) {
	lowered := strings.ToLower(strings.TrimSpace(targetName))
	if lowered == "" || len(doc.Selection.Nodes) == 0 {
		return Region{}, false
	}

	var region Region
	found := false

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found {
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode && strings.Contains(strings.ToLower(n.Data), lowered) {
			if block := climbToBlock(n); block != nil {
				region = Region{
					Text:      nodeText(block),
					Selection: goquery.NewDocumentFromNode(block).Selection,
				}
				found = true
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc.Selection.Nodes[0])

	return region, found
}

// climbToBlock walks upward from a text node to the nearest block-like
// ancestor with enough text, or nil if none qualifies within the bound.
func climbToBlock(n *html.Node) *html.Node {
	node := n.Parent
	for i := 0; i < maxClimb && node != nil; i++ {
		if node.Type == html.ElementNode && blockTags[node.Data] {
			if len(nodeText(node)) > minBlockText {
				return node
			}
		}
		node = node.Parent
	}
	return nil
}

// nodeText collects the visible text under a node, joining text nodes with
// single spaces the way a rendered page reads.
func nodeText(n *html.Node) string {
	var parts []string
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				parts = append(parts, strings.Join(strings.Fields(trimmed), " "))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(parts, " ")
}

// FallbackText extracts readable whole-page text for when no region matched.
// Readability strips navigation and boilerplate; if it fails the raw document
// text is used instead.
func FallbackText(rawHTML string, doc *goquery.Document) string {
	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err == nil {
		if text := strings.TrimSpace(article.TextContent); text != "" {
			return strings.Join(strings.Fields(text), " ")
		}
	}
	if doc != nil && len(doc.Selection.Nodes) > 0 {
		return nodeText(doc.Selection.Nodes[0])
	}
	return ""
}
