package page

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Summary describes a generated document. It is informational only;
// nothing is rejected based on it.
type Summary struct {
	Title       string `json:"title"`
	HasDoctype  bool   `json:"has_doctype"`
	HasViewport bool   `json:"has_viewport"`
	StyleBlocks int    `json:"style_blocks"`
	Stylesheets int    `json:"stylesheets"`
	Scripts     int    `json:"scripts"`
	Links       int    `json:"links"`
	Images      int    `json:"images"`
}

// Inspect parses the document leniently and counts what the instruction asked for.
func Inspect(src string) (Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return Summary{}, fmt.Errorf("parsing HTML: %w", err)
	}
	return Summary{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		HasDoctype:  hasDoctype(doc),
		HasViewport: doc.Find(`meta[name="viewport"]`).Length() > 0,
		StyleBlocks: doc.Find("style").Length(),
		Stylesheets: doc.Find(`link[rel="stylesheet"]`).Length(),
		Scripts:     doc.Find("script").Length(),
		Links:       doc.Find("a[href]").Length(),
		Images:      doc.Find("img").Length(),
	}, nil
}

func hasDoctype(doc *goquery.Document) bool {
	for _, root := range doc.Nodes {
		for n := root.FirstChild; n != nil; n = n.NextSibling {
			if n.Type == html.DoctypeNode && strings.EqualFold(n.Data, "html") {
				return true
			}
		}
	}
	return false
}
