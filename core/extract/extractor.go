// Package extract implements the Extractor interface for HTML sources.
// It reduces a full HTML document to its readable body by:
//  1. Removing elements that carry no line-worthy text (scripts, navigation, media, forms)
//  2. Keeping the best content container (<main>, <article>, or <body>)
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoContent is returned when a document has no usable container.
var ErrNoContent = errors.New("no content container found in HTML")

// noiseSelectors are removed before the content container is chosen.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer", "header",
	"img", "picture", "svg", "canvas",
	"iframe", "video", "audio",
	"form", "button", "input", "select", "textarea",
}

// containers are tried in order; the first one present wins.
var containers = []string{"main", "article", "body"}

// HTMLExtractor strips noise from HTML and returns the main content fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract parses html and returns the outer HTML of its main content.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	for _, tag := range containers {
		sel := doc.Find(tag)
		if sel.Length() == 0 {
			continue
		}
		out, err := goquery.OuterHtml(sel.First())
		if err != nil {
			return "", fmt.Errorf("serializing <%s>: %w", tag, err)
		}
		return out, nil
	}
	return "", ErrNoContent
}
