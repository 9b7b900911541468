// Copyright 2026 the webwire authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package page extracts structured data from page source fetched over
// a session, for callers that want local parsing instead of a round
// trip per element.
package page

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Link is an anchor found in the page.
type Link struct {
	Href string
	Text string
}

// Document is a parsed snapshot of a page's source.
type Document struct {
	root *html.Node
}

// Parse parses serialized page source.
func Parse(source string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page source: %w", err)
	}
	return &Document{root: root}, nil
}

// Title returns the contents of the document's title element, cleaned
// of surrounding whitespace.
func (d *Document) Title() string {
	var title string
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "title" && title == "" {
			title = extractText(node)
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(d.root)
	return strings.TrimSpace(title)
}

// Links returns all anchors that carry an href attribute, in document
// order.
func (d *Document) Links() []Link {
	var links []Link
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "a" {
			for _, attr := range node.Attr {
				if attr.Key == "href" && attr.Val != "" {
					links = append(links, Link{
						Href: attr.Val,
						Text: cleanText(extractText(node)),
					})
					break
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(d.root)
	return links
}

// Text returns the visible text of the page body with whitespace
// collapsed. Script and style contents are skipped.
func (d *Document) Text() string {
	var buf strings.Builder
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
			return
		}
		if node.Type == html.TextNode {
			buf.WriteString(node.Data)
			buf.WriteString(" ")
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}
	traverse(d.root)
	return cleanText(buf.String())
}

// extractText extracts all text content from a node and its children.
func extractText(n *html.Node) string {
	var buf strings.Builder

	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			buf.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			traverse(child)
		}
	}

	traverse(n)
	return buf.String()
}

var whitespaceRun = regexp.MustCompile(`\s{2,}`)

// cleanText collapses newlines and runs of whitespace into single
// spaces.
func cleanText(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
