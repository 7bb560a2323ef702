// Package html provides a tolerant, single-pass implementation of
// feedscout.MarkupScanner on top of golang.org/x/net/html's tokenizer.
// The scan treats HTML as a flat token stream rather than a nested
// element tree: real-world pages are frequently malformed, and feed
// discovery only needs three kinds of facts, so tag-soup tolerance
// matters more than structure.
package html

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/mkowalik/feedscout"
)

// Ensure Scanner implements feedscout.MarkupScanner at compile time.
var _ feedscout.MarkupScanner = (*Scanner)(nil)

// Scanner extracts <link> tags, <a> tags with their visible text, and
// the first <meta name="generator"> from HTML. It is stateless and safe
// for concurrent use.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan runs one forward pass over the document. It never fails:
// unterminated tags, missing close tags and stray bytes degrade to
// extracting whatever well-formed fragments remain. Tag and attribute
// names are matched case-insensitively (the tokenizer lower-cases them).
func (s *Scanner) Scan(doc string) *feedscout.Markup {
	m := &feedscout.Markup{}
	z := html.NewTokenizer(strings.NewReader(doc))

	// Anchor text accumulates between <a> and the next </a> or <a>.
	// No nesting is tracked; an unterminated anchor flushes at EOF.
	var anchor *feedscout.AnchorTag
	var text strings.Builder
	flush := func() {
		if anchor == nil {
			return
		}
		anchor.Text = collapseSpace(text.String())
		m.Anchors = append(m.Anchors, *anchor)
		anchor = nil
		text.Reset()
	}

	for {
		switch z.Next() {
		case html.ErrorToken:
			// EOF, or unreadable input: keep what we have.
			flush()
			return m

		case html.TextToken:
			if anchor != nil {
				text.Write(z.Text())
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			switch t.Data {
			case "link":
				var link feedscout.LinkTag
				for _, a := range t.Attr {
					switch a.Key {
					case "rel":
						link.Rel = a.Val
					case "type":
						link.Type = a.Val
					case "href":
						link.Href = a.Val
					}
				}
				m.Links = append(m.Links, link)

			case "meta":
				if m.Generator != nil {
					break // only the first generator meta is kept
				}
				var name, content string
				for _, a := range t.Attr {
					switch a.Key {
					case "name":
						name = a.Val
					case "content":
						content = a.Val
					}
				}
				if strings.EqualFold(strings.TrimSpace(name), "generator") {
					m.Generator = &feedscout.GeneratorMeta{Content: content}
				}

			case "a":
				flush()
				var href string
				for _, a := range t.Attr {
					if a.Key == "href" {
						href = a.Val
					}
				}
				anchor = &feedscout.AnchorTag{Href: href}
			}

		case html.EndTagToken:
			t := z.Token()
			if t.Data == "a" {
				flush()
			}
		}
	}
}

// collapseSpace trims and collapses runs of whitespace to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
