package feedscout

// LinkTag is a <link> element's feed-relevant attributes as found in
// markup. Href is unresolved: it may be relative to the page.
type LinkTag struct {
	Rel  string
	Type string
	Href string
}

// AnchorTag is an <a> element's href and visible text.
type AnchorTag struct {
	Href string
	Text string
}

// GeneratorMeta is the content of a <meta name="generator"> tag.
type GeneratorMeta struct {
	Content string
}

// Markup holds the facts extracted from one scan of a page. Link and
// anchor order follows document order. Generator is nil when the page
// declares none; only the first generator meta is kept.
type Markup struct {
	Links     []LinkTag
	Anchors   []AnchorTag
	Generator *GeneratorMeta
}

// MarkupScanner extracts feed-relevant facts from HTML in a single
// forward pass, without building an element tree.
type MarkupScanner interface {
	// Scan tolerates malformed or partial HTML: it extracts whatever
	// well-formed fragments it can find and never fails.
	Scan(html string) *Markup
}
