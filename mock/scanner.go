package mock

import "github.com/mkowalik/feedscout"

var _ feedscout.MarkupScanner = (*MarkupScanner)(nil)

// MarkupScanner is a mock implementation of feedscout.MarkupScanner.
type MarkupScanner struct {
	ScanFn func(html string) *feedscout.Markup
}

func (s *MarkupScanner) Scan(html string) *feedscout.Markup {
	return s.ScanFn(html)
}
