// Package slog provides logging decorators for feedscout interfaces.
// The discovery engine itself stays log-free; callers that want
// observability wrap the finder.
package slog

import (
	"log/slog"
	"time"

	"github.com/mkowalik/feedscout"
)

// Ensure LoggingFinder implements feedscout.FeedFinder.
var _ feedscout.FeedFinder = (*LoggingFinder)(nil)

// LoggingFinder wraps a FeedFinder with structured logging of each
// discovery call.
type LoggingFinder struct {
	next   feedscout.FeedFinder
	logger *slog.Logger
}

// NewLoggingFinder creates a new LoggingFinder.
func NewLoggingFinder(next feedscout.FeedFinder, logger *slog.Logger) *LoggingFinder {
	return &LoggingFinder{next: next, logger: logger}
}

// Discover delegates to the wrapped finder and logs the outcome.
func (f *LoggingFinder) Discover(page feedscout.Page) ([]feedscout.Candidate, error) {
	begin := time.Now()
	feeds, err := f.next.Discover(page)
	if err != nil {
		f.logger.Error("feed discovery",
			"url", page.URL,
			"error", err,
			"duration", time.Since(begin),
		)
		return feeds, err
	}
	f.logger.Info("feed discovery",
		"url", page.URL,
		"candidates", len(feeds),
		"duration", time.Since(begin),
	)
	return feeds, nil
}

// DiscoverFromURL delegates to the wrapped finder and logs the outcome.
func (f *LoggingFinder) DiscoverFromURL(pageURL string) (*feedscout.Candidate, error) {
	begin := time.Now()
	c, err := f.next.DiscoverFromURL(pageURL)
	if err != nil {
		f.logger.Error("url classification",
			"url", pageURL,
			"error", err,
			"duration", time.Since(begin),
		)
		return c, err
	}
	f.logger.Info("url classification",
		"url", pageURL,
		"matched", c != nil,
		"duration", time.Since(begin),
	)
	return c, nil
}
