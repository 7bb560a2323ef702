package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/mkowalik/feedscout"
	"github.com/mkowalik/feedscout/discover"
	feedhtml "github.com/mkowalik/feedscout/html"
	scouthttp "github.com/mkowalik/feedscout/http"
	scoutslog "github.com/mkowalik/feedscout/slog"
	"github.com/mkowalik/feedscout/whatwg"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs        []string      `arg:"" name:"url" help:"Page URLs to discover feeds for."`
	Concurrency int           `short:"c" default:"4" help:"Concurrent page fetch limit."`
	Timeout     time.Duration `default:"10s" help:"HTTP fetch timeout per page."`
	RPS         float64       `name:"rps" default:"2" help:"Per-domain request rate limit."`
	URLOnly     bool          `name:"url-only" help:"Classify URLs without fetching HTML (e.g. YouTube links)."`
	JSON        bool          `help:"Emit results as JSON."`
	Verbose     bool          `short:"v" help:"Log discovery details to stderr."`
}

// pageResult is the outcome of discovery for one input URL.
type pageResult struct {
	URL   string                `json:"url"`
	Feeds []feedscout.Candidate `json:"feeds"`
	Err   error                 `json:"-"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("feedscout"),
		kong.Description("Discover RSS, Atom and JSON feeds for web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	var finder feedscout.FeedFinder = discover.NewFinder(feedhtml.NewScanner(), whatwg.NewResolver())
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		finder = scoutslog.NewLoggingFinder(finder, logger)
	}

	if cli.URLOnly {
		return m.runURLOnly(cli, finder, stdout)
	}

	fetcher := scouthttp.NewFetcher(scouthttp.WithTimeout(cli.Timeout))
	defer fetcher.Close()
	limiter := scouthttp.NewDomainLimiter(cli.RPS)

	// Discover pages concurrently; results keep input order.
	results := make([]pageResult, len(cli.URLs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cli.Concurrency)
	for i, pageURL := range cli.URLs {
		g.Go(func() error {
			results[i] = discoverPage(gctx, pageURL, finder, fetcher, limiter)
			return nil
		})
	}
	_ = g.Wait() // workers report failures through results

	return m.render(cli, results, stdout)
}

// discoverPage fetches one page and runs discovery on it. Fetch and
// discovery errors are carried in the result rather than aborting the
// other pages.
func discoverPage(ctx context.Context, pageURL string, finder feedscout.FeedFinder, fetcher feedscout.Fetcher, limiter feedscout.DomainLimiter) pageResult {
	result := pageResult{URL: pageURL}

	u, err := url.Parse(pageURL)
	if err != nil {
		result.Err = feedscout.Errorf(feedscout.EINVALID, "invalid URL %q: %v", pageURL, err)
		return result
	}

	if err := limiter.Wait(ctx, u.Host); err != nil {
		result.Err = err
		return result
	}

	finalURL, html, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		result.Err = err
		return result
	}

	feeds, err := finder.Discover(feedscout.Page{URL: finalURL, HTML: html})
	if err != nil {
		result.Err = err
		return result
	}

	result.Feeds = feeds
	return result
}

// runURLOnly classifies each URL by shape alone, without fetching.
func (m *Main) runURLOnly(cli *CLI, finder feedscout.FeedFinder, stdout io.Writer) error {
	results := make([]pageResult, len(cli.URLs))
	for i, pageURL := range cli.URLs {
		results[i] = pageResult{URL: pageURL}
		c, err := finder.DiscoverFromURL(pageURL)
		if err != nil {
			results[i].Err = err
			continue
		}
		if c != nil {
			results[i].Feeds = []feedscout.Candidate{*c}
		}
	}
	return m.render(cli, results, stdout)
}

// render writes results as text or JSON. Pages with no feeds are a
// normal outcome; only fetch or resolution failures make the run fail.
func (m *Main) render(cli *CLI, results []pageResult, stdout io.Writer) error {
	if cli.JSON {
		if err := renderJSON(results, stdout); err != nil {
			return err
		}
	} else {
		renderText(results, stdout)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("discovery failed for %d of %d pages", failed, len(results))
	}
	return nil
}

func renderText(results []pageResult, w io.Writer) {
	for _, r := range results {
		fmt.Fprintln(w, r.URL)
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "\terror: %v\n", r.Err)
		case len(r.Feeds) == 0:
			fmt.Fprintln(w, "\tno feeds found")
		default:
			for _, c := range r.Feeds {
				fmt.Fprintf(w, "\t%s\t%s\t%s\n", c.URL, c.Kind, c.Source)
			}
		}
	}
}

func renderJSON(results []pageResult, w io.Writer) error {
	type jsonResult struct {
		URL   string                `json:"url"`
		Feeds []feedscout.Candidate `json:"feeds"`
		Error string                `json:"error,omitempty"`
	}

	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		jr := jsonResult{URL: r.URL, Feeds: r.Feeds}
		if jr.Feeds == nil {
			jr.Feeds = []feedscout.Candidate{}
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
