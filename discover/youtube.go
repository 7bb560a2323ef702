package discover

import (
	"net/url"
	"strings"

	"github.com/mkowalik/feedscout"
)

// youtubeHosts are the hosts whose page URLs are classified directly,
// without inspecting markup.
var youtubeHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
}

// youtubeFeedBase is YouTube's feed endpoint; it serves Atom for
// channels, playlists and legacy users alike.
const youtubeFeedBase = "https://www.youtube.com/feeds/videos.xml"

// YouTubeFeed classifies a page URL against known YouTube URL shapes
// (channel, playlist, user/legacy channel) and synthesizes the
// corresponding feed URL. A YouTube page's own <link> declarations are
// unreliable for a reader's purpose, so the Finder evaluates this before
// any markup scanning and short-circuits on a match.
func YouTubeFeed(pageURL string) (feedscout.Candidate, bool) {
	u, err := url.Parse(pageURL)
	if err != nil || !youtubeHosts[strings.ToLower(u.Hostname())] {
		return feedscout.Candidate{}, false
	}

	segs := strings.Split(strings.Trim(u.Path, "/"), "/")

	if len(segs) >= 2 && segs[0] == "channel" && segs[1] != "" {
		return youtubeCandidate("channel_id", segs[1]), true
	}
	if id := u.Query().Get("list"); id != "" {
		return youtubeCandidate("playlist_id", id), true
	}
	if len(segs) >= 2 && (segs[0] == "user" || segs[0] == "c") && segs[1] != "" {
		return youtubeCandidate("user", segs[1]), true
	}
	return feedscout.Candidate{}, false
}

func youtubeCandidate(param, id string) feedscout.Candidate {
	return feedscout.Candidate{
		URL:    youtubeFeedBase + "?" + param + "=" + url.QueryEscape(id),
		Kind:   feedscout.KindAtom,
		Source: feedscout.SourceYouTube,
	}
}
