// Package github collects public profile signals from GitHub.
//
// The primary source is the github-readme-stats rendered SVG card, which is
// scraped rather than queried: rank, rank progress, and the metric lines all
// live inside the SVG markup. Signals are best-effort; callers treat any
// failure as absent signals.
package github

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/hireline/hireline/internal/domain"
)

// Collector implements domain.SignalCollector against a github-readme-stats
// deployment. When a DeveloperAssessment client is attached, its summary
// lines are appended to the card metrics; its failures never fail a collect.
type Collector struct {
	baseURL    string
	httpClient *http.Client
	dev        *DeveloperAssessment
}

// NewCollector constructs a Collector with a default timeout. dev may be nil.
func NewCollector(baseURL string, dev *DeveloperAssessment) *Collector {
	return &Collector{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		dev:        dev,
	}
}

var validRanks = map[string]bool{
	"A+": true, "A": true, "B+": true, "B": true, "C+": true, "C": true,
	"D+": true, "D": true, "E+": true, "E": true, "F": true,
}

// Username derives the GitHub username from a profile URL: the last
// non-empty path segment after stripping trailing slashes.
func Username(profileURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(profileURL))
	if err != nil {
		return "", fmt.Errorf("%w: profile url: %v", domain.ErrInvalidArgument, err)
	}
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return "", fmt.Errorf("%w: profile url has no username", domain.ErrInvalidArgument)
	}
	segs := strings.Split(path, "/")
	return segs[len(segs)-1], nil
}

// Collect fetches and parses the stats card for the profile's username.
func (c *Collector) Collect(ctx domain.Context, profileURL string) (*domain.GithubStats, error) {
	username, err := Username(profileURL)
	if err != nil {
		return nil, err
	}
	statsURL := fmt.Sprintf("%s/api?username=%s&include_all_commits=false&count_private=true&show_icons=true",
		c.baseURL, url.QueryEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("op=github.collect: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("op=github.collect: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("op=github.collect: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("op=github.parse: %w", err)
	}
	svg := doc.Find("svg").First()
	if svg.Length() == 0 {
		return nil, fmt.Errorf("op=github.parse: no svg element")
	}

	fullname, rank, err := parseTitle(svg.Find("title").First().Text())
	if err != nil {
		return nil, err
	}
	progress := rankProgress(svg.Find("style").First().Text())
	stats := parseDesc(svg.Find("desc").First().Text())
	attachIcons(svg, stats)

	if c.dev != nil {
		if a, aerr := c.dev.Assess(ctx, username); aerr != nil {
			slog.Debug("developer assessment unavailable",
				slog.String("username", username),
				slog.Any("error", aerr))
		} else {
			stats = append(stats, a.StatLines()...)
		}
	}

	return &domain.GithubStats{
		StatsURL:     statsURL,
		FullName:     fullname,
		Rank:         rank,
		RankProgress: progress,
		Stats:        stats,
	}, nil
}

// parseTitle splits a card title like "The Octocat's GitHub Stats, Rank: B+"
// into the full name and the rank.
func parseTitle(title string) (fullname, rank string, err error) {
	fullname, _, _ = strings.Cut(title, " GitHub Stats")
	fullname = strings.TrimSuffix(fullname, "'s")
	if idx := strings.LastIndex(title, "Rank: "); idx >= 0 {
		rank = title[idx+len("Rank: "):]
	}
	rank = strings.TrimSpace(rank)
	if !validRanks[rank] {
		return "", "", fmt.Errorf("op=github.parse: %w: rank %q", domain.ErrSchemaInvalid, rank)
	}
	return fullname, rank, nil
}

var (
	reKeyframes = regexp.MustCompile(`@keyframes rankAnimation `)
	reTo        = regexp.MustCompile(`to \{`)
	reOffset    = regexp.MustCompile(`stroke-dashoffset: (\d+\.\d+);`)
)

// rankProgress recovers the rank circle's fill percentage from the SVG
// animation: the card animates stroke-dashoffset from 250 down to its final
// value, so progress = round(((250 - offset) / 250) * 100). A card without
// the animation block reports 0.
func rankProgress(style string) int {
	loc := reKeyframes.FindStringIndex(style)
	if loc == nil {
		return 0
	}
	rest := style[loc[1]:]
	offset := 0.0
	if toLoc := reTo.FindStringIndex(rest); toLoc != nil {
		if m := reOffset.FindStringSubmatch(rest[toLoc[0]:]); m != nil {
			offset, _ = strconv.ParseFloat(m[1], 64)
		}
	}
	return int(math.Round(((250 - offset) / 250) * 100))
}

// parseDesc splits the card description, a comma-separated list of
// "label: value" pairs, into metric entries. All-digit values also carry a
// numeric form.
func parseDesc(desc string) []domain.Stat {
	var stats []domain.Stat
	for _, line := range strings.Split(desc, ", ") {
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			name, value = line, ""
		}
		st := domain.Stat{Name: name, Value: value}
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && value != "" {
			st.Number = &n
		}
		stats = append(stats, st)
	}
	return stats
}

// attachIcons pairs nested icon SVGs with metrics positionally, and only
// when the counts line up exactly; otherwise every icon stays empty.
func attachIcons(svg *goquery.Selection, stats []domain.Stat) {
	var icons []string
	svg.Find("svg.icon").Each(func(_ int, s *goquery.Selection) {
		if html, err := goquery.OuterHtml(s); err == nil {
			icons = append(icons, html)
		}
	})
	if len(icons) != len(stats) {
		return
	}
	for i := range stats {
		stats[i].Icon = icons[i]
	}
}
