package github

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/hireline/hireline/internal/domain"
)

// DeveloperAssessment scores a developer from the GitHub REST API: recent
// public activity plus the quality of their top repositories. It needs an
// API token and is optional; when configured, its summary lines join the
// scraped card metrics in the screening brief.
type DeveloperAssessment struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewDeveloperAssessment constructs a DeveloperAssessment client.
func NewDeveloperAssessment(baseURL, token string) *DeveloperAssessment {
	return &DeveloperAssessment{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Assessment is the aggregate developer score.
type Assessment struct {
	Username      string
	ActivityScore int
	EventCounts   map[string]int
	RepoScores    []RepoScore
	OverallScore  float64
}

// RepoScore is one repository's quality score on a 0-100 scale.
type RepoScore struct {
	Name         string
	URL          string
	QualityScore int
}

type userProfile struct {
	Name        string `json:"name"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

type repository struct {
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
	Owner   struct {
		Login string `json:"login"`
	} `json:"owner"`
	Stars       int    `json:"stargazers_count"`
	Forks       int    `json:"forks_count"`
	HasIssues   bool   `json:"has_issues"`
	HasWiki     bool   `json:"has_wiki"`
	Description string `json:"description"`
	License     *struct {
		Key string `json:"key"`
	} `json:"license"`
}

type userEvent struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

type contributorStat struct {
	Total int `json:"total"`
}

func (d *DeveloperAssessment) get(ctx domain.Context, path string, params url.Values, out any) error {
	u := d.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("op=github.devassess: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+d.token)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("op=github.devassess: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("op=github.devassess: unexpected status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("op=github.devassess: decode: %w", err)
	}
	return nil
}

// eventWeights ranks recent public activity by how much engineering signal
// each event type carries.
var eventWeights = map[string]int{
	"PushEvent":              3,
	"PullRequestEvent":       5,
	"IssuesEvent":            2,
	"PullRequestReviewEvent": 4,
	"CreateEvent":            2,
	"ForkEvent":              1,
	"WatchEvent":             1,
}

// activityWindow bounds how far back events count toward the activity score.
const activityWindow = 30 * 24 * time.Hour

func activityScore(events []userEvent, now time.Time) (int, map[string]int) {
	cutoff := now.Add(-activityWindow)
	score := 0
	counts := map[string]int{}
	for _, ev := range events {
		if ev.CreatedAt.Before(cutoff) {
			continue
		}
		w, ok := eventWeights[ev.Type]
		if !ok {
			w = 1
		}
		score += w
		counts[ev.Type]++
	}
	return score, counts
}

// repoQualityScore grades one repository 0-100 from popularity, hygiene,
// and commit volume.
func repoQualityScore(repo repository, contributors []contributorStat) int {
	score := 0

	switch stars := repo.Stars; {
	case stars > 100:
		score += 20
	case stars > 50:
		score += 15
	case stars > 10:
		score += 10
	case stars > 0:
		score += 5
	}

	switch forks := repo.Forks; {
	case forks > 50:
		score += 15
	case forks > 20:
		score += 10
	case forks > 5:
		score += 7
	case forks > 0:
		score += 3
	}

	if repo.Description != "" {
		score += 5
	}
	if repo.License != nil {
		score += 10
	}
	if repo.HasIssues {
		score += 5
	}
	if repo.HasWiki {
		score += 5
	}
	if len(contributors) > 1 {
		score += 10
	}

	totalCommits := 0
	for _, c := range contributors {
		totalCommits += c.Total
	}
	switch {
	case totalCommits > 500:
		score += 30
	case totalCommits > 200:
		score += 20
	case totalCommits > 50:
		score += 15
	case totalCommits > 10:
		score += 10
	case totalCommits > 0:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Assess runs the full developer assessment for a username.
func (d *DeveloperAssessment) Assess(ctx domain.Context, username string) (*Assessment, error) {
	var profile userProfile
	if err := d.get(ctx, "/users/"+url.PathEscape(username), nil, &profile); err != nil {
		return nil, err
	}

	var repos []repository
	if err := d.get(ctx, "/users/"+url.PathEscape(username)+"/repos",
		url.Values{"per_page": {"30"}, "sort": {"updated"}}, &repos); err != nil {
		return nil, err
	}

	var events []userEvent
	if err := d.get(ctx, "/users/"+url.PathEscape(username)+"/events/public",
		url.Values{"per_page": {"30"}}, &events); err != nil {
		return nil, err
	}
	score, counts := activityScore(events, time.Now())

	// Only the five most popular repositories are worth the extra calls.
	sort.Slice(repos, func(i, j int) bool {
		return repos[i].Stars+repos[i].Forks > repos[j].Stars+repos[j].Forks
	})
	if len(repos) > 5 {
		repos = repos[:5]
	}

	var repoScores []RepoScore
	for _, repo := range repos {
		var contributors []contributorStat
		// Contributor stats are optional; GitHub answers 202 while computing
		// them and the quality score degrades gracefully without them.
		_ = d.get(ctx, "/repos/"+url.PathEscape(repo.Owner.Login)+"/"+url.PathEscape(repo.Name)+"/stats/contributors", nil, &contributors)
		repoScores = append(repoScores, RepoScore{
			Name:         repo.Name,
			URL:          repo.HTMLURL,
			QualityScore: repoQualityScore(repo, contributors),
		})
	}

	avgRepo := 0.0
	if len(repoScores) > 0 {
		sum := 0
		for _, rs := range repoScores {
			sum += rs.QualityScore
		}
		avgRepo = float64(sum) / float64(len(repoScores))
	}
	activityWeight := float64(score) / 10
	if activityWeight > 50 {
		activityWeight = 50
	}
	overall := avgRepo*0.7 + activityWeight*0.3

	return &Assessment{
		Username:      username,
		ActivityScore: score,
		EventCounts:   counts,
		RepoScores:    repoScores,
		OverallScore:  float64(int(overall*100+0.5)) / 100,
	}, nil
}

// StatLines renders the assessment as card-style metric entries for the
// screening brief.
func (a *Assessment) StatLines() []domain.Stat {
	activity := int64(a.ActivityScore)
	stats := []domain.Stat{
		{Name: "Recent Activity Score (30d)", Value: strconv.Itoa(a.ActivityScore), Number: &activity},
		{Name: "Overall Developer Score", Value: strconv.FormatFloat(a.OverallScore, 'f', 2, 64)},
	}
	for _, rs := range a.RepoScores {
		stats = append(stats, domain.Stat{
			Name:  "Repo Quality " + rs.Name,
			Value: strconv.Itoa(rs.QualityScore),
		})
	}
	return stats
}
