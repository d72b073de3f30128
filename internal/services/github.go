package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	fastshot "github.com/opus-domini/fast-shot"

	"github.com/jhpark/devboard/internal/config"
	"github.com/jhpark/devboard/pkg/logger"
)

var repoURLPattern = regexp.MustCompile(`github\.com/([^/]+)/([^/]+)`)

// RepoInfo is a summary of a GitHub repository.
type RepoInfo struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Stars         int    `json:"stars"`
	Forks         int    `json:"forks"`
	Language      string `json:"language"`
	UpdatedAt     string `json:"updatedAt"`
	DefaultBranch string `json:"defaultBranch"`
}

// Commit is a single recent commit, trimmed for display.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	URL     string `json:"url"`
}

// Readme holds a repository README in raw and rendered form.
type Readme struct {
	Content string `json:"content"`
	HTML    string `json:"html"`
}

// RepoStats bundles the summary and recent commits for a single
// detail-page fetch.
type RepoStats struct {
	Repo    *RepoInfo `json:"repo"`
	Commits []Commit  `json:"commits"`
}

// UserRepository is one entry in the authenticated user's repository
// list, used by the import picker.
type UserRepository struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	UpdatedAt   string `json:"updated_at"`
	Private     bool   `json:"private"`
}

// GitHubService reads repository metadata from the GitHub REST API.
// Every fetch deliberately degrades to a nil/empty result on upstream
// failure so a detail page renders without enrichment instead of
// failing outright; failures are only visible in the service log.
type GitHubService struct {
	client fastshot.ClientHttpMethods
}

func NewGitHubService(cfg *config.GitHubConfig) *GitHubService {
	builder := fastshot.NewClient(cfg.BaseURL)
	if cfg.Token != "" {
		builder.Auth().BearerToken(cfg.Token)
	}

	client := builder.
		Config().SetTimeout(15 * time.Second).
		Config().SetFollowRedirects(true).
		Header().Add("Accept", "application/vnd.github+json").
		Header().Add("X-GitHub-Api-Version", "2022-11-28").
		Build()

	return &GitHubService{client: client}
}

// ParseRepoURL extracts the owner and repository name from a GitHub
// URL. A trailing .git suffix is stripped. ok is false for any URL
// that does not contain a github.com/<owner>/<repo> path.
func ParseRepoURL(url string) (owner, repo string, ok bool) {
	m := repoURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSuffix(m[2], ".git"), true
}

// github API response shapes

type githubRepoResponse struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Language        string `json:"language"`
	UpdatedAt       string `json:"updated_at"`
	DefaultBranch   string `json:"default_branch"`
}

type githubCommitResponse struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  *struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	HTMLURL string `json:"html_url"`
}

type githubReadmeResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type githubUserRepoResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	Description     string `json:"description"`
	HTMLURL         string `json:"html_url"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	UpdatedAt       string `json:"updated_at"`
	Private         bool   `json:"private"`
}

// GetRepoInfo fetches the repository summary for the given URL.
// Returns nil when the URL is unparseable or the API call fails.
func (s *GitHubService) GetRepoInfo(ctx context.Context, repoURL string) *RepoInfo {
	owner, repo, ok := ParseRepoURL(repoURL)
	if !ok {
		return nil
	}

	var data githubRepoResponse
	if err := s.getJSON(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo), &data); err != nil {
		logger.Warn().Err(err).Str("repo", owner+"/"+repo).Msg("failed to fetch repo info")
		return nil
	}

	language := data.Language
	if language == "" {
		language = "Unknown"
	}

	return &RepoInfo{
		Name:          data.Name,
		Description:   data.Description,
		Stars:         data.StargazersCount,
		Forks:         data.ForksCount,
		Language:      language,
		UpdatedAt:     data.UpdatedAt,
		DefaultBranch: data.DefaultBranch,
	}
}

// GetRecentCommits fetches the count most recent commits. The hash is
// truncated to 7 characters and only the first line of each message is
// kept. Returns an empty slice on any failure.
func (s *GitHubService) GetRecentCommits(ctx context.Context, repoURL string, count int) []Commit {
	if count <= 0 {
		count = 3
	}

	owner, repo, ok := ParseRepoURL(repoURL)
	if !ok {
		return []Commit{}
	}

	var data []githubCommitResponse
	path := fmt.Sprintf("/repos/%s/%s/commits?per_page=%d", owner, repo, count)
	if err := s.getJSON(ctx, path, &data); err != nil {
		logger.Warn().Err(err).Str("repo", owner+"/"+repo).Msg("failed to fetch commits")
		return []Commit{}
	}

	commits := make([]Commit, 0, len(data))
	for _, c := range data {
		sha := c.SHA
		if len(sha) > 7 {
			sha = sha[:7]
		}

		message := c.Commit.Message
		if idx := strings.Index(message, "\n"); idx != -1 {
			message = message[:idx]
		}

		author := "Unknown"
		date := ""
		if c.Commit.Author != nil {
			if c.Commit.Author.Name != "" {
				author = c.Commit.Author.Name
			}
			date = c.Commit.Author.Date
		}

		commits = append(commits, Commit{
			SHA:     sha,
			Message: message,
			Author:  author,
			Date:    date,
			URL:     c.HTMLURL,
		})
	}
	return commits
}

// GetReadme fetches the repository README in raw and rendered form.
// Returns nil when the repository has no README, the URL is
// unparseable, or the API call fails; these cases are not
// distinguished.
func (s *GitHubService) GetReadme(ctx context.Context, repoURL string) *Readme {
	owner, repo, ok := ParseRepoURL(repoURL)
	if !ok {
		return nil
	}

	path := fmt.Sprintf("/repos/%s/%s/readme", owner, repo)

	var data githubReadmeResponse
	if err := s.getJSON(ctx, path, &data); err != nil {
		logger.Warn().Err(err).Str("repo", owner+"/"+repo).Msg("failed to fetch readme")
		return nil
	}

	content := data.Content
	if data.Encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(data.Content, "\n", ""))
		if err != nil {
			logger.Warn().Err(err).Str("repo", owner+"/"+repo).Msg("failed to decode readme")
			return nil
		}
		content = string(decoded)
	}

	// Second call for the rendered markup; a miss here still returns
	// the raw content.
	html, err := s.getHTML(ctx, path)
	if err != nil {
		logger.Warn().Err(err).Str("repo", owner+"/"+repo).Msg("failed to fetch rendered readme")
	}

	return &Readme{Content: content, HTML: html}
}

// GetStats composes the repository summary and the 3 most recent
// commits into one envelope.
func (s *GitHubService) GetStats(ctx context.Context, repoURL string) *RepoStats {
	return &RepoStats{
		Repo:    s.GetRepoInfo(ctx, repoURL),
		Commits: s.GetRecentCommits(ctx, repoURL, 3),
	}
}

// ListUserRepos fetches up to 100 repositories owned by the
// authenticated user, most recently updated first. Returns an empty
// slice on failure.
func (s *GitHubService) ListUserRepos(ctx context.Context) []UserRepository {
	var data []githubUserRepoResponse
	if err := s.getJSON(ctx, "/user/repos?sort=updated&per_page=100&affiliation=owner", &data); err != nil {
		logger.Warn().Err(err).Msg("failed to list user repositories")
		return []UserRepository{}
	}

	repos := make([]UserRepository, 0, len(data))
	for _, r := range data {
		repos = append(repos, UserRepository{
			ID:          r.ID,
			Name:        r.Name,
			FullName:    r.FullName,
			Description: r.Description,
			HTMLURL:     r.HTMLURL,
			Language:    r.Language,
			Stars:       r.StargazersCount,
			UpdatedAt:   r.UpdatedAt,
			Private:     r.Private,
		})
	}
	return repos
}

func (s *GitHubService) getJSON(ctx context.Context, path string, result interface{}) error {
	resp, err := s.client.GET(path).
		Context().Set(ctx).
		Send()
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		msg, readErr := resp.Body().AsString()
		if readErr != nil {
			return fmt.Errorf("failed to read error response: %w", readErr)
		}
		return fmt.Errorf("github api error for %s: %s", path, msg)
	}

	if err := resp.Body().AsJSON(result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (s *GitHubService) getHTML(ctx context.Context, path string) (string, error) {
	resp, err := s.client.GET(path).
		Context().Set(ctx).
		Header().Set("Accept", "application/vnd.github.html+json").
		Send()
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		return "", fmt.Errorf("github api error for %s", path)
	}

	return resp.Body().AsString()
}
