package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devconnect/devconnect-api/pkg/helpers"
)

// ErrUserNotFound is returned when GitHub answers non-200 for a username.
var ErrUserNotFound = errors.New("github user not found")

// Repo is the subset of GitHub repository metadata exposed to clients.
type Repo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
	CreatedAt   string `json:"created_at"`
}

// Client fetches a user's public repositories, caching responses in Redis
// to stay under GitHub's unauthenticated rate limit.
type Client struct {
	BaseURL  string
	Token    string // optional
	HTTP     *http.Client
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewClient(baseURL, token string, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		BaseURL:  baseURL,
		Token:    token,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
		Redis:    rdb,
		CacheTTL: cacheTTL,
		Logger:   logger,
	}
}

func cacheKey(username string) string {
	return "github:repos:" + username
}

// Repos returns at most 5 of the user's public repositories, most recently
// created first.
func (c *Client) Repos(ctx context.Context, username string) ([]Repo, error) {
	if c.Redis != nil {
		var cached []Repo
		hit, err := helpers.RedisGetJSON(ctx, c.Redis, cacheKey(username), &cached)
		if err != nil && c.Logger != nil {
			c.Logger.WithError(err).Warn("github cache read failed")
		}
		if hit {
			return cached, nil
		}
	}

	u := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created&direction=desc",
		c.BaseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, ErrUserNotFound
	}

	var repos []Repo
	if err := json.NewDecoder(res.Body).Decode(&repos); err != nil {
		return nil, err
	}

	if c.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, c.Redis, cacheKey(username), repos, c.CacheTTL); err != nil && c.Logger != nil {
			c.Logger.WithError(err).Warn("github cache write failed")
		}
	}
	return repos, nil
}
