// Package selfupdate checks GitHub releases for newer versions and replaces
// the running binary in place after checksum verification.
package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner           = "vinciapp"
	defaultRepo            = "vinci"
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
)

// Checker talks to the GitHub releases API for one repository.
type Checker struct {
	owner           string
	repo            string
	apiBaseURL      string
	downloadBaseURL string
	client          *http.Client
	execPath        func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(url string) Option {
	return func(c *Checker) { c.apiBaseURL = url }
}

// WithDownloadBaseURL overrides the release download base URL.
func WithDownloadBaseURL(url string) Option {
	return func(c *Checker) { c.downloadBaseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Checker) { c.client = client }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// withExecPath overrides executable path resolution, for tests.
func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

// NewChecker creates a Checker for the vinci repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:           defaultOwner,
		repo:            defaultRepo,
		apiBaseURL:      defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		client:          &http.Client{Timeout: 60 * time.Second},
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput carries the currently running version.
type CheckInput struct {
	Version string
}

// CheckResult describes the latest published release.
type CheckResult struct {
	UpdateAvailable bool
	LatestVersion   string
	ReleaseURL      string
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it against the running
// version using semver ordering.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from releases API", resp.StatusCode)
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release response: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release response missing tag_name")
	}

	return &CheckResult{
		UpdateAvailable: semver.Compare(release.TagName, input.Version) > 0,
		LatestVersion:   release.TagName,
		ReleaseURL:      release.HTMLURL,
	}, nil
}
