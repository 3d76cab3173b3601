// Package github provides a minimal GitHub releases client.
//
// Only the release metadata the resolver consumes is modeled: the latest
// release's tag and its downloadable assets. The client makes a single
// attempt per call; deciding what to do when GitHub is unreachable is the
// caller's job.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the GitHub REST API endpoint.
	DefaultBaseURL = "https://api.github.com"
	// DefaultTimeout is the HTTP request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the User-Agent header sent with requests.
	DefaultUserAgent = "lsprov/1.0"
)

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// Release is a published GitHub release.
type Release struct {
	TagName    string  `json:"tag_name"`
	Draft      bool    `json:"draft"`
	Prerelease bool    `json:"prerelease"`
	Assets     []Asset `json:"assets"`
}

// Version returns the release version without a leading "v".
func (r *Release) Version() string {
	return strings.TrimPrefix(r.TagName, "v")
}

// Options controls release selection.
type Options struct {
	// RequireAssets rejects releases without downloadable assets.
	RequireAssets bool
	// PreRelease allows prerelease versions to be selected.
	PreRelease bool
}

// Client queries the GitHub releases API.
type Client struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

// NewClient creates a GitHub client against the public API.
func NewClient() *Client {
	return NewClientWithBaseURL(DefaultBaseURL)
}

// NewClientWithBaseURL creates a GitHub client against a custom endpoint.
// Used by tests and by hosts that proxy the GitHub API.
func NewClientWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent: DefaultUserAgent,
	}
}

// LatestRelease returns the latest published release of repo ("owner/name").
// With opts.PreRelease set, the most recently published release is returned
// whether or not it is a prerelease; otherwise prereleases are skipped.
func (c *Client) LatestRelease(ctx context.Context, repo string, opts Options) (*Release, error) {
	var release *Release
	var err error

	if opts.PreRelease {
		release, err = c.latestFromListing(ctx, repo)
	} else {
		release, err = c.latestStable(ctx, repo)
	}
	if err != nil {
		return nil, err
	}

	if opts.RequireAssets && len(release.Assets) == 0 {
		return nil, fmt.Errorf("release %s of %s has no assets", release.TagName, repo)
	}

	return release, nil
}

// latestStable uses the releases/latest endpoint, which excludes
// prereleases and drafts.
func (c *Client) latestStable(ctx context.Context, repo string) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.baseURL, repo)

	var release Release
	if err := c.getJSON(ctx, url, &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// latestFromListing lists recent releases and picks the newest non-draft,
// prereleases included.
func (c *Client) latestFromListing(ctx context.Context, repo string) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases?per_page=10", c.baseURL, repo)

	var releases []Release
	if err := c.getJSON(ctx, url, &releases); err != nil {
		return nil, err
	}

	for i := range releases {
		if !releases[i].Draft {
			return &releases[i], nil
		}
	}

	return nil, fmt.Errorf("no published release found for %s", repo)
}

func (c *Client) getJSON(ctx context.Context, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
