// Package remotecsv fetches the league's published CSV files over HTTP and
// keeps a local copy of each, overwriting whatever was there before. There
// is no retry policy: a failed fetch is reported and the previous local copy
// is left alone.
package remotecsv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Where the league currently publishes its CSV files.
const repoBase = "https://raw.githubusercontent.com/coach77777/straight-pool-android/main/app/src/main/assets/remote"

var DefaultLinks = map[string]string{
	"players.csv":  repoBase + "/players.csv",
	"matches.csv":  repoBase + "/matches_3.csv",
	"schedule.csv": repoBase + "/schedule.csv",
}

type Client interface {
	// FetchText GETs the url, saves the body under dataDir (keyed by the
	// URL's file name) and returns it. Non-200 responses are errors.
	FetchText(ctx context.Context, fetchURL string) (string, error)
	// FetchAll downloads every named resource concurrently, saving each as
	// its map key. The first failure cancels the rest.
	FetchAll(ctx context.Context, links map[string]string) error
}

type client struct {
	dataDir    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New(dataDir string) (Client, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating data dir %s: %w", dataDir, err)
	}
	c := &client{
		dataDir: dataDir,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		// Keep bulk refreshes polite toward the file host.
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
	}
	return c, nil
}

func (c *client) FetchText(ctx context.Context, fetchURL string) (string, error) {
	u, err := url.Parse(fetchURL)
	if err != nil {
		return "", fmt.Errorf("error parsing url %s: %w", fetchURL, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		name = "download.csv"
	}
	return c.fetch(ctx, fetchURL, name)
}

func (c *client) FetchAll(ctx context.Context, links map[string]string) error {
	g, ctx := errgroup.WithContext(ctx)
	for name, link := range links {
		name, link := name, link
		g.Go(func() error {
			if _, err := c.fetch(ctx, link, name); err != nil {
				return fmt.Errorf("error refreshing %s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (c *client) fetch(ctx context.Context, fetchURL, name string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return "", fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	target := filepath.Join(c.dataDir, name)
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return "", fmt.Errorf("error writing local copy %s: %w", target, err)
	}

	return string(body), nil
}
