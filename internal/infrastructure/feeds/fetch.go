// Package feeds implements the HTTP adapters for the three polled sources.
package feeds

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const userAgent = "patiodash/1.0"

// cacheBust appends the t=<unix-ms> query parameter the published exports
// require to defeat intermediary caching.
func cacheBust(base string, now time.Time) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid feed url %s: %w", base, err)
	}

	query := parsed.Query()
	query.Set("t", strconv.FormatInt(now.UnixMilli(), 10))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func fetchBody(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	busted, err := cacheBust(rawURL, time.Now())
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, busted, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func defaultClient(client *http.Client) *http.Client {
	if client == nil {
		return &http.Client{Timeout: 20 * time.Second}
	}
	return client
}
