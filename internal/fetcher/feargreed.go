package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// FearGreedFetcher implements SentimentFetcher against the alternative.me
// fear & greed API.
type FearGreedFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewFearGreedFetcher creates a sentiment fetcher, honoring an optional
// proxy like the price fetcher does.
func NewFearGreedFetcher(proxyURL string) *FearGreedFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &FearGreedFetcher{
		BaseURL: "https://api.alternative.me/fng/",
		Client: &http.Client{
			Timeout:   15 * time.Second,
			Transport: transport,
		},
	}
}

type fngResponse struct {
	Data []struct {
		Value string `json:"value"`
	} `json:"data"`
}

// FearGreedIndex returns the latest index value (0-100).
func (f *FearGreedFetcher) FearGreedIndex(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.BaseURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fear greed fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("fear greed read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fear greed: status %d", resp.StatusCode)
	}

	var parsed fngResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("fear greed decode: %w", err)
	}
	if len(parsed.Data) == 0 {
		return 0, fmt.Errorf("fear greed: empty response")
	}
	value, err := strconv.ParseFloat(parsed.Data[0].Value, 64)
	if err != nil {
		return 0, fmt.Errorf("fear greed parse value: %w", err)
	}
	return value, nil
}
