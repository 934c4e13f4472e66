package market

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

const requestTimeout = 5 * time.Second

// tickerResponse covers the two known ticker payloads: the spot v1 shape
// with data.close and the legacy shape with ticker.last. Numeric fields
// arrive either as strings or as numbers depending on the shape.
type tickerResponse struct {
	Data struct {
		Close any `json:"close"`
	} `json:"data"`
	Ticker struct {
		Last any `json:"last"`
	} `json:"ticker"`
}

// Client fetches last prices from Bitget-style public market endpoints.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Ticker returns the latest price for symbol. data.close is tried first,
// ticker.last second; anything else is an error. No retries — the caller
// decides what a failed tick means.
func (c *Client) Ticker(ctx context.Context, symbol string) (float64, error) {
	reqURL := c.baseURL + "/api/spot/v1/market/ticker?symbol=" + url.QueryEscape(symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, errors.Wrap(err, "build ticker request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "ticker request")
	}
	defer resp.Body.Close()

	rb, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return 0, fmt.Errorf("http %d: %s", resp.StatusCode, string(rb))
	}

	var tr tickerResponse
	if err := sonic.Unmarshal(rb, &tr); err != nil {
		return 0, errors.Wrap(err, "decode ticker")
	}

	if px, ok := toFloat(tr.Data.Close); ok {
		return px, nil
	}
	if px, ok := toFloat(tr.Ticker.Last); ok {
		return px, nil
	}
	return 0, errors.New("unexpected ticker format")
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	case float64:
		return x, true
	}
	return 0, false
}
