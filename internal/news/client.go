package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"paper_trader/internal/models"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

const (
	everythingURL  = "https://newsapi.org/v2/everything"
	requestTimeout = 5 * time.Second
)

type articlesResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Client fetches recent headlines from a NewsAPI-shaped endpoint.
// A zero API key means headlines are simply unavailable.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: everythingURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

func (c *Client) Configured() bool { return c != nil && c.apiKey != "" }

// Headlines returns up to limit articles matching query, newest first.
func (c *Client) Headlines(ctx context.Context, query string, limit int) ([]models.Headline, error) {
	if !c.Configured() {
		return nil, nil
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("pageSize", strconv.Itoa(limit))
	q.Set("sortBy", "publishedAt")
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build news request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "news request")
	}
	defer resp.Body.Close()

	rb, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, string(rb))
	}

	var ar articlesResponse
	if err := sonic.Unmarshal(rb, &ar); err != nil {
		return nil, errors.Wrap(err, "decode articles")
	}

	out := make([]models.Headline, 0, len(ar.Articles))
	for _, a := range ar.Articles {
		// a zero PublishedAt keeps the headline but with negligible weight
		ts, _ := time.Parse(time.RFC3339, a.PublishedAt)
		out = append(out, models.Headline{
			Title:       a.Title,
			Description: a.Description,
			PublishedAt: ts,
		})
	}
	return out, nil
}
