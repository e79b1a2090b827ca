package fbref

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Client fetches FBref pages and hands back parsed documents. FBref has no
// JSON API; everything is scraped out of HTML tables.
type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	return &Client{
		http: resty.New().SetTimeout(10 * time.Second),
	}
}

func (c *Client) Document(url string) (*goquery.Document, error) {
	res, err := c.http.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("error parsing page: %w", err)
	}
	return doc, nil
}
