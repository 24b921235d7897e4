package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"libcatalog/internal/metadata"
)

const isbndbBaseURL = "https://api2.isbndb.com"

// ISBNdb adapts the ISBNdb retail-catalog API. The API requires a key; the
// adapter fails closed (empty result, no error) when none is configured so
// it never blocks the overall aggregation.
type ISBNdb struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

var _ metadata.Provider = (*ISBNdb)(nil)

// NewISBNdb builds the adapter with the given API key, which may be empty.
func NewISBNdb(apiKey string) *ISBNdb {
	return &ISBNdb{
		baseURL: isbndbBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
}

func (i *ISBNdb) Name() string { return "isbndb" }

type isbndbResponse struct {
	Book struct {
		Title         string   `json:"title"`
		Authors       []string `json:"authors"`
		Publisher     string   `json:"publisher"`
		Synopsis      string   `json:"synopsis"`
		Subjects      []string `json:"subjects"`
		Pages         int      `json:"pages"`
		DatePublished string   `json:"date_published"`
		Image         string   `json:"image"`
		MSRP          float64  `json:"msrp"`
	} `json:"book"`
}

// Lookup fetches book data by ISBN. A 404 means the book is unknown to
// ISBNdb, which is an empty result rather than a failure.
func (i *ISBNdb) Lookup(ctx context.Context, isbn string) metadata.Result {
	if i.apiKey == "" {
		return metadata.Result{Source: i.Name()}
	}

	if err := i.limiter.Wait(ctx); err != nil {
		return metadata.Result{Source: i.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/book/%s", i.baseURL, isbn), nil)
	if err != nil {
		return metadata.Result{Source: i.Name(), Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Authorization", i.apiKey)

	resp, err := i.client.Do(req)
	if err != nil {
		return metadata.Result{Source: i.Name(), Err: fmt.Errorf("isbndb request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return metadata.Result{Source: i.Name()}
	}
	if resp.StatusCode != http.StatusOK {
		return metadata.Result{Source: i.Name(), Err: fmt.Errorf("isbndb returned status %d", resp.StatusCode)}
	}

	var res isbndbResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return metadata.Result{Source: i.Name(), Err: fmt.Errorf("decoding isbndb response: %w", err)}
	}

	book := res.Book
	partial := &metadata.PartialRecord{}
	if book.Title != "" {
		partial.Title = &book.Title
	}
	if len(book.Authors) > 0 {
		partial.Authors = book.Authors
	}
	if book.Synopsis != "" {
		partial.Description = &book.Synopsis
	}
	if len(book.Subjects) > 0 {
		partial.Categories = book.Subjects
	}
	if book.DatePublished != "" {
		partial.PublishedDate = &book.DatePublished
	}
	if book.Pages > 0 {
		partial.PageCount = &book.Pages
	}
	if book.Publisher != "" {
		partial.Publishers = []string{book.Publisher}
	}
	if book.Image != "" {
		partial.CoverURL = &book.Image
	}
	if book.MSRP > 0 {
		partial.Price = &book.MSRP
	}

	return metadata.Result{Source: i.Name(), Partial: partial}
}
