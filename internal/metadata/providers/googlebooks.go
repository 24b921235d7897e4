// Package providers contains the external metadata source adapters. Each
// adapter owns its own mapping from the source's native response shape into
// the common metadata vocabulary, and each fails soft: transport, status and
// decode problems come back as an empty result carrying the cause for logs.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"libcatalog/internal/metadata"
)

const googleBooksBaseURL = "https://www.googleapis.com/books/v1"

// GoogleBooks adapts the Google Books volumes API. It doubles as a review
// source, using the volume's average rating and ratings count.
type GoogleBooks struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

var (
	_ metadata.Provider     = (*GoogleBooks)(nil)
	_ metadata.ReviewSource = (*GoogleBooks)(nil)
)

// NewGoogleBooks builds the adapter. The API key is optional; anonymous
// requests are allowed at a lower quota.
func NewGoogleBooks(apiKey string) *GoogleBooks {
	return &GoogleBooks{
		baseURL: googleBooksBaseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
}

func (g *GoogleBooks) Name() string { return "googlebooks" }

type googleBooksResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title         string   `json:"title"`
			Authors       []string `json:"authors"`
			Publisher     string   `json:"publisher"`
			PublishedDate string   `json:"publishedDate"`
			Description   string   `json:"description"`
			PageCount     int      `json:"pageCount"`
			Categories    []string `json:"categories"`
			AverageRating float64  `json:"averageRating"`
			RatingsCount  int      `json:"ratingsCount"`
			PreviewLink   string   `json:"previewLink"`
			InfoLink      string   `json:"infoLink"`
			ImageLinks    struct {
				Thumbnail      string `json:"thumbnail"`
				SmallThumbnail string `json:"smallThumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
		SaleInfo struct {
			Saleability string `json:"saleability"`
			ListPrice   struct {
				Amount float64 `json:"amount"`
			} `json:"listPrice"`
		} `json:"saleInfo"`
	} `json:"items"`
}

// Lookup fetches the first matching volume for the ISBN.
func (g *GoogleBooks) Lookup(ctx context.Context, isbn string) metadata.Result {
	res, err := g.fetchVolume(ctx, isbn)
	if err != nil {
		return metadata.Result{Source: g.Name(), Err: err}
	}
	if res == nil {
		return metadata.Result{Source: g.Name()}
	}

	vol := res.Items[0].VolumeInfo
	sale := res.Items[0].SaleInfo

	partial := &metadata.PartialRecord{}
	if vol.Title != "" {
		partial.Title = &vol.Title
	}
	if len(vol.Authors) > 0 {
		partial.Authors = vol.Authors
	}
	if vol.Description != "" {
		partial.Description = &vol.Description
	}
	if len(vol.Categories) > 0 {
		partial.Categories = vol.Categories
	}
	if vol.AverageRating > 0 {
		partial.AverageRating = &vol.AverageRating
	}
	if vol.PublishedDate != "" {
		partial.PublishedDate = &vol.PublishedDate
	}
	if vol.PageCount > 0 {
		partial.PageCount = &vol.PageCount
	}
	if vol.PreviewLink != "" {
		partial.PreviewLink = &vol.PreviewLink
	}
	if vol.Publisher != "" {
		partial.Publishers = []string{vol.Publisher}
	}

	// Prefer the larger thumbnail, and drop the zoom parameter for a
	// higher-quality image.
	cover := vol.ImageLinks.Thumbnail
	if cover == "" {
		cover = vol.ImageLinks.SmallThumbnail
	}
	if cover != "" {
		cover = strings.Replace(cover, "zoom=1", "zoom=0", 1)
		partial.CoverURL = &cover
	}

	if sale.ListPrice.Amount > 0 {
		partial.Price = &sale.ListPrice.Amount
	}
	if sale.Saleability != "" {
		inStock := sale.Saleability == "FOR_SALE"
		partial.InStock = &inStock
	}

	return metadata.Result{Source: g.Name(), Partial: partial}
}

// Reviews reports the volume's community rating summary.
func (g *GoogleBooks) Reviews(ctx context.Context, isbn string) (metadata.Review, error) {
	res, err := g.fetchVolume(ctx, isbn)
	if err != nil {
		return metadata.Review{}, err
	}
	if res == nil {
		return metadata.Review{}, fmt.Errorf("no volume for isbn %s", isbn)
	}

	vol := res.Items[0].VolumeInfo
	if vol.RatingsCount == 0 {
		return metadata.Review{}, fmt.Errorf("no ratings for isbn %s", isbn)
	}

	reviewURL := vol.InfoLink
	if reviewURL == "" {
		reviewURL = vol.PreviewLink
	}
	return metadata.Review{
		Source:      "Google Books",
		Rating:      vol.AverageRating,
		ReviewCount: vol.RatingsCount,
		URL:         reviewURL,
	}, nil
}

// fetchVolume returns nil, nil when the ISBN is unknown to Google Books.
func (g *GoogleBooks) fetchVolume(ctx context.Context, isbn string) (*googleBooksResponse, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/volumes?q=%s", g.baseURL, url.QueryEscape("isbn:"+isbn))
	if g.apiKey != "" {
		u += "&key=" + url.QueryEscape(g.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google books request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google books returned status %d", resp.StatusCode)
	}

	var res googleBooksResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decoding google books response: %w", err)
	}
	if res.TotalItems == 0 || len(res.Items) == 0 {
		return nil, nil
	}
	return &res, nil
}
