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

const openLibraryBaseURL = "https://openlibrary.org"

// OpenLibrary adapts the Open Library books API. It also serves as the
// author source (search-then-fetch by name) and as a review source backed
// by the work's ratings summary.
type OpenLibrary struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
}

var (
	_ metadata.Provider     = (*OpenLibrary)(nil)
	_ metadata.ReviewSource = (*OpenLibrary)(nil)
	_ metadata.AuthorSource = (*OpenLibrary)(nil)
)

// NewOpenLibrary builds the adapter. Open Library asks clients to identify
// themselves with a descriptive User-Agent.
func NewOpenLibrary(userAgent string) *OpenLibrary {
	return &OpenLibrary{
		baseURL:   openLibraryBaseURL,
		userAgent: userAgent,
		client:    &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
	}
}

func (o *OpenLibrary) Name() string { return "openlibrary" }

type openLibraryBook struct {
	Title       string `json:"title"`
	PublishDate string `json:"publish_date"`
	Authors     []struct {
		Name string `json:"name"`
	} `json:"authors"`
	Publishers []struct {
		Name string `json:"name"`
	} `json:"publishers"`
	Subjects []struct {
		Name string `json:"name"`
	} `json:"subjects"`
	Cover struct {
		Large string `json:"large"`
	} `json:"cover"`
	NumberOfPages int    `json:"number_of_pages"`
	Notes         string `json:"notes"`
	URL           string `json:"url"`
}

// Lookup fetches edition data keyed by ISBN bibkey.
func (o *OpenLibrary) Lookup(ctx context.Context, isbn string) metadata.Result {
	u := fmt.Sprintf("%s/api/books?bibkeys=ISBN:%s&format=json&jscmd=data", o.baseURL, isbn)

	var res map[string]openLibraryBook
	if err := o.getJSON(ctx, u, &res); err != nil {
		return metadata.Result{Source: o.Name(), Err: err}
	}

	book, ok := res["ISBN:"+isbn]
	if !ok {
		return metadata.Result{Source: o.Name()}
	}

	partial := &metadata.PartialRecord{}
	if book.Title != "" {
		partial.Title = &book.Title
	}
	for _, a := range book.Authors {
		if a.Name != "" {
			partial.Authors = append(partial.Authors, a.Name)
		}
	}
	if book.PublishDate != "" {
		partial.PublishedDate = &book.PublishDate
	}
	if book.NumberOfPages > 0 {
		partial.PageCount = &book.NumberOfPages
	}
	for _, p := range book.Publishers {
		if p.Name != "" {
			partial.Publishers = append(partial.Publishers, p.Name)
		}
	}
	for _, s := range book.Subjects {
		if s.Name != "" {
			partial.Categories = append(partial.Categories, s.Name)
		}
	}
	if book.Cover.Large != "" {
		partial.CoverURL = &book.Cover.Large
	}
	if book.URL != "" {
		partial.PreviewLink = &book.URL
	}

	return metadata.Result{Source: o.Name(), Partial: partial}
}

// Reviews resolves the edition to its work and reads the work's ratings
// summary.
func (o *OpenLibrary) Reviews(ctx context.Context, isbn string) (metadata.Review, error) {
	var edition struct {
		Works []struct {
			Key string `json:"key"`
		} `json:"works"`
	}
	if err := o.getJSON(ctx, fmt.Sprintf("%s/isbn/%s.json", o.baseURL, isbn), &edition); err != nil {
		return metadata.Review{}, err
	}
	if len(edition.Works) == 0 {
		return metadata.Review{}, fmt.Errorf("no work for isbn %s", isbn)
	}

	var ratings struct {
		Summary struct {
			Average float64 `json:"average"`
			Count   int     `json:"count"`
		} `json:"summary"`
	}
	workKey := edition.Works[0].Key
	if err := o.getJSON(ctx, fmt.Sprintf("%s%s/ratings.json", o.baseURL, workKey), &ratings); err != nil {
		return metadata.Review{}, err
	}
	if ratings.Summary.Count == 0 {
		return metadata.Review{}, fmt.Errorf("no ratings for isbn %s", isbn)
	}

	return metadata.Review{
		Source:      "Open Library",
		Rating:      ratings.Summary.Average,
		ReviewCount: ratings.Summary.Count,
		URL:         fmt.Sprintf("%s/isbn/%s", o.baseURL, isbn),
	}, nil
}

type openLibraryAuthor struct {
	Name      string          `json:"name"`
	BirthDate string          `json:"birth_date"`
	Bio       json.RawMessage `json:"bio"`
	Wikipedia string          `json:"wikipedia"`
	Photos    []int           `json:"photos"`
}

// AuthorInfo searches authors by name and fetches the first match. Name
// lookup is ambiguous; disambiguation is out of scope.
func (o *OpenLibrary) AuthorInfo(ctx context.Context, name string) (metadata.AuthorProfile, error) {
	var search struct {
		Docs []struct {
			Key string `json:"key"`
		} `json:"docs"`
	}
	u := fmt.Sprintf("%s/search/authors.json?q=%s", o.baseURL, url.QueryEscape(name))
	if err := o.getJSON(ctx, u, &search); err != nil {
		return metadata.AuthorProfile{}, err
	}
	if len(search.Docs) == 0 {
		return metadata.AuthorProfile{}, nil
	}

	key := strings.TrimPrefix(search.Docs[0].Key, "/authors/")
	var author openLibraryAuthor
	if err := o.getJSON(ctx, fmt.Sprintf("%s/authors/%s.json", o.baseURL, key), &author); err != nil {
		return metadata.AuthorProfile{}, err
	}

	profile := metadata.AuthorProfile{
		Name:      author.Name,
		BirthDate: author.BirthDate,
		Bio:       decodeBio(author.Bio),
		Wikipedia: author.Wikipedia,
	}
	for _, id := range author.Photos {
		if id > 0 {
			profile.PhotoURLs = append(profile.PhotoURLs, fmt.Sprintf("https://covers.openlibrary.org/a/id/%d-L.jpg", id))
		}
	}
	return profile, nil
}

// decodeBio handles the two shapes Open Library uses for author bios: a
// plain string or a {"type": ..., "value": ...} object.
func decodeBio(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value
	}
	return ""
}

func (o *OpenLibrary) getJSON(ctx context.Context, u string, target any) error {
	if err := o.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if o.userAgent != "" {
		req.Header.Set("User-Agent", o.userAgent)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("open library request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("open library returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding open library response: %w", err)
	}
	return nil
}
