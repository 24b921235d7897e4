package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gbVolumePayload = `{
	"totalItems": 1,
	"items": [{
		"volumeInfo": {
			"title": "The Body Keeps the Score",
			"authors": ["Bessel van der Kolk"],
			"publisher": "Penguin Books",
			"publishedDate": "2015-09-08",
			"description": "Trauma and its treatment.",
			"pageCount": 464,
			"categories": ["Psychology"],
			"averageRating": 4.5,
			"ratingsCount": 3120,
			"previewLink": "https://books.google.com/preview",
			"infoLink": "https://books.google.com/info",
			"imageLinks": {"thumbnail": "https://books.google.com/cover?zoom=1"}
		},
		"saleInfo": {
			"saleability": "FOR_SALE",
			"listPrice": {"amount": 19.0}
		}
	}]
}`

func newGoogleBooks(t *testing.T, handler http.HandlerFunc) *GoogleBooks {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	g := NewGoogleBooks("")
	g.baseURL = server.URL
	g.client = server.Client()
	return g
}

func TestGoogleBooks_Lookup(t *testing.T) {
	g := newGoogleBooks(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "isbn:9780143127741", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(gbVolumePayload))
	})

	res := g.Lookup(context.Background(), "9780143127741")

	require.NoError(t, res.Err)
	require.False(t, res.Empty())
	p := res.Partial
	assert.Equal(t, "The Body Keeps the Score", *p.Title)
	assert.Equal(t, []string{"Bessel van der Kolk"}, p.Authors)
	assert.Equal(t, []string{"Penguin Books"}, p.Publishers)
	assert.Equal(t, 464, *p.PageCount)
	assert.Equal(t, 4.5, *p.AverageRating)
	assert.Equal(t, "https://books.google.com/preview", *p.PreviewLink)
	assert.Equal(t, "https://books.google.com/cover?zoom=0", *p.CoverURL)
	assert.Equal(t, 19.0, *p.Price)
	assert.True(t, *p.InStock)
}

func TestGoogleBooks_Lookup_NotFound(t *testing.T) {
	g := newGoogleBooks(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	})

	res := g.Lookup(context.Background(), "9780143127741")

	assert.NoError(t, res.Err)
	assert.True(t, res.Empty())
}

func TestGoogleBooks_Lookup_ServerError(t *testing.T) {
	g := newGoogleBooks(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	res := g.Lookup(context.Background(), "9780143127741")

	assert.Error(t, res.Err)
	assert.True(t, res.Empty())
}

func TestGoogleBooks_Lookup_BadJSON(t *testing.T) {
	g := newGoogleBooks(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": `))
	})

	res := g.Lookup(context.Background(), "9780143127741")

	assert.Error(t, res.Err)
	assert.True(t, res.Empty())
}

func TestGoogleBooks_Reviews(t *testing.T) {
	g := newGoogleBooks(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(gbVolumePayload))
	})

	rev, err := g.Reviews(context.Background(), "9780143127741")

	require.NoError(t, err)
	assert.Equal(t, "Google Books", rev.Source)
	assert.Equal(t, 4.5, rev.Rating)
	assert.Equal(t, 3120, rev.ReviewCount)
	assert.Equal(t, "https://books.google.com/info", rev.URL)
}

func TestGoogleBooks_Reviews_NoRatings(t *testing.T) {
	g := newGoogleBooks(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 1, "items": [{"volumeInfo": {"title": "x"}}]}`))
	})

	_, err := g.Reviews(context.Background(), "9780143127741")

	assert.Error(t, err)
}
