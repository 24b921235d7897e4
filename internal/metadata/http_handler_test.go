package metadata

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"libcatalog/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPHandler_Reviews(t *testing.T) {
	good := &stubReviewSource{name: "goodreads-ish", review: Review{Source: "goodreads-ish", Rating: 4.2, ReviewCount: 10}}
	broken := &stubReviewSource{name: "broken", err: errors.New("upstream down")}
	handler := NewHTTPHandler(NewService(nil, []ReviewSource{good, broken}, nil))

	t.Run("returns reviews from healthy sources", func(t *testing.T) {
		r := testutil.NewRequest(http.MethodGet, "/books/"+validISBN+"/reviews", nil)
		r.SetPathValue("isbn", validISBN)
		w := httptest.NewRecorder()

		handler.Reviews(w, r)

		resp := testutil.RecordResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		data, ok := resp.Body["data"].([]any)
		require.True(t, ok)
		assert.Len(t, data, 1)
	})

	t.Run("rejects malformed isbn", func(t *testing.T) {
		r := testutil.NewRequest(http.MethodGet, "/books/banana/reviews", nil)
		r.SetPathValue("isbn", "banana")
		w := httptest.NewRecorder()

		handler.Reviews(w, r)

		resp := testutil.RecordResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHTTPHandler_AuthorInfo(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		src := &stubAuthorSource{profile: AuthorProfile{Name: "Yuval Noah Harari", Bio: "Historian."}}
		handler := NewHTTPHandler(NewService(nil, nil, src))

		r := testutil.NewRequest(http.MethodGet, "/authors/Yuval+Noah+Harari", nil)
		r.SetPathValue("name", "Yuval Noah Harari")
		w := httptest.NewRecorder()

		handler.AuthorInfo(w, r)

		resp := testutil.RecordResponse(w)
		require.Equal(t, http.StatusOK, resp.Code)
		data, ok := resp.Body["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Yuval Noah Harari", data["name"])
	})

	t.Run("not found", func(t *testing.T) {
		src := &stubAuthorSource{err: errors.New("no match")}
		handler := NewHTTPHandler(NewService(nil, nil, src))

		r := testutil.NewRequest(http.MethodGet, "/authors/nobody", nil)
		r.SetPathValue("name", "nobody")
		w := httptest.NewRecorder()

		handler.AuthorInfo(w, r)

		resp := testutil.RecordResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}
