package lending

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"libcatalog/internal/auth"
	"libcatalog/internal/book"
	"libcatalog/internal/httpx"
	"libcatalog/internal/testutil"
)

const testISBN = "9780143127741"

func newHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := NewMockRepository(ctrl)
	return NewHTTPHandler(NewService(repo)), repo
}

func checkoutRequest(isbn string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/books/"+isbn+"/checkout", nil)
	r.SetPathValue("isbn", isbn)
	return r.WithContext(httpx.ContextWithUser(r.Context(), "user-7", httpx.RoleMember))
}

func TestHTTPHandler_Checkout(t *testing.T) {
	t.Run("success creates an open lending", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().Checkout(gomock.Any(), testISBN, "user-7").Return(Lending{
			ID:           "l-1",
			BookISBN:     testISBN,
			UserID:       "user-7",
			CheckedOutAt: time.Now(),
		}, nil)

		w := httptest.NewRecorder()
		handler.Checkout(w, checkoutRequest(testISBN))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "returned_at")
	})

	t.Run("already checked out", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().Checkout(gomock.Any(), testISBN, "user-7").Return(Lending{}, ErrNotAvailable)

		w := httptest.NewRecorder()
		handler.Checkout(w, checkoutRequest(testISBN))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("unknown book", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().Checkout(gomock.Any(), testISBN, "user-7").Return(Lending{}, book.ErrNotFound)

		w := httptest.NewRecorder()
		handler.Checkout(w, checkoutRequest(testISBN))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid isbn", func(t *testing.T) {
		handler, _ := newHandler(t)

		w := httptest.NewRecorder()
		handler.Checkout(w, checkoutRequest("999"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_Return(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, repo := newHandler(t)
		returned := time.Now()
		repo.EXPECT().Return(gomock.Any(), testISBN).Return(Lending{
			ID:           "l-1",
			BookISBN:     testISBN,
			UserID:       "user-7",
			CheckedOutAt: returned.Add(-48 * time.Hour),
			ReturnedAt:   &returned,
		}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books/"+testISBN+"/return", nil)
		r.SetPathValue("isbn", testISBN)
		handler.Return(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "returned_at")
	})

	t.Run("not checked out", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().Return(gomock.Any(), testISBN).Return(Lending{}, ErrNotLent)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books/"+testISBN+"/return", nil)
		r.SetPathValue("isbn", testISBN)
		handler.Return(w, r)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHTTPHandler_History(t *testing.T) {
	t.Run("empty history is an empty list", func(t *testing.T) {
		handler, repo := newHandler(t)
		repo.EXPECT().ListByISBN(gomock.Any(), testISBN).Return(nil, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books/"+testISBN+"/lendings", nil)
		r.SetPathValue("isbn", testISBN)
		handler.History(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})
}

func TestHTTPHandler_Checkout_AuthGate(t *testing.T) {
	const secret = "test-secret"

	handler, repo := newHandler(t)
	gated := auth.Middleware(secret)(http.HandlerFunc(handler.Checkout))

	t.Run("valid token reaches the handler", func(t *testing.T) {
		repo.EXPECT().Checkout(gomock.Any(), testISBN, "user-7").Return(Lending{
			ID:           "l-2",
			BookISBN:     testISBN,
			UserID:       "user-7",
			CheckedOutAt: time.Now(),
		}, nil)

		token := testutil.GenerateTestToken(secret, "user-7", httpx.RoleMember)
		r := testutil.NewRequestWithAuth(http.MethodPost, "/books/"+testISBN+"/checkout", nil, token)
		r.SetPathValue("isbn", testISBN)
		w := httptest.NewRecorder()

		gated.ServeHTTP(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := testutil.GenerateExpiredToken(secret, "user-7", httpx.RoleMember)
		r := testutil.NewRequestWithAuth(http.MethodPost, "/books/"+testISBN+"/checkout", nil, token)
		r.SetPathValue("isbn", testISBN)
		w := httptest.NewRecorder()

		gated.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
