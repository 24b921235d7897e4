package lending

import (
	"errors"
	"net/http"

	"libcatalog/internal/book"
	"libcatalog/internal/httpx"
	"libcatalog/internal/isbn"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Checkout handles POST /books/{isbn}/checkout. The borrower is the
// authenticated user.
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathISBN(w, r)
	if !ok {
		return
	}

	l, err := h.service.Checkout(r.Context(), id, httpx.UserIDFrom(r))
	if err != nil {
		switch {
		case errors.Is(err, book.ErrNotFound):
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, ErrNotAvailable):
			httpx.JSONError(r, w, http.StatusConflict, "CONFLICT", "Book is not available", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONCreated(r, w, l)
}

// Return handles POST /books/{isbn}/return.
func (h *HTTPHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathISBN(w, r)
	if !ok {
		return
	}

	l, err := h.service.Return(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotLent):
			httpx.JSONError(r, w, http.StatusConflict, "CONFLICT", "Book is not checked out", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONSuccess(r, w, l, nil)
}

// History handles GET /books/{isbn}/lendings.
func (h *HTTPHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathISBN(w, r)
	if !ok {
		return
	}

	lendings, err := h.service.History(r.Context(), id)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if lendings == nil {
		lendings = []Lending{}
	}
	httpx.JSONSuccess(r, w, lendings, nil)
}

func pathISBN(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := r.PathValue("isbn")
	id := isbn.Normalize(raw)
	if !isbn.Validate(id) {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ISBN", nil)
		return "", false
	}
	return id, true
}
