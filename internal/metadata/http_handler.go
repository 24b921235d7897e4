package metadata

import (
	"errors"
	"net/http"

	"libcatalog/internal/httpx"
	"libcatalog/internal/isbn"
)

// HTTPHandler exposes the best-effort lookups that do not touch the store.
type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Reviews handles GET /books/{isbn}/reviews. An empty list is a normal
// response, not an error.
func (h *HTTPHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.Reviews(r.Context(), r.PathValue("isbn"))
	if err != nil {
		if errors.Is(err, isbn.ErrInvalid) {
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ISBN", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(r, w, reviews, nil)
}

// AuthorInfo handles GET /authors/{name}.
func (h *HTTPHandler) AuthorInfo(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	profile, ok := h.service.AuthorInfo(r.Context(), name)
	if !ok {
		httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Author not found", nil)
		return
	}
	httpx.JSONSuccess(r, w, profile, nil)
}
