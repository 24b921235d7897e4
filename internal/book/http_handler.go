package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"libcatalog/internal/httpx"
	"libcatalog/internal/isbn"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type registerRequest struct {
	ISBN string `json:"isbn" validate:"required,isbn"`
}

// Register handles POST /books. Requires auth middleware.
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", details)
		return
	}

	b, err := h.service.Register(r.Context(), req.ISBN)
	if err != nil {
		switch {
		case errors.Is(err, isbn.ErrInvalid):
			httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ISBN", nil)
		case errors.Is(err, ErrAlreadyExists):
			httpx.JSONError(r, w, http.StatusConflict, "CONFLICT", "Book already registered", nil)
		default:
			httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	httpx.JSONCreated(r, w, b)
}

// List handles GET /books.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := Query{
		Q:      query.Get("q"),
		Status: Status(query.Get("status")),
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	params.Limit = pageSize
	params.Offset = (page - 1) * pageSize

	books, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.JSONSuccess(r, w, books, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// GetByISBN handles GET /books/{isbn}.
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	id := isbn.Normalize(r.PathValue("isbn"))
	if !isbn.Validate(id) {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ISBN", nil)
		return
	}

	b, err := h.service.GetByISBN(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(r, w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(r, w, b, nil)
}
