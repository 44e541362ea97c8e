package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"bookbrowser/internal/httpx"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

type HTTPHandler struct {
	svc    *Service
	logger *slog.Logger
}

func NewHTTPHandler(svc *Service, logger *slog.Logger) *HTTPHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHandler{svc: svc, logger: logger}
}

// Routes mounts the catalog endpoints on r.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Get("/search", h.Search)
	r.Get("/works/{id}", h.GetWork)
	r.Get("/authors/{id}", h.GetAuthor)
	r.Get("/authors/{id}/works", h.GetAuthorWorks)
}

type searchRequest struct {
	Query string `query:"query" validate:"notblank,max=200"`
	Type  string `query:"type" validate:"omitempty,oneof=title author"`
}

type pathParams struct {
	ID string `query:"id" validate:"catalogid"`
}

// idParam reads {id} and answers 400 itself when it is not a catalog id.
func idParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	p := pathParams{ID: chi.URLParam(r, "id")}
	if details := httpx.ValidateStruct(p); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid identifier", details)
		return "", false
	}
	return p.ID, true
}

// AuthorWorksResponse is the body of GET /authors/{id}/works.
type AuthorWorksResponse struct {
	Author *AuthorRef    `json:"author,omitempty"`
	Works  []WorkSummary `json:"works"`
}

// Search handles GET /search
// @Summary Search the catalog
// @Description Search works by title or authors by name
// @Tags catalog
// @Produce json
// @Param query query string true "Search text"
// @Param type query string false "title or author" default(title)
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /search [get]
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	req := searchRequest{
		Query: r.URL.Query().Get("query"),
		Type:  NormalizeSearchKind(r.URL.Query().Get("type")),
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ARGUMENT", "Invalid search parameters", details)
		return
	}
	kind := KindTitle
	if req.Type != "" {
		kind = SearchKind(req.Type)
	}

	hits, err := h.svc.Search(r.Context(), req.Query, kind)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, hits, map[string]any{
		"type":  kind,
		"count": len(hits),
	})
}

// GetWork handles GET /works/{id}
// @Summary Get work detail
// @Description Aggregated work view with author, rating and recommendations
// @Tags catalog
// @Produce json
// @Param id path string true "Work id, e.g. OL45804W"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /works/{id} [get]
func (h *HTTPHandler) GetWork(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.GetWorkDetail(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, detail, nil)
}

// GetAuthor handles GET /authors/{id}
// @Summary Get author
// @Tags catalog
// @Produce json
// @Param id path string true "Author id, e.g. OL26320A"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /authors/{id} [get]
func (h *HTTPHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	author, err := h.svc.GetAuthor(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, author, nil)
}

// GetAuthorWorks handles GET /authors/{id}/works
// @Summary List an author's works
// @Description The author header is best effort and omitted when unavailable
// @Tags catalog
// @Produce json
// @Param id path string true "Author id, e.g. OL26320A"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /authors/{id}/works [get]
func (h *HTTPHandler) GetAuthorWorks(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var resp AuthorWorksResponse
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		author, err := h.svc.GetAuthor(ctx, id)
		if err != nil {
			h.logger.DebugContext(ctx, "author header unavailable", "author_id", id, "error", err)
			return nil
		}
		resp.Author = &author
		return nil
	})
	g.Go(func() error {
		works, err := h.svc.GetAuthorWorks(ctx, id)
		resp.Works = works
		return err
	})
	if err := g.Wait(); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, resp, map[string]any{"count": len(resp.Works)})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error(), nil)
	case errors.Is(err, ErrWorkNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "WORK_NOT_FOUND", "Work not found", nil)
	case errors.Is(err, ErrAuthorNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "AUTHOR_NOT_FOUND", "Author not found", nil)
	case errors.Is(err, ErrUpstream):
		h.logger.WarnContext(r.Context(), "catalog upstream failure", "path", r.URL.Path, "error", err)
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", "The catalog is unavailable", nil)
	case errors.Is(err, context.Canceled):
		// Client went away; nobody is reading the response.
		h.logger.DebugContext(r.Context(), "request cancelled", "path", r.URL.Path)
	case errors.Is(err, context.DeadlineExceeded):
		httpx.JSONError(w, r, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "The catalog did not answer in time", nil)
	default:
		h.logger.ErrorContext(r.Context(), "unexpected catalog error", "path", r.URL.Path, "error", err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
