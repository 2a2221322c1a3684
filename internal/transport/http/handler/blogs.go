package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-social-api/internal/application/blog"
	"github.com/go-social-api/internal/domain"
)

// BlogHandler handles blog and comment endpoints.
type BlogHandler struct {
	svc blog.Service
}

func NewBlogHandler(svc blog.Service) *BlogHandler { return &BlogHandler{svc: svc} }

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	var req domain.CreateBlogRequest
	if !decodeBody(w, r, &req) {
		return
	}
	b, err := h.svc.Create(r.Context(), p.UserID, req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, BlogEnvelope{Envelope: ok("Blog created"), Blog: b})
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	v, err := h.svc.Get(r.Context(), p.UserID, chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BlogEnvelope{Envelope: ok("Blog fetched"), Blog: v})
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	if err := h.svc.Delete(r.Context(), p.UserID, chi.URLParam(r, "id")); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ok("Blog deleted"))
}

func (h *BlogHandler) ListByUser(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	limit, valid := parseLimit(r)
	if !valid {
		writeError(w, http.StatusBadRequest, "limit must be between 1 and 20")
		return
	}
	page, err := h.svc.ListByUser(r.Context(), p.UserID, chi.URLParam(r, "id"), limit, r.URL.Query().Get("cursor"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BlogPageEnvelope{Envelope: ok("Blogs fetched"), BlogPage: page})
}

func (h *BlogHandler) Comment(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	var req domain.CreateCommentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := h.svc.Comment(r.Context(), p.UserID, chi.URLParam(r, "id"), req.Message)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, CommentEnvelope{Envelope: ok("Comment added"), Comment: c})
}

func (h *BlogHandler) ListComments(w http.ResponseWriter, r *http.Request, _ domain.Principal) {
	limit, valid := parseLimit(r)
	if !valid {
		writeError(w, http.StatusBadRequest, "limit must be between 1 and 20")
		return
	}
	page, err := h.svc.ListComments(r.Context(), chi.URLParam(r, "id"), limit, r.URL.Query().Get("cursor"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, CommentPageEnvelope{Envelope: ok("Comments fetched"), CommentPage: page})
}
