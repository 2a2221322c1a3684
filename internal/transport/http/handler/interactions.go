package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-social-api/internal/application/interaction"
	"github.com/go-social-api/internal/domain"
	"github.com/go-social-api/internal/transport/http/middleware"
)

// InteractionHandler handles follow, like, dislike and save endpoints.
type InteractionHandler struct {
	svc interaction.Service
}

func NewInteractionHandler(svc interaction.Service) *InteractionHandler {
	return &InteractionHandler{svc: svc}
}

var toggleMessages = map[domain.RelationKind][2]string{
	domain.RelationFollow:      {"Unfollowed", "Followed"},
	domain.RelationBlogLike:    {"Like removed", "Blog liked"},
	domain.RelationBlogDislike: {"Dislike removed", "Blog disliked"},
	domain.RelationSavedBlog:   {"Blog unsaved", "Blog saved"},
}

// Toggle returns a handler flipping the caller's kind edge to the {id} target.
func (h *InteractionHandler) Toggle(kind domain.RelationKind) middleware.AuthedHandler {
	return func(w http.ResponseWriter, r *http.Request, p domain.Principal) {
		res, err := h.svc.Toggle(r.Context(), p.UserID, kind, chi.URLParam(r, "id"))
		if err != nil {
			httpError(w, r, err)
			return
		}
		msg := toggleMessages[kind][0]
		if res.Active {
			msg = toggleMessages[kind][1]
		}
		writeJSON(w, http.StatusOK, ToggleEnvelope{Envelope: ok(msg), ToggleResult: res})
	}
}

func (h *InteractionHandler) Save(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	if err := h.svc.Save(r.Context(), p.UserID, chi.URLParam(r, "id")); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, ok("Blog saved"))
}

func (h *InteractionHandler) Unsave(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	if err := h.svc.Unsave(r.Context(), p.UserID, chi.URLParam(r, "id")); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ok("Blog unsaved"))
}
