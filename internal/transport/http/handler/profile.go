package handler

import (
	"net/http"

	"github.com/go-social-api/internal/application/profile"
	"github.com/go-social-api/internal/domain"
)

const maxPhotoBytes = 5 << 20

// ProfileHandler handles profile photo endpoints.
type ProfileHandler struct {
	svc profile.Service
}

func NewProfileHandler(svc profile.Service) *ProfileHandler { return &ProfileHandler{svc: svc} }

func (h *ProfileHandler) ChangePhoto(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes+(1<<20))
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, header, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing photo field")
		return
	}
	defer f.Close()
	if header.Size > maxPhotoBytes {
		writeError(w, http.StatusBadRequest, "photo too large")
		return
	}

	key, err := h.svc.ChangePhoto(r.Context(), p.UserID, f)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PhotoEnvelope{Envelope: ok("Profile photo updated"), Key: key})
}

func (h *ProfileHandler) DeletePhoto(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	if err := h.svc.DeletePhoto(r.Context(), p.UserID); err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ok("Profile photo removed"))
}

func (h *ProfileHandler) PhotoURL(w http.ResponseWriter, r *http.Request, p domain.Principal) {
	url, err := h.svc.PhotoURL(r.Context(), p.UserID)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, PhotoEnvelope{Envelope: ok("Profile photo URL"), URL: url})
}
