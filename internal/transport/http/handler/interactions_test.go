package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-social-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var alice = domain.Principal{UserID: "alice"}

func TestToggle_ReportsState(t *testing.T) {
	svc := &mockInteractionSvc{}
	h := NewInteractionHandler(svc)
	svc.On("Toggle", mock.Anything, "alice", domain.RelationBlogLike, "b1").
		Return(domain.ToggleResult{Kind: domain.RelationBlogLike, Active: true}, nil).Once()
	svc.On("Toggle", mock.Anything, "alice", domain.RelationBlogLike, "b1").
		Return(domain.ToggleResult{Kind: domain.RelationBlogLike, Active: false}, nil).Once()

	like := h.Toggle(domain.RelationBlogLike)

	rr := httptest.NewRecorder()
	like(rr, withChiID(httptest.NewRequest(http.MethodPut, "/v1/blogs/b1/like", nil), "b1"), alice)
	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeEnvelope(t, rr)
	assert.Equal(t, true, body["active"])
	assert.Equal(t, "blogLike", body["kind"])
	assert.Equal(t, "Blog liked", body["message"])

	rr = httptest.NewRecorder()
	like(rr, withChiID(httptest.NewRequest(http.MethodPut, "/v1/blogs/b1/like", nil), "b1"), alice)
	body = decodeEnvelope(t, rr)
	assert.Equal(t, false, body["active"])
	assert.Equal(t, "Like removed", body["message"])
}

func TestToggle_SelfFollowIsBadRequest(t *testing.T) {
	svc := &mockInteractionSvc{}
	h := NewInteractionHandler(svc)
	svc.On("Toggle", mock.Anything, "alice", domain.RelationFollow, "alice").
		Return(domain.ToggleResult{}, domain.ErrInvalidOperation)

	rr := httptest.NewRecorder()
	h.Toggle(domain.RelationFollow)(rr, withChiID(httptest.NewRequest(http.MethodPut, "/", nil), "alice"), alice)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestToggle_UnknownTargetIsNotFound(t *testing.T) {
	svc := &mockInteractionSvc{}
	h := NewInteractionHandler(svc)
	svc.On("Toggle", mock.Anything, "alice", domain.RelationBlogDislike, "missing").
		Return(domain.ToggleResult{}, domain.ErrNotFound)

	rr := httptest.NewRecorder()
	h.Toggle(domain.RelationBlogDislike)(rr, withChiID(httptest.NewRequest(http.MethodPut, "/", nil), "missing"), alice)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSave_DuplicateIsConflict(t *testing.T) {
	svc := &mockInteractionSvc{}
	h := NewInteractionHandler(svc)
	svc.On("Save", mock.Anything, "alice", "b1").Return(nil).Once()
	svc.On("Save", mock.Anything, "alice", "b1").Return(domain.ErrConflict).Once()

	rr := httptest.NewRecorder()
	h.Save(rr, withChiID(httptest.NewRequest(http.MethodPost, "/", nil), "b1"), alice)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	h.Save(rr, withChiID(httptest.NewRequest(http.MethodPost, "/", nil), "b1"), alice)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestUnsave_NotSavedIsNotFound(t *testing.T) {
	svc := &mockInteractionSvc{}
	h := NewInteractionHandler(svc)
	svc.On("Unsave", mock.Anything, "alice", "b1").Return(domain.ErrNotFound)

	rr := httptest.NewRecorder()
	h.Unsave(rr, withChiID(httptest.NewRequest(http.MethodDelete, "/", nil), "b1"), alice)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
