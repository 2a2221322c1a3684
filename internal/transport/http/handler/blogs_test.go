package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-social-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBlog(t *testing.T) {
	svc := &mockBlogSvc{}
	h := NewBlogHandler(svc)
	req := domain.CreateBlogRequest{Title: "Hello", Content: "World of Go", IsPublished: true}
	svc.On("Create", mock.Anything, "alice", req).Return(&domain.Blog{BlogID: "b1", UserID: "alice"}, nil)

	rr := httptest.NewRecorder()
	h.Create(rr, jsonReq(t, http.MethodPost, "/v1/blogs", req), alice)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "b1", decodeEnvelope(t, rr)["blog"].(map[string]any)["id"])
}

func TestCreateBlog_ValidationFailure(t *testing.T) {
	svc := &mockBlogSvc{}
	h := NewBlogHandler(svc)

	rr := httptest.NewRecorder()
	h.Create(rr, jsonReq(t, http.MethodPost, "/v1/blogs", domain.CreateBlogRequest{Title: "x"}), alice)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetBlog_AnnotatedView(t *testing.T) {
	svc := &mockBlogSvc{}
	h := NewBlogHandler(svc)
	svc.On("Get", mock.Anything, "alice", "b1").Return(&domain.BlogView{Blog: domain.Blog{BlogID: "b1"}, IsLiked: true}, nil)

	rr := httptest.NewRecorder()
	h.Get(rr, withChiID(httptest.NewRequest(http.MethodGet, "/", nil), "b1"), alice)

	require.Equal(t, http.StatusOK, rr.Code)
	b := decodeEnvelope(t, rr)["blog"].(map[string]any)
	assert.Equal(t, true, b["isLiked"])
	assert.Equal(t, false, b["isSaved"])
}

func TestDeleteBlog_NotOwner(t *testing.T) {
	svc := &mockBlogSvc{}
	h := NewBlogHandler(svc)
	svc.On("Delete", mock.Anything, "alice", "b1").Return(domain.ErrForbidden)

	rr := httptest.NewRecorder()
	h.Delete(rr, withChiID(httptest.NewRequest(http.MethodDelete, "/", nil), "b1"), alice)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestListByUser_Limit(t *testing.T) {
	cases := []struct {
		query  string
		limit  int
		status int
	}{
		{"", 0, http.StatusOK},
		{"?limit=5&cursor=abc", 5, http.StatusOK},
		{"?limit=20", 20, http.StatusOK},
		{"?limit=0", 0, http.StatusBadRequest},
		{"?limit=21", 0, http.StatusBadRequest},
		{"?limit=ten", 0, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			svc := &mockBlogSvc{}
			h := NewBlogHandler(svc)
			svc.On("ListByUser", mock.Anything, "alice", "bob", tc.limit, mock.Anything).
				Return(&domain.BlogPage{Data: []domain.BlogView{}}, nil)

			rr := httptest.NewRecorder()
			h.ListByUser(rr, withChiID(httptest.NewRequest(http.MethodGet, "/v1/users/bob/blogs"+tc.query, nil), "bob"), alice)

			assert.Equal(t, tc.status, rr.Code)
			if tc.status != http.StatusOK {
				svc.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestComment_TooLong(t *testing.T) {
	svc := &mockBlogSvc{}
	h := NewBlogHandler(svc)
	svc.On("Comment", mock.Anything, "alice", "b1", mock.Anything).
		Return(nil, domain.ErrBadRequest)

	rr := httptest.NewRecorder()
	h.Comment(rr, withChiID(jsonReq(t, http.MethodPost, "/", domain.CreateCommentRequest{Message: "x"}), "b1"), alice)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListComments(t *testing.T) {
	svc := &mockBlogSvc{}
	h := NewBlogHandler(svc)
	svc.On("ListComments", mock.Anything, "b1", 0, "").
		Return(&domain.CommentPage{Data: []domain.Comment{{CommentID: "c1"}}, HasMore: false}, nil)

	rr := httptest.NewRecorder()
	h.ListComments(rr, withChiID(httptest.NewRequest(http.MethodGet, "/", nil), "b1"), alice)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeEnvelope(t, rr)
	assert.Len(t, body["data"], 1)
	assert.Equal(t, false, body["has_more"])
}
