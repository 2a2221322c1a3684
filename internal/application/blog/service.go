package blog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-social-api/internal/domain"
	"github.com/go-social-api/internal/pkg/id"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 20
	maxCommentLen   = 500
)

type Service interface {
	Create(ctx context.Context, authorID string, req domain.CreateBlogRequest) (*domain.Blog, error)
	Get(ctx context.Context, viewerID, blogID string) (*domain.BlogView, error)
	ListByUser(ctx context.Context, viewerID, userID string, limit int, cursor string) (*domain.BlogPage, error)
	Delete(ctx context.Context, actorID, blogID string) error
	Comment(ctx context.Context, actorID, blogID, message string) (*domain.Comment, error)
	ListComments(ctx context.Context, blogID string, limit int, cursor string) (*domain.CommentPage, error)
}

type blogStore interface {
	Put(ctx context.Context, b *domain.Blog) error
	Get(ctx context.Context, blogID string) (*domain.Blog, error)
	Delete(ctx context.Context, blogID string) error
	IncrementViews(ctx context.Context, blogID string) error
	ListPublishedByUser(ctx context.Context, userID string, limit int32, cursor string) ([]domain.Blog, string, error)
}

type commentStore interface {
	Put(ctx context.Context, c *domain.Comment) error
	ListByBlog(ctx context.Context, blogID string, limit int32, cursor string) ([]domain.Comment, string, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type edgeCleaner interface {
	DeleteByTarget(ctx context.Context, kind domain.RelationKind, targetID string) error
}

type annotator interface {
	Annotate(ctx context.Context, actorID string, blogs []domain.Blog) ([]domain.BlogView, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type service struct {
	blogs     blogStore
	comments  commentStore
	users     userStore
	edges     edgeCleaner
	annotator annotator
	notifier  notifier
}

type ServiceDeps struct {
	BlogRepo    blogStore
	CommentRepo commentStore
	UserRepo    userStore
	EdgeRepo    edgeCleaner
	Annotator   annotator
	Notifier    notifier
}

func NewService(deps ServiceDeps) Service {
	return &service{
		blogs:     deps.BlogRepo,
		comments:  deps.CommentRepo,
		users:     deps.UserRepo,
		edges:     deps.EdgeRepo,
		annotator: deps.Annotator,
		notifier:  deps.Notifier,
	}
}

func (s *service) Create(ctx context.Context, authorID string, req domain.CreateBlogRequest) (*domain.Blog, error) {
	now := time.Now().UTC().Truncate(time.Second)
	b := &domain.Blog{
		BlogID:      id.New(),
		UserID:      authorID,
		Title:       strings.TrimSpace(req.Title),
		Content:     req.Content,
		Thumbnail:   req.Thumbnail,
		IsPublished: req.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.blogs.Put(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Get(ctx context.Context, viewerID, blogID string) (*domain.BlogView, error) {
	b, err := s.blogs.Get(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !b.IsPublished && b.UserID != viewerID {
		return nil, fmt.Errorf("blog not found: %w", domain.ErrNotFound)
	}
	if b.UserID != viewerID {
		if err := s.blogs.IncrementViews(ctx, blogID); err != nil {
			slog.Warn("failed to increment view count", "blog_id", blogID, "err", err)
		} else {
			b.ViewCount++
		}
	}
	views, err := s.annotator.Annotate(ctx, viewerID, []domain.Blog{*b})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *service) ListByUser(ctx context.Context, viewerID, userID string, limit int, cursor string) (*domain.BlogPage, error) {
	if _, err := s.users.Get(ctx, userID); err != nil {
		return nil, err
	}
	blogs, next, err := s.blogs.ListPublishedByUser(ctx, userID, int32(clampLimit(limit)), cursor)
	if err != nil {
		return nil, err
	}
	views, err := s.annotator.Annotate(ctx, viewerID, blogs)
	if err != nil {
		return nil, err
	}
	return &domain.BlogPage{Data: views, NextCursor: next, HasMore: next != ""}, nil
}

func (s *service) Delete(ctx context.Context, actorID, blogID string) error {
	b, err := s.blogs.Get(ctx, blogID)
	if err != nil {
		return err
	}
	if b.UserID != actorID {
		return fmt.Errorf("not the blog owner: %w", domain.ErrForbidden)
	}
	if err := s.blogs.Delete(ctx, blogID); err != nil {
		return err
	}
	for _, kind := range []domain.RelationKind{domain.RelationBlogLike, domain.RelationBlogDislike, domain.RelationSavedBlog} {
		if err := s.edges.DeleteByTarget(ctx, kind, blogID); err != nil {
			slog.Warn("failed to remove edges of deleted blog", "blog_id", blogID, "kind", kind, "err", err)
		}
	}
	return nil
}

func (s *service) Comment(ctx context.Context, actorID, blogID, message string) (*domain.Comment, error) {
	message = strings.TrimSpace(message)
	if n := utf8.RuneCountInString(message); n == 0 || n > maxCommentLen {
		return nil, fmt.Errorf("message must be 1 to %d characters: %w", maxCommentLen, domain.ErrBadRequest)
	}
	b, err := s.blogs.Get(ctx, blogID)
	if err != nil {
		return nil, err
	}
	c := &domain.Comment{
		CommentID: id.New(),
		BlogID:    blogID,
		UserID:    actorID,
		Message:   message,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := s.comments.Put(ctx, c); err != nil {
		return nil, err
	}
	if b.UserID != actorID {
		commentID := c.CommentID
		s.notifier.Notify(ctx, domain.Notification{
			UserID:    b.UserID,
			ActorID:   actorID,
			Source:    domain.NotificationComment,
			BlogID:    blogID,
			CommentID: &commentID,
		})
	}
	return c, nil
}

func (s *service) ListComments(ctx context.Context, blogID string, limit int, cursor string) (*domain.CommentPage, error) {
	if _, err := s.blogs.Get(ctx, blogID); err != nil {
		return nil, err
	}
	comments, next, err := s.comments.ListByBlog(ctx, blogID, int32(clampLimit(limit)), cursor)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return &domain.CommentPage{Data: comments, NextCursor: next, HasMore: next != ""}, nil
}

// clampLimit maps a requested page size onto [1, MaxPageSize], defaulting when unset.
func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}
