package interaction

import (
	"context"
	"fmt"

	"github.com/go-social-api/internal/domain"
)

// Service toggles interaction edges and reports the viewer's interaction state.
// The edge store's uniqueness constraint is the only arbiter between concurrent
// toggles; no read-before-write check decides the direction.
type Service interface {
	Toggle(ctx context.Context, actorID string, kind domain.RelationKind, targetID string) (domain.ToggleResult, error)
	// Save creates a saved-blog edge and fails with domain.ErrConflict when it exists.
	Save(ctx context.Context, actorID, blogID string) error
	// Unsave removes a saved-blog edge and fails with domain.ErrNotFound when absent.
	Unsave(ctx context.Context, actorID, blogID string) error
	Annotate(ctx context.Context, actorID string, blogs []domain.Blog) ([]domain.BlogView, error)
}

type edgeStore interface {
	Insert(ctx context.Context, kind domain.RelationKind, actorID, targetID string) (domain.InsertOutcome, error)
	Delete(ctx context.Context, kind domain.RelationKind, actorID, targetID string) (bool, error)
	ExistingTargets(ctx context.Context, kind domain.RelationKind, actorID string, targetIDs []string) (map[string]bool, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type blogStore interface {
	Get(ctx context.Context, blogID string) (*domain.Blog, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

type service struct {
	edges    edgeStore
	users    userStore
	blogs    blogStore
	notifier notifier
}

type ServiceDeps struct {
	EdgeRepo edgeStore
	UserRepo userStore
	BlogRepo blogStore
	Notifier notifier
}

func NewService(deps ServiceDeps) Service {
	return &service{
		edges:    deps.EdgeRepo,
		users:    deps.UserRepo,
		blogs:    deps.BlogRepo,
		notifier: deps.Notifier,
	}
}

func (s *service) Toggle(ctx context.Context, actorID string, kind domain.RelationKind, targetID string) (domain.ToggleResult, error) {
	ownerID, err := s.resolveTarget(ctx, actorID, kind, targetID)
	if err != nil {
		return domain.ToggleResult{}, err
	}

	outcome, err := s.edges.Insert(ctx, kind, actorID, targetID)
	switch outcome {
	case domain.Inserted:
		if kind.Notifies() && ownerID != actorID {
			s.notifier.Notify(ctx, domain.Notification{
				UserID:  ownerID,
				ActorID: actorID,
				Source:  domain.NotificationLike,
				BlogID:  targetID,
			})
		}
		return domain.ToggleResult{Kind: kind, Active: true}, nil
	case domain.AlreadyExists:
		if _, err := s.edges.Delete(ctx, kind, actorID, targetID); err != nil {
			return domain.ToggleResult{}, err
		}
		return domain.ToggleResult{Kind: kind, Active: false}, nil
	default:
		return domain.ToggleResult{}, err
	}
}

// resolveTarget checks the toggle's pre-conditions and returns the owner of the target.
func (s *service) resolveTarget(ctx context.Context, actorID string, kind domain.RelationKind, targetID string) (string, error) {
	switch kind {
	case domain.RelationFollow:
		if actorID == targetID {
			return "", fmt.Errorf("cannot follow yourself: %w", domain.ErrInvalidOperation)
		}
		u, err := s.users.Get(ctx, targetID)
		if err != nil {
			return "", err
		}
		return u.UserID, nil
	case domain.RelationBlogLike, domain.RelationBlogDislike, domain.RelationSavedBlog:
		b, err := s.visibleBlog(ctx, actorID, targetID)
		if err != nil {
			return "", err
		}
		return b.UserID, nil
	default:
		return "", fmt.Errorf("unknown relation kind %q: %w", kind, domain.ErrBadRequest)
	}
}

// visibleBlog loads a blog the actor may interact with. Drafts only exist for
// their author.
func (s *service) visibleBlog(ctx context.Context, actorID, blogID string) (*domain.Blog, error) {
	b, err := s.blogs.Get(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if !b.IsPublished && b.UserID != actorID {
		return nil, fmt.Errorf("blog not found: %w", domain.ErrNotFound)
	}
	return b, nil
}

func (s *service) Save(ctx context.Context, actorID, blogID string) error {
	if _, err := s.visibleBlog(ctx, actorID, blogID); err != nil {
		return err
	}
	outcome, err := s.edges.Insert(ctx, domain.RelationSavedBlog, actorID, blogID)
	switch outcome {
	case domain.Inserted:
		return nil
	case domain.AlreadyExists:
		return fmt.Errorf("blog already saved: %w", domain.ErrConflict)
	default:
		return err
	}
}

func (s *service) Unsave(ctx context.Context, actorID, blogID string) error {
	removed, err := s.edges.Delete(ctx, domain.RelationSavedBlog, actorID, blogID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("blog not saved: %w", domain.ErrNotFound)
	}
	return nil
}

func (s *service) Annotate(ctx context.Context, actorID string, blogs []domain.Blog) ([]domain.BlogView, error) {
	views := make([]domain.BlogView, len(blogs))
	if len(blogs) == 0 {
		return views, nil
	}
	ids := make([]string, len(blogs))
	for i, b := range blogs {
		ids[i] = b.BlogID
	}
	liked, err := s.edges.ExistingTargets(ctx, domain.RelationBlogLike, actorID, ids)
	if err != nil {
		return nil, err
	}
	disliked, err := s.edges.ExistingTargets(ctx, domain.RelationBlogDislike, actorID, ids)
	if err != nil {
		return nil, err
	}
	saved, err := s.edges.ExistingTargets(ctx, domain.RelationSavedBlog, actorID, ids)
	if err != nil {
		return nil, err
	}
	for i, b := range blogs {
		views[i] = domain.BlogView{
			Blog:       b,
			IsLiked:    liked[b.BlogID],
			IsDisliked: disliked[b.BlogID],
			IsSaved:    saved[b.BlogID],
		}
	}
	return views, nil
}
