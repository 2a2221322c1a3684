package domain

import "time"

// RelationKind names one uniqueness-constrained interaction edge table.
type RelationKind string

const (
	RelationFollow      RelationKind = "follow"
	RelationBlogLike    RelationKind = "blogLike"
	RelationBlogDislike RelationKind = "blogDislike"
	RelationSavedBlog   RelationKind = "savedBlog"
)

// TargetsBlog reports whether the edge target is a blog (otherwise a user).
func (k RelationKind) TargetsBlog() bool { return k != RelationFollow }

// Notifies reports whether activating the edge notifies the target's owner.
func (k RelationKind) Notifies() bool { return k == RelationBlogLike }

// Edge is a single (actor, target) row of a relation table.
type Edge struct {
	ActorID   string    `dynamodbav:"actor_id"`
	TargetID  string    `dynamodbav:"target_id"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

// InsertOutcome tags the result of an edge insertion.
type InsertOutcome int

const (
	// InsertFailed carries the cause in the accompanying error.
	InsertFailed InsertOutcome = iota
	Inserted
	AlreadyExists
)

// ToggleResult reports the state a toggle left the edge in.
type ToggleResult struct {
	Kind   RelationKind `json:"kind"`
	Active bool         `json:"active"`
}
