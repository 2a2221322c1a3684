package domain

import "time"

// Notification source events.
const (
	NotificationLike    = "like"
	NotificationComment = "comment"
)

type Notification struct {
	NotificationID string    `json:"id" dynamodbav:"notification_id"`
	UserID         string    `json:"user_id" dynamodbav:"user_id"` // recipient
	ActorID        string    `json:"actor_id" dynamodbav:"actor_id"`
	Source         string    `json:"source" dynamodbav:"source"` // "like" | "comment"
	BlogID         string    `json:"blog_id" dynamodbav:"blog_id"`
	CommentID      *string   `json:"comment_id,omitempty" dynamodbav:"comment_id"`
	Seen           bool      `json:"is_seen" dynamodbav:"seen"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}
