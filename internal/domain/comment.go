package domain

import "time"

type Comment struct {
	CommentID string    `json:"id" dynamodbav:"comment_id"`
	BlogID    string    `json:"blog_id" dynamodbav:"blog_id"`
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	Message   string    `json:"message" dynamodbav:"message"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}

type CreateCommentRequest struct {
	Message string `json:"message" validate:"required"`
}

type CommentPage struct {
	Data       []Comment `json:"data"`
	NextCursor string    `json:"next_cursor,omitempty"`
	HasMore    bool      `json:"has_more"`
}
