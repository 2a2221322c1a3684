package domain

import "time"

type Blog struct {
	BlogID      string    `json:"id" dynamodbav:"blog_id"`
	UserID      string    `json:"user_id" dynamodbav:"user_id"`
	Title       string    `json:"title" dynamodbav:"title"`
	Content     string    `json:"content" dynamodbav:"content"`
	Thumbnail   *string   `json:"thumbnail" dynamodbav:"thumbnail"`
	IsPublished bool      `json:"is_published" dynamodbav:"is_published"`
	ViewCount   int64     `json:"view_count" dynamodbav:"view_count"`
	CreatedAt   time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt   time.Time `json:"updated" dynamodbav:"updated_at"`
}

// BlogView is a blog annotated with the viewer's interaction state.
type BlogView struct {
	Blog
	IsLiked    bool `json:"isLiked"`
	IsDisliked bool `json:"isDisliked"`
	IsSaved    bool `json:"isSaved"`
}

type CreateBlogRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=100"`
	Content     string  `json:"content" validate:"required,min=3,max=10000"`
	Thumbnail   *string `json:"thumbnail" validate:"omitempty,url"`
	IsPublished bool    `json:"is_published"`
}

// BlogPage is one cursor page of a blog listing.
type BlogPage struct {
	Data       []BlogView `json:"data"`
	NextCursor string     `json:"next_cursor,omitempty"`
	HasMore    bool       `json:"has_more"`
}
