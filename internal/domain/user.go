package domain

import "time"

type User struct {
	UserID       string    `json:"id" dynamodbav:"user_id"`
	Email        string    `json:"email" dynamodbav:"email"`
	Name         string    `json:"name" dynamodbav:"name"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	About        string    `json:"about" dynamodbav:"about"`
	Experience   int       `json:"experience" dynamodbav:"experience"`
	Field        string    `json:"field" dynamodbav:"field"`
	Interests    []string  `json:"interests" dynamodbav:"interests"`
	ProfilePhoto *string   `json:"profile_photo" dynamodbav:"profile_photo"`
	AuthProvider string    `json:"auth_provider,omitempty" dynamodbav:"auth_provider"` // "local" | "google"
	GoogleSub    string    `json:"-" dynamodbav:"google_sub"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated" dynamodbav:"updated_at"`
}

const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

type SignupRequest struct {
	Email      string   `json:"email" validate:"required,email"`
	Name       string   `json:"name" validate:"required,min=3,max=50"`
	Password   string   `json:"password" validate:"required,strongpassword"`
	About      string   `json:"about" validate:"required,min=4,max=1000"`
	Experience int      `json:"experience" validate:"min=0,max=100"`
	Field      string   `json:"field" validate:"required,min=3,max=100"`
	Interests  []string `json:"interests" validate:"required,min=1,dive,min=3,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}
