package http

import (
	"github.com/go-social-api/internal/application/notification"
	"github.com/go-social-api/internal/infrastructure/dynamo"
	"github.com/go-social-api/internal/infrastructure/google"
	jwtinfra "github.com/go-social-api/internal/infrastructure/jwt"
	redisinfra "github.com/go-social-api/internal/infrastructure/redis"
	s3infra "github.com/go-social-api/internal/infrastructure/s3"
	"github.com/go-social-api/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo         *dynamo.UserRepo
	BlogRepo         *dynamo.BlogRepo
	CommentRepo      *dynamo.CommentRepo
	NotificationRepo *dynamo.NotificationRepo
	EdgeRepo         *dynamo.EdgeRepo
	KV               *redisinfra.Store
	S3Store          *s3infra.Store
	Mailer           smtp.Mailer
	JWTProvider      *jwtinfra.Provider
	GoogleVerifier   *google.Verifier
	// Notifier is owned by the caller, which drains it on shutdown.
	Notifier *notification.Notifier
}
