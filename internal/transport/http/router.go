package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-social-api/internal/application/blog"
	"github.com/go-social-api/internal/application/interaction"
	"github.com/go-social-api/internal/application/notification"
	"github.com/go-social-api/internal/application/otp"
	"github.com/go-social-api/internal/application/profile"
	"github.com/go-social-api/internal/application/session"
	"github.com/go-social-api/internal/config"
	"github.com/go-social-api/internal/domain"
	"github.com/go-social-api/internal/transport/http/handler"
	appmiddleware "github.com/go-social-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router. ctx bounds background
// work owned by the router.
func NewRouter(ctx context.Context, cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10, applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(ctx, rate.Limit(5), 10)

	otpSvc := otp.NewService(otp.ServiceDeps{
		Store:         deps.KV,
		UserRepo:      deps.UserRepo,
		Mailer:        deps.Mailer,
		CodeTTL:       cfg.OTPTTL,
		AttemptWindow: cfg.OTPAttemptWindow,
		MaxAttempts:   cfg.OTPMaxAttempts,
		VerifiedTTL:   cfg.SignupVerifiedTTL,
	})
	sessionSvc := session.NewService(session.ServiceDeps{
		UserRepo:       deps.UserRepo,
		Store:          deps.KV,
		Tokens:         deps.JWTProvider,
		SignupVerifier: otpSvc,
		GoogleVerifier: deps.GoogleVerifier,
	})
	interactionSvc := interaction.NewService(interaction.ServiceDeps{
		EdgeRepo: deps.EdgeRepo,
		UserRepo: deps.UserRepo,
		BlogRepo: deps.BlogRepo,
		Notifier: deps.Notifier,
	})
	blogSvc := blog.NewService(blog.ServiceDeps{
		BlogRepo:    deps.BlogRepo,
		CommentRepo: deps.CommentRepo,
		UserRepo:    deps.UserRepo,
		EdgeRepo:    deps.EdgeRepo,
		Annotator:   interactionSvc,
		Notifier:    deps.Notifier,
	})
	notifSvc := notification.NewService(deps.NotificationRepo)
	profileSvc := profile.NewService(deps.UserRepo, deps.S3Store)

	authn := appmiddleware.NewAuthenticator(sessionSvc, appmiddleware.NewCookies(cfg))
	authed := authn.Wrap

	healthH := handler.NewHealthHandler()
	authH := handler.NewAuthHandler(otpSvc, sessionSvc, appmiddleware.NewCookies(cfg))
	interactionH := handler.NewInteractionHandler(interactionSvc)
	blogH := handler.NewBlogHandler(blogSvc)
	notifH := handler.NewNotificationHandler(notifSvc)
	profileH := handler.NewProfileHandler(profileSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes ────────────────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/otp/request", authH.RequestOTP)
		r.Post("/auth/otp/verify", authH.VerifyOTP)
		r.Post("/auth/signup", authH.Signup)
		r.With(sensitiveRL.Limit).Post("/auth/login", authH.Login)
		r.With(sensitiveRL.Limit).Post("/auth/google", authH.Google)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Post("/auth/logout", authed(authH.Logout))

		r.Get("/users/me", authed(authH.Me))
		r.Get("/users/me/photo", authed(profileH.PhotoURL))
		r.Put("/users/me/photo", authed(profileH.ChangePhoto))
		r.Delete("/users/me/photo", authed(profileH.DeletePhoto))
		r.Put("/users/{id}/follow", authed(interactionH.Toggle(domain.RelationFollow)))
		r.Get("/users/{id}/blogs", authed(blogH.ListByUser))

		r.Post("/blogs", authed(blogH.Create))
		r.Get("/blogs/{id}", authed(blogH.Get))
		r.Delete("/blogs/{id}", authed(blogH.Delete))
		r.Put("/blogs/{id}/like", authed(interactionH.Toggle(domain.RelationBlogLike)))
		r.Put("/blogs/{id}/dislike", authed(interactionH.Toggle(domain.RelationBlogDislike)))
		r.Put("/blogs/{id}/save", authed(interactionH.Toggle(domain.RelationSavedBlog)))
		r.Post("/blogs/{id}/saved", authed(interactionH.Save))
		r.Delete("/blogs/{id}/saved", authed(interactionH.Unsave))
		r.Post("/blogs/{id}/comments", authed(blogH.Comment))
		r.Get("/blogs/{id}/comments", authed(blogH.ListComments))

		r.Get("/notifications", authed(notifH.ListUnread))
		r.Put("/notifications/{id}", authed(notifH.MarkAsRead))
	})

	return r
}
