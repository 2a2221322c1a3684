package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-social-api/internal/application/notification"
	"github.com/go-social-api/internal/config"
	"github.com/go-social-api/internal/infrastructure/dynamo"
	"github.com/go-social-api/internal/infrastructure/google"
	jwtinfra "github.com/go-social-api/internal/infrastructure/jwt"
	redisinfra "github.com/go-social-api/internal/infrastructure/redis"
	s3infra "github.com/go-social-api/internal/infrastructure/s3"
	"github.com/go-social-api/internal/infrastructure/smtp"
	"github.com/go-social-api/internal/infrastructure/sns"
	transporthttp "github.com/go-social-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("dynamodb: %v", err)
	}
	dynamo.Bootstrap(ctx, dynamoClient, cfg.DynamoTables)

	redisClient, err := redisinfra.Connect(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("jwt provider: %v", err)
	}

	if cfg.GoogleClientID == "" {
		log.Println("WARN: GOOGLE_CLIENT_ID not set, Google sign-in will reject every token")
	}

	// SNS fan-out of notifications (optional).
	var publisher sns.EventPublisher
	if cfg.SNSNotificationTopicARN != "" {
		if p, err := sns.NewPublisher(ctx, cfg); err == nil {
			publisher = p
		} else {
			log.Printf("WARN: SNS publisher not available: %v", err)
		}
	}

	s3Client, err := s3infra.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("s3: %v", err)
	}

	notificationRepo := dynamo.NewNotificationRepo(dynamoClient, cfg.DynamoTables.Notifications)
	notifier := notification.NewNotifier(notificationRepo, publisher)

	deps := &transporthttp.Deps{
		UserRepo:         dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		BlogRepo:         dynamo.NewBlogRepo(dynamoClient, cfg.DynamoTables.Blogs),
		CommentRepo:      dynamo.NewCommentRepo(dynamoClient, cfg.DynamoTables.Comments),
		NotificationRepo: notificationRepo,
		EdgeRepo:         dynamo.NewEdgeRepo(dynamoClient, cfg.DynamoTables),
		KV:               redisinfra.NewStore(redisClient),
		S3Store:          s3infra.NewStore(s3Client, cfg.S3BucketName),
		Mailer:           smtp.NewMailer(cfg),
		JWTProvider:      jwtProvider,
		GoogleVerifier:   google.NewVerifier(cfg.GoogleClientID),
		Notifier:         notifier,
	}

	router := transporthttp.NewRouter(ctx, cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	notifier.Wait()
	stop()
	log.Println("Server stopped")
}
