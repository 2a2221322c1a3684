package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	RedisURL string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	// RefreshTokenTTL is both the refresh credential lifetime and the session marker TTL.
	RefreshTokenTTL time.Duration

	OTPTTL            time.Duration
	OTPAttemptWindow  time.Duration
	OTPMaxAttempts    int
	SignupVerifiedTTL time.Duration

	CookieSecure   bool
	CookieSameSite string // "none" | "lax" | "strict"

	S3BucketName string

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	SNSRegion               string
	SNSNotificationTopicARN string

	GoogleClientID string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Users         string
	Blogs         string
	Comments      string
	Notifications string
	Follows       string
	BlogLikes     string
	BlogDislikes  string
	SavedBlogs    string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Users:         getEnv("DYNAMO_TABLE_USERS", "users"),
			Blogs:         getEnv("DYNAMO_TABLE_BLOGS", "blogs"),
			Comments:      getEnv("DYNAMO_TABLE_COMMENTS", "comments"),
			Notifications: getEnv("DYNAMO_TABLE_NOTIFICATIONS", "notifications"),
			Follows:       getEnv("DYNAMO_TABLE_FOLLOWS", "follows"),
			BlogLikes:     getEnv("DYNAMO_TABLE_BLOG_LIKES", "blog_likes"),
			BlogDislikes:  getEnv("DYNAMO_TABLE_BLOG_DISLIKES", "blog_dislikes"),
			SavedBlogs:    getEnv("DYNAMO_TABLE_SAVED_BLOGS", "saved_blogs"),
		},
		RedisURL:                getEnv("REDIS_URL", "redis://localhost:6379/0"),
		AccessTokenSecret:       getEnv("ACCESS_TOKEN_SECRET", ""),
		RefreshTokenSecret:      getEnv("REFRESH_TOKEN_SECRET", ""),
		AccessTokenTTL:          getEnvDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:         getEnvDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour),
		OTPTTL:                  getEnvDuration("OTP_TTL", 5*time.Minute),
		OTPAttemptWindow:        getEnvDuration("OTP_ATTEMPT_WINDOW", time.Hour),
		OTPMaxAttempts:          getEnvInt("OTP_MAX_ATTEMPTS", 6),
		SignupVerifiedTTL:       getEnvDuration("SIGNUP_VERIFIED_TTL", 30*time.Minute),
		CookieSecure:            getEnvBool("COOKIE_SECURE", true),
		CookieSameSite:          getEnv("COOKIE_SAME_SITE", "none"),
		S3BucketName:            getEnv("S3_BUCKET_NAME", "social-api-media"),
		SMTPHost:                getEnv("SMTP_HOST", "localhost"),
		SMTPPort:                getEnv("SMTP_PORT", "1025"),
		SMTPFrom:                getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername:            getEnv("SMTP_USERNAME", ""),
		SMTPPassword:            getEnv("SMTP_PASSWORD", ""),
		SNSRegion:               getEnv("SNS_REGION", "us-east-1"),
		SNSNotificationTopicARN: getEnv("SNS_NOTIFICATION_TOPIC_ARN", ""),
		GoogleClientID:          getEnv("GOOGLE_CLIENT_ID", ""),
		AllowedOrigins:          strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
	}
}

// IsProduction reports whether the app runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
