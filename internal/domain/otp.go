package domain

import "time"

// OTPRecord is the signup challenge stored under SignupOTPKey.
type OTPRecord struct {
	Code      string    `json:"otp"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RequestOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

func SignupOTPKey(email string) string      { return "signupOTP:" + email }
func SignupAttemptsKey(email string) string { return "signupAttempts:" + email }
func SignupVerifiedKey(email string) string { return "signupVerified:" + email }
