package inbound

import (
	"net/http"
	"time"
)

type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type RegisterResponse struct {
	ID int64 `json:"id,string"`
}

func (RegisterResponse) Message() string {
	return "User Created Successfully!"
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ID          int64  `json:"id,string"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	IsAdmin     bool   `json:"is_admin"`
}

func (LoginResponse) Message() string {
	return "User logged in successfully!"
}

type TokenRequest struct {
	ID int64 `json:"id,string"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (TokenResponse) Message() string {
	return "Token generated successfully!"
}

type PasswordForgotRequest struct {
	Phone string `json:"phone"`
}

type PasswordForgotResponse struct{}

func (PasswordForgotResponse) Message() string {
	return "OTP sent to your phone number"
}

type PasswordResetRequest struct {
	Phone    string `json:"phone"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "Password reset successfully"
}

type ProfileResponse struct {
	ID        int64     `json:"id,string"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProfileResponse) Message() string {
	return "User fetched successfully"
}

type ProfileUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Password  *string `json:"password"`
}

type ProfileUpdateResponse struct{}

func (ProfileUpdateResponse) Message() string {
	return "Profile updated successfully"
}
