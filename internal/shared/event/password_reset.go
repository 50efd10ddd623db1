package event

const PasswordResetDestination string = "password_reset"

type PasswordResetMessage struct {
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	ResetAt string `json:"reset_at"`
}
