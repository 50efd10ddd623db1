package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hamrokart/identity/internal/pkg/goerror"
)

type PasswordResetInput struct {
	Phone    string `validate:"required,phone"`
	OTP      string `validate:"required"`
	Password string `validate:"required,password"`
}

// PasswordReset verifies the submitted code and stores the new credential.
// The same UPDATE that stores the credential clears the code, so a code is
// usable at most once. An expired code is reported but not cleared.
func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	in.Phone = strings.TrimSpace(in.Phone)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByPhone(ctx, in.Phone)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "password reset for unknown phone", "phone", in.Phone)
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by phone", "phone", in.Phone, "error", err)
		return goerror.NewServer(err)
	}

	code, err := strconv.ParseInt(strings.TrimSpace(in.OTP), 10, 64)
	if err != nil {
		return goerror.NewBusiness("Invalid OTP", goerror.CodeInvalidInput)
	}

	if user.ResetOTP == nil || user.ResetExpiresAt == nil || *user.ResetOTP != code {
		slog.WarnContext(ctx, "reset code mismatch", "user_id", user.ID)
		return goerror.NewBusiness("Invalid OTP", goerror.CodeInvalidInput)
	}

	if !s.clock.Now().Before(*user.ResetExpiresAt) {
		slog.WarnContext(ctx, "reset code expired", "user_id", user.ID)
		return goerror.NewBusiness("OTP expired", goerror.CodeInvalidInput)
	}

	newHash, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash new password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.ResetUserPassword(ctx, user.ID, string(newHash)); err != nil {
		slog.ErrorContext(ctx, "failed to repo reset user password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	evt := PasswordResetEvent{
		UserID:  user.ID,
		Email:   user.Email,
		Phone:   user.Phone,
		ResetAt: s.clock.Now(),
	}
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishPasswordReset(ctx, evt); err != nil {
			slog.ErrorContext(ctx, "failed to publish password reset", "user_id", evt.UserID, "error", err)
		}
		return nil
	})

	return nil
}
