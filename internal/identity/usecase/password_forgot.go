package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/hamrokart/identity/internal/pkg/goerror"
)

type PasswordForgotInput struct {
	Phone string `validate:"required,phone"`
}

// PasswordForgot issues a reset code for the account behind the phone number.
// Reissuing overwrites any outstanding code; the newest code always wins.
func (s *Usecase) PasswordForgot(ctx context.Context, in PasswordForgotInput) error {
	ctx, span := s.startSpan(ctx, "PasswordForgot")
	defer span.End()

	in.Phone = strings.TrimSpace(in.Phone)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByPhone(ctx, in.Phone)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "password reset requested for unknown phone", "phone", in.Phone)
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by phone", "phone", in.Phone, "error", err)
		return goerror.NewServer(err)
	}

	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate reset code", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	expiresAt := s.clock.Now().Add(s.resetOTPTTL())
	if err := s.repoDB.SetResetCode(ctx, user.ID, code, expiresAt); err != nil {
		slog.ErrorContext(ctx, "failed to repo set reset code", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	// The code stays persisted on delivery failure; a later reset with it
	// still succeeds, and reissuing simply overwrites it.
	if err := s.repoSMS.SendResetCode(ctx, user.Phone, code); err != nil {
		slog.WarnContext(ctx, "failed to send reset code", "user_id", user.ID, "error", err)
		return goerror.NewBusiness("Error in sending OTP", goerror.CodeInvalidInput)
	}

	return nil
}
