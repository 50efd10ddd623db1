package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hamrokart/identity/internal/pkg/goerror"
)

type TokenInput struct {
	ID int64 `validate:"required"`
}

type TokenOutput struct {
	AccessToken string
}

// Token mints a bearer token for the given user id. The admin flag is read
// from the stored record, never from the request.
func (s *Usecase) Token(ctx context.Context, in TokenInput) (*TokenOutput, error) {
	ctx, span := s.startSpan(ctx, "Token")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", in.ID)
		return nil, goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	acToken, err := s.jwt.Generate(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &TokenOutput{AccessToken: acToken}, nil
}
