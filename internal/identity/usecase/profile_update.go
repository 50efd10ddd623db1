package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/hamrokart/identity/internal/pkg/goerror"
	"github.com/hamrokart/identity/internal/pkg/jwt"

	"github.com/hamrokart/identity/internal/identity/entity"
)

type ProfileUpdateInput struct {
	FirstName *string `validate:"omitempty,min=2,max=50,alphaspace"`
	LastName  *string `validate:"omitempty,min=2,max=50,alphaspace"`
	Phone     *string `validate:"omitempty,phone"`
	Password  *string `validate:"omitempty,password"`
}

// ProfileUpdate applies only the fields present in the input. Omitted fields
// keep their stored value.
func (s *Usecase) ProfileUpdate(ctx context.Context, in ProfileUpdateInput) error {
	ctx, span := s.startSpan(ctx, "ProfileUpdate")
	defer span.End()

	if in.FirstName != nil {
		trimmed := strings.TrimSpace(*in.FirstName)
		in.FirstName = &trimmed
	}
	if in.LastName != nil {
		trimmed := strings.TrimSpace(*in.LastName)
		in.LastName = &trimmed
	}
	if in.Phone != nil {
		trimmed := strings.TrimSpace(*in.Phone)
		in.Phone = &trimmed
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByID(ctx, clm.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "user_id", clm.UserID)
		return goerror.NewBusiness("User not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", clm.UserID, "error", err)
		return goerror.NewServer(err)
	}

	data := entity.ProfileUpdateData{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
	}

	if in.Password != nil {
		newHash, err := s.bcrypt.Hash(*in.Password)
		if err != nil {
			slog.ErrorContext(ctx, "failed to hash new password", "user_id", user.ID, "error", err)
			return goerror.NewServer(err)
		}
		hashed := string(newHash)
		data.Password = &hashed
	}

	if err := s.repoDB.UpdateUserProfile(ctx, user.ID, data); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Phone already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo update user profile", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
