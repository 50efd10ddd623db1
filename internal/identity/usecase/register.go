package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/hamrokart/identity/internal/pkg/goerror"

	"github.com/hamrokart/identity/internal/identity/entity"
)

type RegisterInput struct {
	FirstName string `validate:"required,min=2,max=50,alphaspace"`
	LastName  string `validate:"required,min=2,max=50,alphaspace"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"required,phone"`
	Password  string `validate:"required,password"`
}

type RegisterOutput struct {
	ID int64
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	_, err = s.repoDB.GetUserByPhone(ctx, in.Phone)
	if err == nil {
		return nil, goerror.NewBusiness("Phone already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by phone", "phone", in.Phone, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	newUser := entity.NewUser{
		ID:        s.uid.Generate(),
		Email:     in.Email,
		Phone:     in.Phone,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}

	if err := s.repoDB.CreateUser(ctx, newUser, string(hashedPassword)); err != nil {
		// Unique violation covers the race between the lookups above and the insert.
		if errors.Is(err, goerror.ErrConflict) {
			return nil, goerror.NewBusiness("Email already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create user", "email", newUser.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Fire and forget: the event must not delay or fail the registration.
	evt := UserRegisteredEvent{
		UserID:    newUser.ID,
		Email:     newUser.Email,
		FullName:  strings.TrimSpace(newUser.FirstName + " " + newUser.LastName),
		Phone:     newUser.Phone,
		IsAdmin:   newUser.IsAdmin,
		CreatedAt: s.clock.Now(),
	}
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishUserRegistered(ctx, evt); err != nil {
			slog.ErrorContext(ctx, "failed to publish user registered", "user_id", evt.UserID, "error", err)
		}
		return nil
	})

	return &RegisterOutput{ID: newUser.ID}, nil
}
