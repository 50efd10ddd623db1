package db

import (
	"context"

	"github.com/hamrokart/identity/internal/identity/entity"
)

const userColumns = `id, email, phone, first_name, last_name, password, is_admin,
	reset_otp, reset_expires_at, created_at, updated_at`

func (s *DB) scanUser(ctx context.Context, query string, arg any) (*entity.User, error) {
	var user entity.User
	err := s.conn.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Phone,
		&user.FirstName,
		&user.LastName,
		&user.Password,
		&user.IsAdmin,
		&user.ResetOTP,
		&user.ResetExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	user, err := s.scanUser(ctx, `SELECT `+userColumns+` FROM identity_users WHERE email = $1`, email)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *DB) GetUserByPhone(ctx context.Context, phone string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByPhone")
	defer func() { s.endSpan(span, err) }()

	user, err := s.scanUser(ctx, `SELECT `+userColumns+` FROM identity_users WHERE phone = $1`, phone)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	user, err := s.scanUser(ctx, `SELECT `+userColumns+` FROM identity_users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}
