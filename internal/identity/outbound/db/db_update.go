package db

import (
	"context"
	"time"

	"github.com/hamrokart/identity/internal/identity/entity"
)

// UpdateUserProfile applies only the non-nil fields; COALESCE keeps the
// stored value for everything else.
func (s *DB) UpdateUserProfile(ctx context.Context, id int64, data entity.ProfileUpdateData) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateUserProfile")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE identity_users
		SET first_name = COALESCE($2, first_name),
			last_name  = COALESCE($3, last_name),
			phone      = COALESCE($4, phone),
			password   = COALESCE($5, password),
			updated_at = now()
		WHERE id = $1`,
		id,
		data.FirstName,
		data.LastName,
		data.Phone,
		data.Password,
	)
	err = s.mapError(err)
	return err
}

// SetResetCode writes the code and its expiry in one statement so both
// columns are always set together. Reissuing overwrites the previous pair.
func (s *DB) SetResetCode(ctx context.Context, userID, code int64, expiresAt time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "SetResetCode")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE identity_users
		SET reset_otp = $2, reset_expires_at = $3, updated_at = now()
		WHERE id = $1`,
		userID, code, expiresAt,
	)
	err = s.mapError(err)
	return err
}

// ResetUserPassword stores the new credential and clears both reset columns
// in the same statement, so a consumed code can never be replayed.
func (s *DB) ResetUserPassword(ctx context.Context, userID int64, newHash string) (err error) {
	ctx, span := s.startSpan(ctx, "ResetUserPassword")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		UPDATE identity_users
		SET password = $2, reset_otp = NULL, reset_expires_at = NULL, updated_at = now()
		WHERE id = $1`,
		userID, newHash,
	)
	err = s.mapError(err)
	return err
}
