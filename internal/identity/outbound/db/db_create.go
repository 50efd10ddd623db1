package db

import (
	"context"

	"github.com/hamrokart/identity/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.NewUser, hash string) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, `
		INSERT INTO identity_users (id, email, phone, first_name, last_name, password, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID,
		user.Email,
		user.Phone,
		user.FirstName,
		user.LastName,
		hash,
		user.IsAdmin,
	)
	err = s.mapError(err)
	return err
}
