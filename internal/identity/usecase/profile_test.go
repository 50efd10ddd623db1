package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/hamrokart/identity/internal/pkg/jwt"
	"github.com/stretchr/testify/require"

	"github.com/hamrokart/identity/internal/identity/entity"
)

func authContext(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID, UserEmail: "ram.thapa@example.com"})
}

func TestProfile(t *testing.T) {
	db := &stubDB{
		getUserByID: func(id int64) (*entity.User, error) {
			require.Equal(t, int64(42), id)
			return storedUser(t, "irrelevant"), nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	out, err := uc.Profile(authContext(42), ProfileInput{})
	require.NoError(t, err)
	require.Equal(t, int64(42), out.ID)
	require.Equal(t, "ram.thapa@example.com", out.Email)
	require.Equal(t, "Ram", out.FirstName)
	require.Equal(t, "Thapa", out.LastName)
	require.Equal(t, "9841000001", out.Phone)
	require.False(t, out.IsAdmin)
}

func TestProfileWithoutAuth(t *testing.T) {
	uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubSMS{})

	_, err := uc.Profile(context.Background(), ProfileInput{})
	requireBusinessError(t, err, "Authentication required", http.StatusUnauthorized)
}

func TestProfileUserGone(t *testing.T) {
	uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubSMS{})

	_, err := uc.Profile(authContext(42), ProfileInput{})
	requireBusinessError(t, err, "User not found", http.StatusNotFound)
}
