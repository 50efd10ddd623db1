package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamrokart/identity/internal/identity/entity"
)

func TestLogin(t *testing.T) {
	db := &stubDB{
		getUserByEmail: func(email string) (*entity.User, error) {
			require.Equal(t, "ram.thapa@example.com", email)
			return storedUser(t, "super secret pw"), nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	out, err := uc.Login(context.Background(), LoginInput{
		Email:    "Ram.Thapa@Example.com",
		Password: "super secret pw",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.AccessToken)
	require.Equal(t, int64(42), out.ID)
	require.Equal(t, "Ram", out.FirstName)
	require.Equal(t, "9841000001", out.Phone)

	clm, err := testJWT(t).Verify(out.AccessToken)
	require.NoError(t, err)
	require.Equal(t, int64(42), clm.UserID)
	require.Equal(t, "ram.thapa@example.com", clm.UserEmail)
	require.False(t, clm.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	db := &stubDB{
		getUserByEmail: func(string) (*entity.User, error) {
			return storedUser(t, "super secret pw"), nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	_, err := uc.Login(context.Background(), LoginInput{
		Email:    "ram.thapa@example.com",
		Password: "not the password",
	})
	requireBusinessError(t, err, "Invalid email or password", http.StatusUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubSMS{})

	// Unknown account and wrong password are indistinguishable to the caller.
	_, err := uc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	requireBusinessError(t, err, "Invalid email or password", http.StatusUnauthorized)
}

func TestLoginAdminClaim(t *testing.T) {
	db := &stubDB{
		getUserByEmail: func(string) (*entity.User, error) {
			user := storedUser(t, "super secret pw")
			user.IsAdmin = true
			return user, nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	out, err := uc.Login(context.Background(), LoginInput{
		Email:    "ram.thapa@example.com",
		Password: "super secret pw",
	})
	require.NoError(t, err)
	require.True(t, out.IsAdmin)

	clm, err := testJWT(t).Verify(out.AccessToken)
	require.NoError(t, err)
	require.True(t, clm.IsAdmin)
}
