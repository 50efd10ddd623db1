package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hamrokart/identity/internal/identity/entity"
)

func TestToken(t *testing.T) {
	db := &stubDB{
		getUserByID: func(id int64) (*entity.User, error) {
			require.Equal(t, int64(42), id)
			user := storedUser(t, "irrelevant")
			user.IsAdmin = true
			return user, nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	out, err := uc.Token(context.Background(), TokenInput{ID: 42})
	require.NoError(t, err)

	// The admin claim comes from the stored record, not the request.
	clm, err := testJWT(t).Verify(out.AccessToken)
	require.NoError(t, err)
	require.Equal(t, int64(42), clm.UserID)
	require.True(t, clm.IsAdmin)
}

func TestTokenUnknownUser(t *testing.T) {
	uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubSMS{})

	_, err := uc.Token(context.Background(), TokenInput{ID: 7})
	requireBusinessError(t, err, "User not found", http.StatusNotFound)
}

func TestTokenMissingID(t *testing.T) {
	uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubSMS{})

	_, err := uc.Token(context.Background(), TokenInput{})
	require.Equal(t, http.StatusBadRequest, requireGoError(t, err).StatusCode())
}
