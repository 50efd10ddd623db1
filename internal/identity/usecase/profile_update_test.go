package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/hamrokart/identity/internal/pkg/goerror"
	"github.com/stretchr/testify/require"

	"github.com/hamrokart/identity/internal/identity/entity"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdatePartial(t *testing.T) {
	var applied entity.ProfileUpdateData

	db := &stubDB{
		getUserByID: func(int64) (*entity.User, error) {
			return storedUser(t, "old password"), nil
		},
		updateUserProfile: func(id int64, data entity.ProfileUpdateData) error {
			require.Equal(t, int64(42), id)
			applied = data
			return nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	err := uc.ProfileUpdate(authContext(42), ProfileUpdateInput{
		FirstName: strPtr("  Hari "),
	})
	require.NoError(t, err)

	require.NotNil(t, applied.FirstName)
	require.Equal(t, "Hari", *applied.FirstName)
	require.Nil(t, applied.LastName)
	require.Nil(t, applied.Phone)
	require.Nil(t, applied.Password)
}

func TestProfileUpdatePasswordIsHashed(t *testing.T) {
	var applied entity.ProfileUpdateData

	db := &stubDB{
		getUserByID: func(int64) (*entity.User, error) {
			return storedUser(t, "old password"), nil
		},
		updateUserProfile: func(_ int64, data entity.ProfileUpdateData) error {
			applied = data
			return nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	err := uc.ProfileUpdate(authContext(42), ProfileUpdateInput{
		Password: strPtr("a new password"),
	})
	require.NoError(t, err)

	require.NotNil(t, applied.Password)
	require.NotEqual(t, "a new password", *applied.Password)
	require.True(t, testHasher(t).Verify(*applied.Password, "a new password"))
}

func TestProfileUpdatePhoneConflict(t *testing.T) {
	db := &stubDB{
		getUserByID: func(int64) (*entity.User, error) {
			return storedUser(t, "old password"), nil
		},
		updateUserProfile: func(int64, entity.ProfileUpdateData) error {
			return goerror.ErrConflict
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	err := uc.ProfileUpdate(authContext(42), ProfileUpdateInput{
		Phone: strPtr("9841000009"),
	})
	requireBusinessError(t, err, "Phone already registered", http.StatusConflict)
}

func TestProfileUpdateInvalidPhone(t *testing.T) {
	uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubSMS{})

	err := uc.ProfileUpdate(authContext(42), ProfileUpdateInput{
		Phone: strPtr("not-a-phone"),
	})
	require.Equal(t, http.StatusBadRequest, requireGoError(t, err).StatusCode())
}

func TestProfileUpdateWithoutAuth(t *testing.T) {
	uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubSMS{})

	err := uc.ProfileUpdate(context.Background(), ProfileUpdateInput{
		FirstName: strPtr("Hari"),
	})
	requireBusinessError(t, err, "Authentication required", http.StatusUnauthorized)
}
