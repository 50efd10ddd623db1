package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hamrokart/identity/internal/identity/entity"
)

func userWithResetCode(t *testing.T, code int64, expiresAt time.Time) *entity.User {
	t.Helper()

	user := storedUser(t, "old password")
	user.ResetOTP = &code
	user.ResetExpiresAt = &expiresAt

	return user
}

func TestPasswordReset(t *testing.T) {
	var resetID int64
	var resetHash string

	db := &stubDB{
		getUserByPhone: func(string) (*entity.User, error) {
			return userWithResetCode(t, 123456, testNow.Add(5*time.Minute)), nil
		},
		resetUserPassword: func(userID int64, newHash string) error {
			resetID = userID
			resetHash = newHash
			return nil
		},
	}
	msg := &stubMessaging{}
	uc := newTestUsecase(t, db, msg, &stubSMS{})

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Phone:    "9841000001",
		OTP:      "123456",
		Password: "brand new password",
	})
	require.NoError(t, err)

	require.Equal(t, int64(42), resetID)
	require.True(t, testHasher(t).Verify(resetHash, "brand new password"))

	require.NoError(t, uc.goroutine.Wait())
	require.Len(t, msg.resets, 1)
	require.Equal(t, int64(42), msg.resets[0].UserID)
	require.Equal(t, testNow, msg.resets[0].ResetAt)
}

func TestPasswordResetWrongCode(t *testing.T) {
	resetCalls := 0
	db := &stubDB{
		getUserByPhone: func(string) (*entity.User, error) {
			return userWithResetCode(t, 123456, testNow.Add(5*time.Minute)), nil
		},
		resetUserPassword: func(int64, string) error {
			resetCalls++
			return nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Phone:    "9841000001",
		OTP:      "654321",
		Password: "brand new password",
	})
	requireBusinessError(t, err, "Invalid OTP", http.StatusBadRequest)
	require.Zero(t, resetCalls)
}

func TestPasswordResetNonNumericCode(t *testing.T) {
	db := &stubDB{
		getUserByPhone: func(string) (*entity.User, error) {
			return userWithResetCode(t, 123456, testNow.Add(5*time.Minute)), nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Phone:    "9841000001",
		OTP:      "12a456",
		Password: "brand new password",
	})
	requireBusinessError(t, err, "Invalid OTP", http.StatusBadRequest)
}

func TestPasswordResetNoOutstandingCode(t *testing.T) {
	db := &stubDB{
		getUserByPhone: func(string) (*entity.User, error) {
			return storedUser(t, "old password"), nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Phone:    "9841000001",
		OTP:      "123456",
		Password: "brand new password",
	})
	requireBusinessError(t, err, "Invalid OTP", http.StatusBadRequest)
}

func TestPasswordResetExpiredCode(t *testing.T) {
	db := &stubDB{
		getUserByPhone: func(string) (*entity.User, error) {
			return userWithResetCode(t, 123456, testNow.Add(-time.Second)), nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Phone:    "9841000001",
		OTP:      "123456",
		Password: "brand new password",
	})
	requireBusinessError(t, err, "OTP expired", http.StatusBadRequest)
}

func TestPasswordResetExpiryBoundary(t *testing.T) {
	// A code expiring exactly now is already expired.
	db := &stubDB{
		getUserByPhone: func(string) (*entity.User, error) {
			return userWithResetCode(t, 123456, testNow), nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Phone:    "9841000001",
		OTP:      "123456",
		Password: "brand new password",
	})
	requireBusinessError(t, err, "OTP expired", http.StatusBadRequest)
}

func TestPasswordResetUnknownPhone(t *testing.T) {
	uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubSMS{})

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Phone:    "9841999999",
		OTP:      "123456",
		Password: "brand new password",
	})
	requireBusinessError(t, err, "User not found", http.StatusNotFound)
}

func TestPasswordResetTrimsCode(t *testing.T) {
	db := &stubDB{
		getUserByPhone: func(string) (*entity.User, error) {
			return userWithResetCode(t, 123456, testNow.Add(5*time.Minute)), nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	err := uc.PasswordReset(context.Background(), PasswordResetInput{
		Phone:    "9841000001",
		OTP:      " 123456 ",
		Password: "brand new password",
	})
	require.NoError(t, err)
}
