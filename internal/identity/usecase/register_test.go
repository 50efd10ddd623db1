package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/hamrokart/identity/internal/pkg/goerror"
	"github.com/hamrokart/identity/internal/pkg/hash"
	"github.com/stretchr/testify/require"

	"github.com/hamrokart/identity/internal/identity/entity"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FirstName: "Sita",
		LastName:  "Sharma",
		Email:     "Sita.Sharma@Example.com",
		Phone:     "9841000002",
		Password:  "correct horse battery",
	}
}

func TestRegister(t *testing.T) {
	var created entity.NewUser
	var createdHash string

	db := &stubDB{
		createUser: func(user entity.NewUser, hash string) error {
			created = user
			createdHash = hash
			return nil
		},
	}
	msg := &stubMessaging{}
	uc := newTestUsecase(t, db, msg, &stubSMS{})

	out, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	require.Equal(t, int64(42), out.ID)

	require.Equal(t, "sita.sharma@example.com", created.Email)
	require.Equal(t, "9841000002", created.Phone)
	require.False(t, created.IsAdmin)
	require.True(t, hash.NewBcrypt(4, "").Verify(createdHash, "correct horse battery"))

	// The event is published asynchronously.
	require.NoError(t, uc.goroutine.Wait())
	require.Len(t, msg.registered, 1)
	require.Equal(t, "Sita Sharma", msg.registered[0].FullName)
	require.Equal(t, testNow, msg.registered[0].CreatedAt)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := &stubDB{
		getUserByEmail: func(string) (*entity.User, error) {
			return storedUser(t, "whatever-pass"), nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	_, err := uc.Register(context.Background(), validRegisterInput())
	requireBusinessError(t, err, "Email already registered", http.StatusConflict)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	db := &stubDB{
		getUserByPhone: func(string) (*entity.User, error) {
			return storedUser(t, "whatever-pass"), nil
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	_, err := uc.Register(context.Background(), validRegisterInput())
	requireBusinessError(t, err, "Phone already registered", http.StatusConflict)
}

func TestRegisterInsertRace(t *testing.T) {
	db := &stubDB{
		createUser: func(entity.NewUser, string) error {
			return goerror.ErrConflict
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	_, err := uc.Register(context.Background(), validRegisterInput())
	requireBusinessError(t, err, "Email already registered", http.StatusConflict)
}

func TestRegisterPublishFailureStillSucceeds(t *testing.T) {
	msg := &stubMessaging{err: errors.New("broker down")}
	uc := newTestUsecase(t, &stubDB{}, msg, &stubSMS{})

	out, err := uc.Register(context.Background(), validRegisterInput())
	require.NoError(t, err)
	require.Equal(t, int64(42), out.ID)
}

func TestRegisterLookupFailure(t *testing.T) {
	db := &stubDB{
		getUserByEmail: func(string) (*entity.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := newTestUsecase(t, db, &stubMessaging{}, &stubSMS{})

	_, err := uc.Register(context.Background(), validRegisterInput())
	gerr := requireGoError(t, err)
	require.Equal(t, http.StatusInternalServerError, gerr.StatusCode())
	require.Equal(t, "Internal server error", gerr.Msg())
}
