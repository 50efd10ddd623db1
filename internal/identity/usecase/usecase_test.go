package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/hamrokart/identity/internal/pkg/config"
	"github.com/hamrokart/identity/internal/pkg/goerror"
	"github.com/hamrokart/identity/internal/pkg/goroutine"
	"github.com/hamrokart/identity/internal/pkg/hash"
	"github.com/hamrokart/identity/internal/pkg/instrument"
	"github.com/hamrokart/identity/internal/pkg/jwt"
	"github.com/hamrokart/identity/internal/pkg/validator"
	"github.com/stretchr/testify/require"

	"github.com/hamrokart/identity/internal/identity/entity"
)

var testNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedOTP struct {
	code int64
	err  error
}

func (o fixedOTP) Generate() (int64, error) { return o.code, o.err }

type fixedUID struct{ id int64 }

func (u fixedUID) Generate() int64 { return u.id }

type fixedUUID struct{}

func (fixedUUID) Generate() string { return "test-token-id" }

type stubDB struct {
	getUserByEmail    func(email string) (*entity.User, error)
	getUserByPhone    func(phone string) (*entity.User, error)
	getUserByID       func(id int64) (*entity.User, error)
	createUser        func(user entity.NewUser, hash string) error
	updateUserProfile func(id int64, data entity.ProfileUpdateData) error
	setResetCode      func(userID, code int64, expiresAt time.Time) error
	resetUserPassword func(userID int64, newHash string) error
}

func (s *stubDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.getUserByEmail == nil {
		return nil, goerror.ErrNotFound
	}
	return s.getUserByEmail(email)
}

func (s *stubDB) GetUserByPhone(_ context.Context, phone string) (*entity.User, error) {
	if s.getUserByPhone == nil {
		return nil, goerror.ErrNotFound
	}
	return s.getUserByPhone(phone)
}

func (s *stubDB) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	if s.getUserByID == nil {
		return nil, goerror.ErrNotFound
	}
	return s.getUserByID(id)
}

func (s *stubDB) CreateUser(_ context.Context, user entity.NewUser, hash string) error {
	if s.createUser == nil {
		return nil
	}
	return s.createUser(user, hash)
}

func (s *stubDB) UpdateUserProfile(_ context.Context, id int64, data entity.ProfileUpdateData) error {
	if s.updateUserProfile == nil {
		return nil
	}
	return s.updateUserProfile(id, data)
}

func (s *stubDB) SetResetCode(_ context.Context, userID, code int64, expiresAt time.Time) error {
	if s.setResetCode == nil {
		return nil
	}
	return s.setResetCode(userID, code, expiresAt)
}

func (s *stubDB) ResetUserPassword(_ context.Context, userID int64, newHash string) error {
	if s.resetUserPassword == nil {
		return nil
	}
	return s.resetUserPassword(userID, newHash)
}

type stubMessaging struct {
	registered []UserRegisteredEvent
	resets     []PasswordResetEvent
	err        error
}

func (s *stubMessaging) PublishUserRegistered(_ context.Context, msg UserRegisteredEvent) error {
	s.registered = append(s.registered, msg)
	return s.err
}

func (s *stubMessaging) PublishPasswordReset(_ context.Context, msg PasswordResetEvent) error {
	s.resets = append(s.resets, msg)
	return s.err
}

type sentCode struct {
	phone string
	code  int64
}

type stubSMS struct {
	sent []sentCode
	err  error
}

func (s *stubSMS) SendResetCode(_ context.Context, phone string, code int64) error {
	s.sent = append(s.sent, sentCode{phone: phone, code: code})
	return s.err
}

const testConfigYAML = `
modules:
  identity:
    reset_otp_ttl_minutes: 10
`

func testHasher(t *testing.T) hash.Hash {
	t.Helper()
	return hash.NewBcrypt(4, "")
}

func testJWT(t *testing.T) jwt.JWT {
	t.Helper()

	j, err := jwt.NewHS512(jwt.Config{
		Secret:     []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:     "identity-test",
		Audiences:  []string{"identity-test"},
		TTLMinutes: time.Hour,
		Clock:      fixedClock{now: testNow},
		UUID:       fixedUUID{},
	})
	require.NoError(t, err)

	return j
}

func newTestUsecase(t *testing.T, db *stubDB, msg *stubMessaging, sms *stubSMS) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte(testConfigYAML))
	require.NoError(t, err)

	return New(Dependency{
		RepoDB:        db,
		RepoMessaging: msg,
		RepoSMS:       sms,
		Validator:     v,
		Config:        cfg,
		Bcrypt:        testHasher(t),
		OTP:           fixedOTP{code: 123456},
		UID:           fixedUID{id: 42},
		Clock:         fixedClock{now: testNow},
		JWT:           testJWT(t),
		Instrument:    instrument.NewNoop(),
		Goroutine:     goroutine.NewManager(4),
	})
}

func requireGoError(t *testing.T, err error) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)

	return gerr
}

func requireBusinessError(t *testing.T, err error, msg string, status int) {
	t.Helper()

	gerr := requireGoError(t, err)
	require.Equal(t, msg, gerr.Msg())
	require.Equal(t, status, gerr.StatusCode())
}

func storedUser(t *testing.T, password string) *entity.User {
	t.Helper()

	hashed, err := testHasher(t).Hash(password)
	require.NoError(t, err)

	return &entity.User{
		ID:        42,
		Email:     "ram.thapa@example.com",
		Phone:     "9841000001",
		FirstName: "Ram",
		LastName:  "Thapa",
		Password:  string(hashed),
		CreatedAt: testNow.Add(-24 * time.Hour),
		UpdatedAt: testNow.Add(-time.Hour),
	}
}

func TestUsecaseValidationErrorsAreBadRequest(t *testing.T) {
	uc := newTestUsecase(t, &stubDB{}, &stubMessaging{}, &stubSMS{})

	_, err := uc.Register(context.Background(), RegisterInput{Email: "not-an-email"})
	require.Equal(t, 400, requireGoError(t, err).StatusCode())

	_, err = uc.Login(context.Background(), LoginInput{Email: "nope"})
	require.Equal(t, 400, requireGoError(t, err).StatusCode())

	err = uc.PasswordForgot(context.Background(), PasswordForgotInput{Phone: "abc"})
	require.Equal(t, 400, requireGoError(t, err).StatusCode())

	err = uc.PasswordReset(context.Background(), PasswordResetInput{Phone: "9841000001", OTP: "123456", Password: "short"})
	require.Equal(t, 400, requireGoError(t, err).StatusCode())
}
