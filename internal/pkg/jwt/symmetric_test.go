package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedUUID struct{}

func (fixedUUID) Generate() string { return "token-id-1" }

var testSecret = []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")

func newTestJWT(t *testing.T, now time.Time) *Symmetric {
	t.Helper()

	j, err := NewHS512(Config{
		Secret:     testSecret,
		Issuer:     "identity-test",
		Audiences:  []string{"identity-test"},
		TTLMinutes: 15 * time.Minute,
		Clock:      fixedClock{now: now},
		UUID:       fixedUUID{},
	})
	require.NoError(t, err)

	return j
}

func TestNewHS512ShortSecret(t *testing.T) {
	_, err := NewHS512(Config{Secret: []byte("too short")})
	require.ErrorIs(t, err, ErrSigningKeyTooShort)
}

func TestGenerateVerify(t *testing.T) {
	j := newTestJWT(t, time.Now())

	token, err := j.Generate(42, "ram.thapa@example.com", true)
	require.NoError(t, err)

	clm, err := j.Verify(token)
	require.NoError(t, err)
	require.Equal(t, int64(42), clm.UserID)
	require.Equal(t, "ram.thapa@example.com", clm.UserEmail)
	require.True(t, clm.IsAdmin)
	require.Equal(t, "42", clm.Subject)
	require.Equal(t, "identity-test", clm.Issuer)
}

func TestVerifyExpired(t *testing.T) {
	j := newTestJWT(t, time.Now().Add(-time.Hour))

	token, err := j.Generate(42, "ram.thapa@example.com", false)
	require.NoError(t, err)

	_, err = j.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTampered(t *testing.T) {
	j := newTestJWT(t, time.Now())

	token, err := j.Generate(42, "ram.thapa@example.com", false)
	require.NoError(t, err)

	_, err = j.Verify(token + "x")
	require.Error(t, err)
}

func TestAuthContextRoundTrip(t *testing.T) {
	ctx := SetAuth(t.Context(), Claims{UserID: 42, UserEmail: "ram.thapa@example.com"})

	clm := GetAuth(ctx)
	require.NotNil(t, clm)
	require.Equal(t, int64(42), clm.UserID)

	require.Nil(t, GetAuth(t.Context()))
}
