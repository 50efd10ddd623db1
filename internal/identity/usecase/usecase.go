package usecase

import (
	"context"
	"time"

	"github.com/hamrokart/identity/internal/pkg/clock"
	"github.com/hamrokart/identity/internal/pkg/config"
	"github.com/hamrokart/identity/internal/pkg/goroutine"
	"github.com/hamrokart/identity/internal/pkg/hash"
	"github.com/hamrokart/identity/internal/pkg/instrument"
	"github.com/hamrokart/identity/internal/pkg/jwt"
	"github.com/hamrokart/identity/internal/pkg/otp"
	"github.com/hamrokart/identity/internal/pkg/uid"
	"github.com/hamrokart/identity/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"

	"github.com/hamrokart/identity/internal/identity/entity"
)

type UserRegisteredEvent struct {
	UserID    int64
	Email     string
	FullName  string
	Phone     string
	IsAdmin   bool
	CreatedAt time.Time
}

type PasswordResetEvent struct {
	UserID  int64
	Email   string
	Phone   string
	ResetAt time.Time
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
	PublishPasswordReset(ctx context.Context, msg PasswordResetEvent) error
}

type repoSMS interface {
	SendResetCode(ctx context.Context, phone string, code int64) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)

	CreateUser(ctx context.Context, user entity.NewUser, hash string) error
	UpdateUserProfile(ctx context.Context, id int64, data entity.ProfileUpdateData) error

	SetResetCode(ctx context.Context, userID, code int64, expiresAt time.Time) error
	ResetUserPassword(ctx context.Context, userID int64, newHash string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	repoSMS       repoSMS
	validator     validator.Validator
	cfg           config.Config
	bcrypt        hash.Hash
	otp           otp.Generator
	uid           uid.NumberID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	RepoSMS       repoSMS
	Validator     validator.Validator
	Config        config.Config
	Bcrypt        hash.Hash
	OTP           otp.Generator
	UID           uid.NumberID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		repoSMS:       dep.RepoSMS,
		validator:     dep.Validator,
		cfg:           dep.Config,
		bcrypt:        dep.Bcrypt,
		otp:           dep.OTP,
		uid:           dep.UID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

const defaultResetOTPTTL = 10 * time.Minute

func (s *Usecase) resetOTPTTL() time.Duration {
	ttl := s.cfg.GetMinute("modules.identity.reset_otp_ttl_minutes")
	if ttl <= 0 {
		return defaultResetOTPTTL
	}
	return ttl
}
