package identity

import (
	"github.com/hamrokart/identity/internal/pkg/clock"
	"github.com/hamrokart/identity/internal/pkg/config"
	"github.com/hamrokart/identity/internal/pkg/goroutine"
	"github.com/hamrokart/identity/internal/pkg/hash"
	"github.com/hamrokart/identity/internal/pkg/instrument"
	"github.com/hamrokart/identity/internal/pkg/jwt"
	"github.com/hamrokart/identity/internal/pkg/messaging"
	"github.com/hamrokart/identity/internal/pkg/otp"
	"github.com/hamrokart/identity/internal/pkg/router"
	"github.com/hamrokart/identity/internal/pkg/sms"
	"github.com/hamrokart/identity/internal/pkg/uid"
	"github.com/hamrokart/identity/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hamrokart/identity/internal/identity/inbound"
	"github.com/hamrokart/identity/internal/identity/outbound/db"
	"github.com/hamrokart/identity/internal/identity/outbound/mq"
	"github.com/hamrokart/identity/internal/identity/outbound/smsgw"
	"github.com/hamrokart/identity/internal/identity/usecase"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	SMS        sms.SMS                    `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	repoSMS := smsgw.NewGateway(dep.SMS, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoMessaging: repoMsg,
		RepoSMS:       repoSMS,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Bcrypt:        dep.Bcrypt,
		OTP:           dep.OTP,
		UID:           dep.UID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
