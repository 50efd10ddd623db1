package app

import (
	"context"
	"net/http"

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
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	messaging messaging.Messaging
	sms       sms.SMS

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initMessaging()
	app.initSMS()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
