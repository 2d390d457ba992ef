package client

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-msg-sync/internal/adapter"
	"github.com/MKhiriev/go-msg-sync/internal/config"
	"github.com/MKhiriev/go-msg-sync/internal/crypto"
	"github.com/MKhiriev/go-msg-sync/internal/handler"
	"github.com/MKhiriev/go-msg-sync/internal/logger"
	"github.com/MKhiriev/go-msg-sync/internal/server"
	"github.com/MKhiriev/go-msg-sync/internal/service"
	"github.com/MKhiriev/go-msg-sync/internal/store"
	"github.com/MKhiriev/go-msg-sync/internal/utils"
	"github.com/MKhiriev/go-msg-sync/models"
)

// Option customises an App.
type Option func(*options)

type options struct {
	mls     crypto.ClientFactory[crypto.MLSClient]
	proteus crypto.ClientFactory[crypto.ProteusClient]
	build   models.BuildInfo
}

// WithMLSClientFactory plugs in the MLS backend of this device.
func WithMLSClientFactory(factory crypto.ClientFactory[crypto.MLSClient]) Option {
	return func(o *options) { o.mls = factory }
}

// WithProteusClientFactory plugs in the Proteus backend of this device.
func WithProteusClientFactory(factory crypto.ClientFactory[crypto.ProteusClient]) Option {
	return func(o *options) { o.proteus = factory }
}

// WithBuildInfo sets the build metadata served by the diagnostics API.
func WithBuildInfo(build models.BuildInfo) Option {
	return func(o *options) { o.build = build }
}

type App struct {
	storages    *store.ClientStorages
	session     *adapter.SessionWatcher
	services    *service.ClientServices
	diagnostics server.Server

	logger *logger.Logger
}

// NewApp opens the local database and wires every component. Without
// crypto factories the client runs with no crypto backend; MLS steps then
// fail with crypto.ErrNoCryptoBackend.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger, opts ...Option) (*App, error) {
	o := options{build: models.NewBuildInfo("", "", "")}
	for _, opt := range opts {
		opt(&o)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger.WithComponent("store"))
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(cfg, storages, o, logger)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(cfg *config.ClientConfig, storages *store.ClientStorages, o options, logger *logger.Logger) (*App, error) {
	adapterLog := logger.WithComponent("adapter")
	session := adapter.NewSessionWatcher(cfg.Adapter.Token, adapterLog)

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, session, adapterLog)
	if err != nil {
		return nil, fmt.Errorf("create backend adapter: %w", err)
	}
	live, err := adapter.NewWebSocketEventStream(cfg.Adapter, backend.Token, session, adapterLog)
	if err != nil {
		return nil, fmt.Errorf("create live event stream: %w", err)
	}
	events := storages.EventRepository(adapter.NewEventSource(backend, live), logger)

	cryptoLog := logger.WithComponent("crypto_tx")
	mls := crypto.NewProvider("mls", o.mls)
	proteus := crypto.NewProvider("proteus", o.proteus)

	services := service.NewClientServices(service.ClientServicesDeps{
		Config:            cfg,
		Storages:          storages,
		Events:            events,
		Backend:           backend,
		Session:           session,
		MLS:               mls,
		Coordinator:       crypto.NewCoordinator(mls, proteus, cryptoLog),
		Epochs:            crypto.NewEpochBus(cryptoLog),
		ClientID:          utils.NewObservable(models.ClientID(cfg.App.ClientID)),
		EnrollmentBlocked: utils.NewObservable(false),
	}, logger)

	app := &App{
		storages: storages,
		session:  session,
		services: services,
		logger:   logger,
	}

	handlers, err := handler.NewHandlers(services, o.build, cfg.Diagnostics, logger)
	switch {
	case handler.IsDisabled(err):
		logger.Info().Msg("diagnostics server disabled")
	case err != nil:
		return nil, fmt.Errorf("create diagnostics handlers: %w", err)
	default:
		if app.diagnostics, err = server.NewServer(handlers, cfg.Diagnostics, logger); err != nil {
			return nil, fmt.Errorf("create diagnostics server: %w", err)
		}
	}

	return app, nil
}

// Services exposes the wired services to embedding programs.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run starts the session watcher, sync and the diagnostics server and
// blocks until ctx ends or one of them fails. The database is closed on
// return. A canceled ctx is a clean exit.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("close local storage")
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.session.Run(ctx) })
	g.Go(func() error { return a.services.Sync.Start(ctx) })
	if a.diagnostics != nil {
		g.Go(func() error { return a.diagnostics.Run(ctx) })
	}

	a.logger.Info().Bool("diagnostics", a.diagnostics != nil).Msg("client started")
	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	a.logger.Info().Err(err).Msg("client stopped")
	return err
}
