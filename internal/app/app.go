package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/planeta-guru/storefront-service/config"
	"github.com/planeta-guru/storefront-service/internal/controller"
	"github.com/planeta-guru/storefront-service/internal/identity"
	circuitbreaker "github.com/planeta-guru/storefront-service/internal/infrastructure/circuit-breaker"
	"github.com/planeta-guru/storefront-service/internal/infrastructure/tracing"
	localmiddleware "github.com/planeta-guru/storefront-service/internal/middleware"
	"github.com/planeta-guru/storefront-service/internal/reqcontext"
	"github.com/planeta-guru/storefront-service/internal/service"
	"github.com/planeta-guru/storefront-service/pkg/httpclient"
	"github.com/planeta-guru/storefront-service/pkg/response"
)

type App struct {
	Config *config.Config
	Server *echo.Echo

	metricsServer *echo.Echo
}

// Start wires the gateway and launches the listeners. It returns once the
// server goroutines are running; StopServer shuts them down.
func (app *App) Start() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	breaker := circuitbreaker.CreateCircuitBreaker("storefront-upstream")
	client, err := httpclient.CreateClient(
		app.Config.UpstreamConfig.BaseURL,
		app.Config.UpstreamConfig.PlatformKey,
		app.Config.UpstreamConfig.TimeoutMs,
		breaker,
	)
	if err != nil {
		return err
	}

	provider := identity.CreateJWTProvider(app.Config.JWTConfig.JWTSecret)
	resolver := reqcontext.CreateResolver(provider)

	services := controller.Services{
		Products:      service.CreateProductService(client),
		Wallet:        service.CreateWalletService(client),
		Packs:         service.CreatePackService(client),
		Legals:        service.CreateLegalService(client),
		Subscriptions: service.CreateSubscriptionService(client),
	}

	e := echo.New()
	e.HideBanner = true

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize tracing")
	} else {
		tracer := traceProvider.Tracer("storefront-service")
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Empty prefix so metrics aggregate across services without renaming.
	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")
	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	controller.CreateStorefrontController(g, services, resolver, localmiddleware.Authenticated(provider))

	app.metricsServer = echo.New()
	app.metricsServer.HideBanner = true
	app.metricsServer.GET("/metrics", echoprometheus.NewHandler())
	go func() {
		if err := app.metricsServer.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	app.Server = e
	go func() {
		if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	return nil
}

func (app *App) StopServer() error {
	if app.metricsServer != nil {
		if err := app.metricsServer.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown metrics server")
		}
	}
	if app.Server == nil {
		return nil
	}
	return app.Server.Shutdown(context.Background())
}
