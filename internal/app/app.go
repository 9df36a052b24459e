package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopscout/catalog-service/config"
	"github.com/shopscout/catalog-service/internal/controller"
	"github.com/shopscout/catalog-service/internal/infrastructure/tracing"
	"github.com/shopscout/catalog-service/internal/middleware"
	"github.com/shopscout/catalog-service/internal/repository"
	"github.com/shopscout/catalog-service/internal/service"
	"github.com/shopscout/catalog-service/pkg/auth"
	"github.com/shopscout/catalog-service/pkg/response"
)

type App struct {
	DB     *mongo.Database
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	app.Server = e

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	tracer := traceProvider.Tracer("catalog-service")

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
			defer span.End()

			req := c.Request()
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	})

	// Empty prefix so metrics aggregate cleanly across services
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")
	g.Use(middleware.Logger)

	productRepo := repository.CreateNewMongoDBProductRepository(app.DB)
	userRepo := repository.CreateNewMongoDBUserRepository(app.DB)

	indexCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := productRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create product indexes")
	}
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to create user indexes")
	}

	hasher := auth.BcryptHasher{}
	tokens := auth.CreateJWTIssuer(app.Config.JWTSecret)
	isLoggedIn := middleware.Auth(tokens)

	productSvc := service.CreateProductService(productRepo, *app.Config)
	userSvc := service.CreateUserService(userRepo, *app.Config, hasher, tokens)

	controller.CreateProductController(g, productSvc)
	controller.CreateUserController(g, userSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
