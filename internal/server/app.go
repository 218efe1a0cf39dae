// Package server initializes and runs the portal backend. It selects storage
// backends and the event publisher from configuration, seeds the bootstrap
// credential in development setups, and runs the HTTP server with graceful
// shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscredentials "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/innovatech/employee-portal/internal/logging"
	"github.com/innovatech/employee-portal/internal/server/config"
	"github.com/innovatech/employee-portal/internal/server/events"
	"github.com/innovatech/employee-portal/internal/server/httpapi"
	"github.com/innovatech/employee-portal/internal/server/repositories/credentials"
	"github.com/innovatech/employee-portal/internal/server/repositories/employees"
	"github.com/innovatech/employee-portal/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	server  *httpapi.Server
	memRepo *employees.InMemoryRepository
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	app := &App{config: c, logger: logger}

	empRepo, err := app.buildEmployeeRepository(c)
	if err != nil {
		return nil, err
	}

	credRepo, err := app.buildCredentialsRepository(c)
	if err != nil {
		return nil, err
	}

	publisher, err := app.buildPublisher(c)
	if err != nil {
		return nil, err
	}

	auth := services.NewAuthService(credRepo, c.AllowedEmails, logger)

	// a fresh in-memory store has no logins at all; seed one for dev
	if c.CredentialsBackend != "postgres" && c.BootstrapEmail != "" {
		if err := auth.Register(context.Background(), c.BootstrapEmail, c.BootstrapPassword, c.BootstrapName); err != nil {
			return nil, fmt.Errorf("seed bootstrap credential: %w", err)
		}
	}

	emp := services.NewEmployeeService(empRepo, publisher, logger)
	app.server = httpapi.NewServer(auth, emp, logger)

	return app, nil
}

func (app *App) buildEmployeeRepository(c *config.Config) (employees.Repository, error) {
	switch c.EmployeeBackend {
	case "dynamodb":
		cfg, err := app.loadAWSConfig(c)
		if err != nil {
			return nil, err
		}
		client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
			if c.AWSBaseEndpoint != "" {
				o.BaseEndpoint = aws.String(c.AWSBaseEndpoint)
			}
		})
		return employees.NewDynamoDBRepository(client, c.EmployeesTable), nil
	case "memory":
		repo := employees.NewInMemoryRepository()
		app.memRepo = repo
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown employee backend %q", c.EmployeeBackend)
	}
}

func (app *App) buildCredentialsRepository(c *config.Config) (credentials.Repository, error) {
	switch c.CredentialsBackend {
	case "postgres":
		db, err := sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := credentials.RunMigrations(context.Background(), db); err != nil {
			return nil, fmt.Errorf("db migration error: %w", err)
		}
		return credentials.NewPostgresRepository(db), nil
	case "memory":
		return credentials.NewInMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown credentials backend %q", c.CredentialsBackend)
	}
}

func (app *App) buildPublisher(c *config.Config) (events.Publisher, error) {
	if c.EventBusName == "" {
		app.logger.Warn(context.Background(), "no event bus configured, recording events in memory")
		return events.NewMemoryPublisher(), nil
	}
	return events.NewEventBridgePublisher(context.Background(), events.EventBridgeOptions{
		Region:          c.AWSRegion,
		BaseEndpoint:    c.AWSBaseEndpoint,
		AccessKeyID:     c.AWSAccessKeyID,
		SecretAccessKey: c.AWSSecretAccessKey,
		EventBusName:    c.EventBusName,
	})
}

func (app *App) loadAWSConfig(c *config.Config) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.AWSRegion),
	}
	if c.AWSAccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			awscredentials.NewStaticCredentialsProvider(c.AWSAccessKeyID, c.AWSSecretAccessKey, "")))
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("aws config: %w", err)
	}
	return cfg, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	if app.memRepo != nil {
		app.memRepo.StartReaper(ctx, app.config.DeletingTTL, app.config.ReapInterval)
	}

	router := app.server.Router(httpapi.Options{
		RateLimitPerSecond: app.config.RateLimitPerSecond,
		RateLimitBurst:     app.config.RateLimitBurst,
	})

	srv := &http.Server{Addr: app.config.Addr, Handler: router}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, "http server error", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}
	app.logger.Info(shutdownCtx, "Server stopped")
}
