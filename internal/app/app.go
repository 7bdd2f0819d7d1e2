package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-playground/validator/v10"
	"github.com/oarslan/cinema-backoffice/internal/domain"
	"github.com/oarslan/cinema-backoffice/internal/fixtures"
	"github.com/oarslan/cinema-backoffice/internal/mailer"
	"github.com/oarslan/cinema-backoffice/internal/repository"
	appvalidator "github.com/oarslan/cinema-backoffice/internal/validator"
	"github.com/oarslan/cinema-backoffice/internal/vcs"
	"golang.org/x/crypto/bcrypt"
)

var (
	version = vcs.Version()
)

type application struct {
	config            config
	logger            *slog.Logger
	validator         *validator.Validate
	mailer            mailer.Mailer
	sessionManager    *scs.SessionManager
	metrics           metrics
	adminPasswordHash []byte

	movieRepo     domain.MovieRepository
	hallRepo      domain.HallRepository
	screeningRepo domain.ScreeningRepository
	bookingRepo   domain.BookingRepository
	userRepo      domain.UserRepository
	newsRepo      domain.NewsRepository
}

type config struct {
	port int
	env  string

	admin struct {
		email    string
		password string
	}

	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}

	otelCollectorUrl string
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.admin.email, "admin-email", "admin@cinema.local", "Back-office operator email")
	flag.StringVar(&cfg.admin.password, "admin-password", "", "Back-office operator password")

	flag.StringVar(&cfg.smtp.host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", "Cinema <no-reply@cinema.local>", "SMTP sender")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if cfg.admin.password == "" {
		return errors.New("admin-password must be set")
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.admin.password), 12)
	if err != nil {
		return err
	}

	validator := appvalidator.NewValidator()

	data, err := fixtures.Load()
	if err != nil {
		return err
	}

	// One id source across all collections, mirroring the time-based ids
	// already present in the fixture data.
	ids := domain.NewIDSource()

	app := &application{
		config:            cfg,
		logger:            logger,
		validator:         validator,
		mailer:            mailer.NewSMTPMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender),
		sessionManager:    newSessionManager(),
		adminPasswordHash: adminHash,
		movieRepo:         repository.NewInMemoryMovieRepository(data.Movies, ids),
		hallRepo:          repository.NewInMemoryHallRepository(data.Halls, ids),
		screeningRepo:     repository.NewInMemoryScreeningRepository(data.Screenings, ids),
		bookingRepo:       repository.NewInMemoryBookingRepository(data.Bookings, ids),
		userRepo:          repository.NewInMemoryUserRepository(data.Users, ids),
		newsRepo:          repository.NewInMemoryNewsRepository(data.News),
	}

	shutdownTelemetry, err := app.initTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

// newSessionManager uses the scs in-memory store: sessions, like the rest of
// the state here, do not survive a restart.
func newSessionManager() *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
