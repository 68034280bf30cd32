package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/aliskhannn/flashcards/internal/validation"
)

type Options struct {
	Address        string
	DisableReqLogs bool
	Logger         *zap.Logger
	Validator      *validation.Validator
	Reviews        ReviewService
	Flashcards     FlashcardService
	Progress       ProgressService
	Users          UserService
	Reset          ResetService
	DB             Pinger
}

// Server is the JSON API.
type Server struct {
	opts *Options
	app  *echo.Echo
}

func NewServer(opts *Options) *Server {
	s := &Server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.HidePort = true
	s.app.Validator = s.opts.Validator
	s.app.HTTPErrorHandler = newErrorHandler(s.opts.Logger, s.opts.Validator)

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(requestLogger(s.opts.Logger))
	}
	s.app.Use(middleware.Recover())

	s.app.GET("/healthz", s.health)

	v1 := s.app.Group("/v1")
	registerReviewAPI(v1, s.opts.Reviews)
	registerFlashcardAPI(v1, s.opts.Flashcards)
	registerProgressAPI(v1, s.opts.Progress)
	registerUserAPI(v1, s.opts.Users, s.opts.Reset)
}

// Start serves until Stop is called.
func (s *Server) Start() error {
	s.opts.Logger.Info("http server started", zap.String("address", s.opts.Address))
	if err := s.app.Start(s.opts.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}

func (s *Server) health(c echo.Context) error {
	if s.opts.DB != nil {
		if err := s.opts.DB.Ping(c.Request().Context()); err != nil {
			s.opts.Logger.Warn("health check failed", zap.Error(err))
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
