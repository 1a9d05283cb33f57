package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/config"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/view"
)

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
	server *http.Server
}

// New - builds the browser facing server: page, actions, JSON view, static files and ping.
func New(logger *slog.Logger, conf *config.Config, shell shellUseCase, renderer *view.Renderer) *Server {
	log := logger.With("component", "rest")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = newTemplateRenderer(renderer)

	e.Use(middleware.Recover())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ContentSecurityPolicy: "default-src 'self'",
		ReferrerPolicy:        "same-origin",
	}))
	e.Use(requestLogger(log))
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(conf.Session.Secret))))

	cookies := newSessionCookies(log, conf.Session.TTL)
	game := NewGameHandler(log, shell, cookies)
	ping := NewPingHandler()

	e.GET("/", game.Index)
	e.GET("/api/view", game.View)
	e.POST("/game/refresh", game.Refresh)
	e.POST("/game/reset", game.Reset)
	e.POST("/game/move", game.Move)
	e.POST("/theme/toggle", game.ToggleTheme)
	e.GET("/ping", ping.Ping)
	e.StaticFS("/static", view.Static())

	return &Server{
		logger: log,
		echo:   e,
		server: &http.Server{
			Addr:         ":" + conf.HTTPPort,
			Handler:      e,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start - serves until Shutdown is called.
func (that *Server) Start() error {
	that.logger.Info("Starting HTTP server", "addr", that.server.Addr)

	if err := that.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}

			if v.Error != nil {
				logger.Error("request failed", append(attrs, "error", v.Error)...)
				return nil
			}

			logger.Debug("request", attrs...)
			return nil
		},
	})
}
