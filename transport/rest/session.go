package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName  = "session"
	sessionIDKey = "id"
)

// sessionCookies hands every browser a random id kept in a signed cookie. The shell state itself
// stays on the server, keyed by that id.
type sessionCookies struct {
	logger *slog.Logger
	ttl    time.Duration
}

func newSessionCookies(logger *slog.Logger, ttl time.Duration) *sessionCookies {
	return &sessionCookies{
		logger: logger,
		ttl:    ttl,
	}
}

// ID - returns the session id of the request, issuing a new cookie when there is none.
func (that *sessionCookies) ID(ctx echo.Context) (string, error) {
	userSession, err := session.Get(sessionName, ctx)
	if userSession == nil {
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if err != nil {
		// a cookie signed with another secret decodes to a fresh session.
		that.logger.Debug("discarding unreadable session cookie", "error", err)
	}

	if id, ok := userSession.Values[sessionIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()

	userSession.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(that.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	userSession.Values[sessionIDKey] = id

	if err = userSession.Save(ctx.Request(), ctx.Response()); err != nil {
		return "", fmt.Errorf("failed to save session cookie: %w", err)
	}

	that.logger.Info("session cookie issued", "session", id)

	return id, nil
}
