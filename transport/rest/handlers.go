package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/entity"
	"github.com/rocketscienceinc/tictactoe-frontend/internal/view"
)

const homePath = "/"

type shellUseCase interface {
	Load(ctx context.Context, id string) (*entity.Session, error)
	FetchState(ctx context.Context, id string) (*entity.Session, error)
	StartOrReset(ctx context.Context, id string) (*entity.Session, error)
	SubmitMove(ctx context.Context, id string, row, col int) (*entity.Session, error)
	ToggleTheme(ctx context.Context, id string) (*entity.Session, error)
}

type GameHandler interface {
	Index(ctx echo.Context) error
	View(ctx echo.Context) error
	Refresh(ctx echo.Context) error
	Reset(ctx echo.Context) error
	Move(ctx echo.Context) error
	ToggleTheme(ctx echo.Context) error
}

type gameHandler struct {
	logger  *slog.Logger
	shell   shellUseCase
	cookies *sessionCookies
}

func NewGameHandler(logger *slog.Logger, shell shellUseCase, cookies *sessionCookies) GameHandler {
	return &gameHandler{
		logger:  logger,
		shell:   shell,
		cookies: cookies,
	}
}

// Index - renders the page; a session seen for the first time fetches the game first.
func (that *gameHandler) Index(ctx echo.Context) error {
	session, err := that.load(ctx, "Index")
	if err != nil {
		return err
	}

	return ctx.Render(http.StatusOK, view.PageTemplate, view.RenderPage(session))
}

// View - the same page model as JSON.
func (that *gameHandler) View(ctx echo.Context) error {
	session, err := that.load(ctx, "View")
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, view.RenderPage(session))
}

func (that *gameHandler) Refresh(ctx echo.Context) error {
	return that.act(ctx, "Refresh", that.shell.FetchState)
}

func (that *gameHandler) Reset(ctx echo.Context) error {
	return that.act(ctx, "Reset", that.shell.StartOrReset)
}

func (that *gameHandler) ToggleTheme(ctx echo.Context) error {
	return that.act(ctx, "ToggleTheme", that.shell.ToggleTheme)
}

// Move - reads the square from the form fields row and col.
func (that *gameHandler) Move(ctx echo.Context) error {
	var row, col int

	err := echo.FormFieldBinder(ctx).
		MustInt("row", &row).
		MustInt("col", &col).
		BindError()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid move coordinates")
	}

	return that.act(ctx, "Move", func(reqCtx context.Context, id string) (*entity.Session, error) {
		return that.shell.SubmitMove(reqCtx, id, row, col)
	})
}

func (that *gameHandler) load(ctx echo.Context, method string) (*entity.Session, error) {
	log := that.logger.With("method", method)

	id, err := that.cookies.ID(ctx)
	if err != nil {
		log.Error("failed to resolve session", "error", err)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	session, err := that.shell.Load(ctx.Request().Context(), id)
	if err != nil {
		log.Error("failed to load session", "session", id, "error", err)
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return session, nil
}

// act runs one shell action and sends the browser back to the page.
func (that *gameHandler) act(
	ctx echo.Context,
	method string,
	action func(ctx context.Context, id string) (*entity.Session, error),
) error {
	log := that.logger.With("method", method)

	id, err := that.cookies.ID(ctx)
	if err != nil {
		log.Error("failed to resolve session", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	_, err = action(ctx.Request().Context(), id)
	if err != nil && !errors.Is(err, apperror.ErrActionInProgress) {
		log.Error("action failed", "session", id, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.Redirect(http.StatusSeeOther, homePath)
}
