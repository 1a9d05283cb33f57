package rest

import (
	"fmt"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-frontend/internal/view"
)

type templateRenderer struct {
	renderer *view.Renderer
}

func newTemplateRenderer(renderer *view.Renderer) echo.Renderer {
	return &templateRenderer{renderer: renderer}
}

func (that *templateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	if err := that.renderer.Render(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
