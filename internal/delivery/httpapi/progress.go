package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerProgressAPI(g *echo.Group, svc ProgressService) {
	g.GET("/users/:id/progress", func(c echo.Context) error {
		userID, err := userIDParam(c)
		if err != nil {
			return err
		}

		summary, err := svc.Summary(c.Request().Context(), userID)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, newProgressResponse(summary))
	})
}
