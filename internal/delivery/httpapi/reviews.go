package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type reviewAPI struct {
	service ReviewService
}

func registerReviewAPI(g *echo.Group, svc ReviewService) {
	api := reviewAPI{service: svc}

	g.POST("/reviews", api.rate)
	g.GET("/users/:id/reviews/next", api.next)
	g.GET("/users/:id/reviews/due-count", api.dueCount)
}

func (api *reviewAPI) rate(c echo.Context) error {
	data := new(rateRequest)
	if err := bind(c, data); err != nil {
		return err
	}

	res, err := api.service.Rate(c.Request().Context(), data.UserID, uuid.MustParse(data.FlashcardID), *data.Quality)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newRateResponse(res))
}

func (api *reviewAPI) next(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	card, err := api.service.NextDue(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newFlashcardResponse(card))
}

func (api *reviewAPI) dueCount(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	count, err := api.service.CountDue(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dueCountResponse{DueCount: count})
}
