package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aliskhannn/flashcards/internal/domain/entities"
)

type userAPI struct {
	users UserService
	reset ResetService
}

func registerUserAPI(g *echo.Group, users UserService, reset ResetService) {
	api := userAPI{users: users, reset: reset}

	ug := g.Group("/users/:id")
	ug.PUT("", api.upsert)
	ug.GET("", api.retrieve)
	ug.DELETE("/progress", api.resetProgress)
}

// upsert registers the user or refreshes their profile.
func (api *userAPI) upsert(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}
	data := new(userRequest)
	if err := bind(c, data); err != nil {
		return err
	}

	user := entities.NewUser(userID, data.ChatID)
	user.FirstName = data.FirstName
	user.LastName = data.LastName
	user.Username = data.Username
	user.LanguageCode = data.LanguageCode

	if err := api.users.EnsureUser(c.Request().Context(), user); err != nil {
		return err
	}

	stored, err := api.users.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(stored))
}

func (api *userAPI) retrieve(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	user, err := api.users.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

// resetProgress forgets every rating of the user; cards stay.
func (api *userAPI) resetProgress(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}
	if err := api.reset.ResetUser(c.Request().Context(), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
