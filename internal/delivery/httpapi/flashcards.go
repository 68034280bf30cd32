package httpapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/aliskhannn/flashcards/internal/service"
)

type flashcardAPI struct {
	service FlashcardService
}

func registerFlashcardAPI(g *echo.Group, svc FlashcardService) {
	api := flashcardAPI{service: svc}

	fg := g.Group("/flashcards")
	fg.POST("", api.create)
	fg.GET("/:id", api.retrieve)
	fg.PUT("/:id", api.update)
	fg.DELETE("/:id", api.destroy)

	dg := g.Group("/decks")
	dg.POST("", api.createDeck)
	dg.GET("/:id/flashcards", api.deckCards)
	dg.DELETE("/:id", api.destroyDeck)

	g.GET("/users/:id/decks", api.userDecks)
}

func (r flashcardRequest) input() service.FlashcardInput {
	in := service.FlashcardInput{OwnerID: r.OwnerID, Front: r.Front, Back: r.Back}
	if r.DeckID != nil {
		id := uuid.MustParse(*r.DeckID)
		in.DeckID = &id
	}
	return in
}

func (api *flashcardAPI) create(c echo.Context) error {
	data := new(flashcardRequest)
	if err := bind(c, data); err != nil {
		return err
	}

	card, err := api.service.Create(c.Request().Context(), data.input())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newFlashcardResponse(card))
}

func (api *flashcardAPI) retrieve(c echo.Context) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}

	card, err := api.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newFlashcardResponse(card))
}

func (api *flashcardAPI) update(c echo.Context) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}
	data := new(flashcardRequest)
	if err := bind(c, data); err != nil {
		return err
	}

	card, err := api.service.Update(c.Request().Context(), id, data.input())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newFlashcardResponse(card))
}

func (api *flashcardAPI) destroy(c echo.Context) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}
	if err := api.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (api *flashcardAPI) createDeck(c echo.Context) error {
	data := new(deckRequest)
	if err := bind(c, data); err != nil {
		return err
	}

	deck, err := api.service.CreateDeck(c.Request().Context(), service.DeckInput{OwnerID: data.OwnerID, Title: data.Title})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newDeckResponse(deck))
}

func (api *flashcardAPI) deckCards(c echo.Context) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}

	cards, err := api.service.ListByDeck(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newFlashcardList(cards))
}

func (api *flashcardAPI) destroyDeck(c echo.Context) error {
	id, err := uuidParam(c)
	if err != nil {
		return err
	}
	if err := api.service.DeleteDeck(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (api *flashcardAPI) userDecks(c echo.Context) error {
	userID, err := userIDParam(c)
	if err != nil {
		return err
	}

	decks, err := api.service.ListDecks(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]deckResponse, 0, len(decks))
	for _, d := range decks {
		out = append(out, newDeckResponse(d))
	}
	return c.JSON(http.StatusOK, out)
}
