package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/game-store/internal/logging"
	"github.com/gamevault/game-store/internal/models"
	"github.com/gamevault/game-store/internal/service"
)

type GameHTTP struct {
	Svc *service.CatalogService
}

func parseID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func (h *GameHTTP) List(c echo.Context) error {
	games, err := h.Svc.ListGames(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, games)
}

func (h *GameHTTP) Get(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid game id"})
	}

	game, err := h.Svc.GetGame(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, game)
}

func (h *GameHTTP) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "games.create")

	var game models.Game
	if err := c.Bind(&game); err != nil {
		l.Warn("create_game_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	if err := h.Svc.AddGame(ctx, &game); err != nil {
		l.Warn("create_game_error", "error", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, game)
}

func (h *GameHTTP) CreateBulk(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "games.create.bulk")

	var games []models.Game
	if err := c.Bind(&games); err != nil {
		l.Warn("create_games_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	created, err := h.Svc.AddGames(ctx, games)
	if err != nil {
		l.Warn("create_games_error", "error", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *GameHTTP) Update(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "games.update")

	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid game id"})
	}

	var game models.Game
	if err := c.Bind(&game); err != nil {
		l.Warn("update_game_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	updated, err := h.Svc.UpdateGame(ctx, id, game)
	if err != nil {
		l.Warn("update_game_error", "error", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *GameHTTP) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid game id"})
	}

	if err := h.Svc.DeleteGame(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *GameHTTP) DeleteAll(c echo.Context) error {
	deleted, err := h.Svc.DeleteAllGames(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"deleted": deleted,
	})
}

func (h *GameHTTP) DeleteBatch(c echo.Context) error {
	var req struct {
		IDs []uint `json:"ids"`
	}
	if err := c.Bind(&req); err != nil || len(req.IDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "ids required"})
	}

	deleted, err := h.Svc.DeleteGames(c.Request().Context(), req.IDs)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"deleted": deleted,
	})
}

func (h *GameHTTP) OnSale(c echo.Context) error {
	games, err := h.Svc.GamesOnSale(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, games)
}

func (h *GameHTTP) ByGenre(c echo.Context) error {
	games, err := h.Svc.GamesByGenre(c.Request().Context(), c.Param("genre"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, games)
}

func (h *GameHTTP) ByPlatform(c echo.Context) error {
	games, err := h.Svc.GamesByPlatform(c.Request().Context(), c.Param("platform"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, games)
}

func (h *GameHTTP) ByRating(c echo.Context) error {
	min, err := strconv.ParseFloat(c.QueryParam("min"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "min rating required"})
	}

	games, err := h.Svc.GamesByMinRating(c.Request().Context(), min)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, games)
}

func (h *GameHTTP) Featured(c echo.Context) error {
	games, err := h.Svc.FeaturedGames(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, games)
}

func (h *GameHTTP) Search(c echo.Context) error {
	games, err := h.Svc.SearchGames(c.Request().Context(), c.QueryParam("title"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, games)
}
