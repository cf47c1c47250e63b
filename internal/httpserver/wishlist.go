package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/game-store/internal/events"
	"github.com/gamevault/game-store/internal/logging"
	"github.com/gamevault/game-store/internal/middleware"
	"github.com/gamevault/game-store/internal/service"
)

type WishlistHTTP struct {
	Svc      *service.WishlistService
	Producer *events.Producer
}

func (h *WishlistHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.add")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("wishlist_add_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	var req struct {
		GameID uint `json:"gameId"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("wishlist_add_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	item, err := h.Svc.AddToWishlist(ctx, userID, req.GameID)
	if err != nil {
		l.Warn("wishlist_add_error", "error", err)
		return respondError(c, err)
	}

	publish(c, h.Producer, events.TopicWishlistEvents, userID, map[string]any{
		"type":    "wishlist_item_added",
		"user_id": userID,
		"game_id": req.GameID,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success":      true,
		"message":      "Game added to wishlist",
		"wishlistItem": item,
	})
}

func (h *WishlistHTTP) Remove(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.remove")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("wishlist_remove_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	var req struct {
		GameID uint `json:"gameId"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("wishlist_remove_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	if err := h.Svc.RemoveFromWishlist(ctx, userID, req.GameID); err != nil {
		l.Warn("wishlist_remove_error", "error", err)
		return respondError(c, err)
	}

	publish(c, h.Producer, events.TopicWishlistEvents, userID, map[string]any{
		"type":    "wishlist_item_removed",
		"user_id": userID,
		"game_id": req.GameID,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Game removed from wishlist",
	})
}

func (h *WishlistHTTP) Toggle(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.toggle")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("wishlist_toggle_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	var req struct {
		GameID uint `json:"gameId"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("wishlist_toggle_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	inWishlist, err := h.Svc.Toggle(ctx, userID, req.GameID)
	if err != nil {
		l.Warn("wishlist_toggle_error", "error", err)
		return respondError(c, err)
	}

	msg := "Game removed from wishlist"
	if inWishlist {
		msg = "Game added to wishlist"
	}

	publish(c, h.Producer, events.TopicWishlistEvents, userID, map[string]any{
		"type":        "wishlist_toggled",
		"user_id":     userID,
		"game_id":     req.GameID,
		"in_wishlist": inWishlist,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"message":    msg,
		"inWishlist": inWishlist,
	})
}

func (h *WishlistHTTP) Get(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.get")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("wishlist_get_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	items, err := h.Svc.GetWishlistItems(ctx, userID)
	if err != nil {
		l.Error("wishlist_get_error", "error", err)
		return respondError(c, err)
	}
	count, err := h.Svc.GetWishlistCount(ctx, userID)
	if err != nil {
		l.Error("wishlist_get_error", "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"count": count,
	})
}

func (h *WishlistHTTP) GetCount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.count")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("wishlist_count_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	count, err := h.Svc.GetWishlistCount(ctx, userID)
	if err != nil {
		l.Error("wishlist_count_error", "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

func (h *WishlistHTTP) Check(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "wishlist.check")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("wishlist_check_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	gameID, err := strconv.Atoi(c.Param("gameId"))
	if err != nil || gameID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid game id"})
	}

	present, err := h.Svc.IsInWishlist(ctx, userID, uint(gameID))
	if err != nil {
		l.Error("wishlist_check_error", "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"inWishlist": present})
}
