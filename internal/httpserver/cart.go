package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/game-store/internal/events"
	"github.com/gamevault/game-store/internal/logging"
	"github.com/gamevault/game-store/internal/middleware"
	"github.com/gamevault/game-store/internal/service"
)

type CartHTTP struct {
	Svc      *service.CartService
	Producer *events.Producer
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("add_to_cart_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	var req struct {
		GameID uint `json:"gameId"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	item, err := h.Svc.AddToCart(ctx, userID, req.GameID)
	if err != nil {
		l.Warn("add_to_cart_error", "error", err)
		return respondError(c, err)
	}

	count, err := h.Svc.GetCartItemCount(ctx, userID)
	if err != nil {
		l.Error("add_to_cart_error", "error", err)
		return respondError(c, err)
	}

	publish(c, h.Producer, events.TopicCartEvents, userID, map[string]any{
		"type":    "cart_item_added",
		"user_id": userID,
		"game_id": req.GameID,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"message":       "Game added to cart",
		"cartItem":      item,
		"cartItemCount": count,
	})
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("get_cart_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	items, err := h.Svc.GetCartItems(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "error", err)
		return respondError(c, err)
	}
	count, err := h.Svc.GetCartItemCount(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "error", err)
		return respondError(c, err)
	}
	total, err := h.Svc.GetCartTotal(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"count": count,
		"total": total,
	})
}

func (h *CartHTTP) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("update_cart_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	var req struct {
		GameID   uint `json:"gameId"`
		Quantity int  `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	item, err := h.Svc.UpdateQuantity(ctx, userID, req.GameID, req.Quantity)
	if err != nil {
		l.Warn("update_cart_error", "error", err)
		return respondError(c, err)
	}

	count, err := h.Svc.GetCartItemCount(ctx, userID)
	if err != nil {
		l.Error("update_cart_error", "error", err)
		return respondError(c, err)
	}

	publish(c, h.Producer, events.TopicCartEvents, userID, map[string]any{
		"type":     "cart_item_updated",
		"user_id":  userID,
		"game_id":  req.GameID,
		"quantity": req.Quantity,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"message":       "Cart updated",
		"cartItem":      item,
		"cartItemCount": count,
	})
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("remove_cart_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	var req struct {
		GameID uint `json:"gameId"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("remove_cart_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	if err := h.Svc.RemoveFromCart(ctx, userID, req.GameID); err != nil {
		l.Error("remove_cart_error", "error", err)
		return respondError(c, err)
	}

	count, err := h.Svc.GetCartItemCount(ctx, userID)
	if err != nil {
		l.Error("remove_cart_error", "error", err)
		return respondError(c, err)
	}

	publish(c, h.Producer, events.TopicCartEvents, userID, map[string]any{
		"type":    "cart_item_removed",
		"user_id": userID,
		"game_id": req.GameID,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"message":       "Item removed from cart",
		"cartItemCount": count,
	})
}

func (h *CartHTTP) GetCount(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.count")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("cart_count_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	count, err := h.Svc.GetCartItemCount(ctx, userID)
	if err != nil {
		l.Error("cart_count_error", "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
