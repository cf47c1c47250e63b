package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/game-store/internal/events"
	"github.com/gamevault/game-store/internal/logging"
	"github.com/gamevault/game-store/internal/middleware"
	"github.com/gamevault/game-store/internal/service"
)

type AuthHTTP struct {
	Svc      *service.UserService
	Producer *events.Producer
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.register")

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	res, err := h.Svc.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		l.Warn("register_error", "error", err)
		return respondError(c, err)
	}

	publish(c, h.Producer, events.TopicUserEvents, res.User.ID, map[string]any{
		"type":     "user_registered",
		"user_id":  res.User.ID,
		"username": res.User.Username,
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "User registered successfully",
		"user":    res.User,
		"token":   res.Token,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.login")

	var req struct {
		Credential string `json:"credential"`
		Password   string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "message": "invalid body"})
	}

	res, err := h.Svc.Login(ctx, req.Credential, req.Password)
	if err != nil {
		l.Warn("login_error", "error", err)
		return respondError(c, err)
	}

	publish(c, h.Producer, events.TopicUserEvents, res.User.ID, map[string]any{
		"type":     "user_logged_in",
		"user_id":  res.User.ID,
		"username": res.User.Username,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Login successful",
		"user":    res.User,
		"token":   res.Token,
	})
}

func (h *AuthHTTP) Profile(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "users.profile")

	userID, _, err := middleware.Actor(c)
	if err != nil {
		l.Warn("profile_error", "status", 401, "error", err)
		return respondError(c, err)
	}

	user, err := h.Svc.GetProfile(ctx, userID)
	if err != nil {
		l.Error("profile_error", "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    user,
	})
}
