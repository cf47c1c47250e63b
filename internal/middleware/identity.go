// Package middleware resolves the authenticated actor for a request.
// The resolver never rejects a request itself; operations that need an
// actor fail with apperr.ErrUnauthenticated when none was bound.
package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/game-store/internal/apperr"
	"github.com/gamevault/game-store/internal/logging"
	"github.com/gamevault/game-store/internal/token"
)

const (
	ctxUserID   = "userID"
	ctxUsername = "username"
	ctxResolved = "identityResolved"
)

// ResolveIdentity reads the bearer credential, verifies it against its
// own subject and binds (userID, username) into the request context.
// A guard key makes a second pass through the resolver a no-op.
func ResolveIdentity(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if done, ok := c.Get(ctxResolved).(bool); ok && done {
				return next(c)
			}
			c.Set(ctxResolved, true)

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			subject, err := tokens.ExtractSubject(raw)
			if err != nil {
				logging.FromContext(ctx).Warn("token rejected", "error", err)
				return next(c)
			}

			if c.Get(ctxUserID) != nil {
				return next(c)
			}

			if !tokens.Verify(raw, subject) {
				logging.FromContext(ctx).Warn("token verification failed", "subject", subject)
				return next(c)
			}

			userID, err := tokens.ExtractUserID(raw)
			if err != nil || userID == 0 {
				return next(c)
			}

			c.Set(ctxUserID, userID)
			c.Set(ctxUsername, subject)
			return next(c)
		}
	}
}

// Actor returns the identity bound by ResolveIdentity.
func Actor(c echo.Context) (uint, string, error) {
	userID, ok := c.Get(ctxUserID).(uint)
	if !ok || userID == 0 {
		return 0, "", fmt.Errorf("no actor bound to request: %w", apperr.ErrUnauthenticated)
	}
	username, _ := c.Get(ctxUsername).(string)
	return userID, username, nil
}
