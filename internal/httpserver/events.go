package httpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gamevault/game-store/internal/events"
	"github.com/gamevault/game-store/internal/logging"
)

// publish fires a domain event after a successful mutation. Failures are
// logged and never fail the request.
func publish(c echo.Context, p *events.Producer, topic string, key uint, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := p.PublishEvent(ctx, topic, fmt.Sprint(key), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event publish failed", "topic", topic, "error", err)
	}
}
