package api

import (
	"net/http"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/tarsy-project/tarsy/pkg/metrics"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to
// ConnectionManager. Cross-origin connections are accepted only for origins
// in allowed_ws_origins; with an empty list the library's same-origin check
// applies.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: s.cfg.AllowedWSOrigins,
	})
	if err != nil {
		return err
	}

	metrics.Default().WSConnectionOpened()
	defer metrics.Default().WSConnectionClosed()

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn)
	return nil
}
