package transport

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"mediBookNotify/internal/modules/notifications/infrastructure"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewWebsocketHandler exposes /ws. A fresh connection is unbound; the client
// binds itself to its user's room with {"action":"join","userId":"..."}.
func NewWebsocketHandler(hub *infrastructure.Hub, sendBuffer int) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("ws upgrade failed", slog.String("ip", c.RealIP()), slog.Any("error", err))
			return err
		}

		client := infrastructure.NewClient(hub, conn, sendBuffer)
		go client.WritePump()
		go client.ReadPump()

		slog.Info("ws client connected", slog.String("connectionId", client.ID()), slog.String("ip", c.RealIP()))
		return nil
	}
}
