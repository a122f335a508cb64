package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Dosada05/flag-league/live"
	"github.com/Dosada05/flag-league/models"
	"github.com/gorilla/websocket"
)

// scoreboardSource is the part of the scorecard service the live feed needs. The board
// doubles as the existence check and as the first frame a viewer receives.
type scoreboardSource interface {
	Scoreboard(ctx context.Context, tournamentID int) (*models.Scoreboard, error)
}

type WebSocketHandler struct {
	hub      *live.Hub
	boards   scoreboardSource
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWebSocketHandler accepts connections from allowedOrigins; "*" allows any origin.
func NewWebSocketHandler(hub *live.Hub, boards scoreboardSource, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub:    hub,
		boards: boards,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// ServeWs подключает зрителя к живому табло турнира.
// Клиент должен подключаться к /ws/tournaments/{tournamentID}
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	board, err := h.boards.Scoreboard(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// upgrader.Upgrade сам отправляет HTTP ошибку клиенту
		h.logger.Warn("websocket upgrade failed", slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		return
	}

	room := live.TournamentRoom(tournamentID)
	client := live.NewClient(h.hub, conn, room)
	// Текущее табло уходит первым кадром, до любых обновлений комнаты
	client.Send(live.Message{Type: live.MessageScoreboard, Payload: board})
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	h.logger.Debug("live client connected", slog.String("room", room))
}
