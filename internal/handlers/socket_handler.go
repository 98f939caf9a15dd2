package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"collabBoard/internal/broker"
	"collabBoard/internal/errs"
	"collabBoard/internal/models"
	"collabBoard/internal/msgs"
	"collabBoard/internal/services"
	"collabBoard/internal/utils"
)

// SocketHandler bridges the broadcast channels to browser websockets. Each
// connection is registered for its room's message and whiteboard channels;
// a single goroutine fans incoming events out to the registered clients.
type SocketHandler struct {
	mu          sync.Mutex
	upgrader    websocket.Upgrader
	channels    map[string][]*models.SocketClient
	authService *services.AuthenticationService
	stop        func()
}

type socketEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

func NewSocketHandler(subscriber broker.Subscriber, ctx context.Context, authService *services.AuthenticationService) *SocketHandler {
	sh := &SocketHandler{
		authService: authService,
		channels:    make(map[string][]*models.SocketClient),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	// Subscribe before spawning the fan-out goroutine so the stop function
	// is in place by the time the constructor returns; Shutdown can then
	// never observe a half-started handler.
	events, stop := subscriber.Subscribe(ctx, "room-*", "whiteboard-*")
	sh.stop = stop
	go sh.fanOutLoop(events)
	return sh
}

func (sh *SocketHandler) HandleSocketRoute(ctx *gin.Context) {
	userInfo, err := sh.authorize(ctx)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []string{errs.ErrUnauthorized.Error()},
		})
		return
	}

	roomID := ctx.Query("roomId")
	if roomID == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []string{errs.ErrInvalidRoomId.Error()},
		})
		return
	}

	ws, err := sh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	defer func(ws *websocket.Conn) {
		if err := ws.Close(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
	}(ws)

	client := &models.SocketClient{Conn: ws, UserId: userInfo.ID}
	subscribed := []string{
		broker.MessageChannel(roomID),
		broker.WhiteboardChannel(roomID),
	}

	sh.register(client, subscribed)
	defer sh.deregister(client, subscribed)

	// Clients publish through the REST API; the read loop only detects
	// disconnects.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (sh *SocketHandler) authorize(ctx *gin.Context) (*models.Claims, error) {
	jwtToken := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
	if jwtToken == "" {
		jwtToken = ctx.Query("token")
	}
	if jwtToken == "" {
		return nil, errs.ErrUnauthorized
	}
	return utils.VerifyToken(jwtToken, sh.authService.JwtKey())
}

func (sh *SocketHandler) register(client *models.SocketClient, channels []string) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	for _, channel := range channels {
		sh.channels[channel] = append(sh.channels[channel], client)
	}
}

// deregister is immediate: once it returns, no further events are written
// to the client.
func (sh *SocketHandler) deregister(client *models.SocketClient, channels []string) {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	for _, channel := range channels {
		clients := sh.channels[channel]
		for i, c := range clients {
			if c == client {
				sh.channels[channel] = append(clients[:i], clients[i+1:]...)
				break
			}
		}
		if len(sh.channels[channel]) == 0 {
			delete(sh.channels, channel)
		}
	}
}

func (sh *SocketHandler) fanOutLoop(events <-chan broker.Event) {
	for event := range events {
		sh.fanOut(event)
	}
}

func (sh *SocketHandler) fanOut(event broker.Event) {
	sh.mu.Lock()
	clients := append([]*models.SocketClient(nil), sh.channels[event.Channel]...)
	sh.mu.Unlock()

	for _, client := range clients {
		err := client.Conn.WriteJSON(socketEvent{
			Event:   event.Event,
			Payload: event.Payload,
		})
		if err != nil {
			log.Printf("Error writing json: %v", err)
			if err := client.Conn.Close(); err != nil {
				log.Printf("Error closing connection: %v", err)
			}
			sh.deregister(client, []string{event.Channel})
		}
	}
}

func (sh *SocketHandler) Shutdown() {
	sh.stop()
	sh.mu.Lock()
	defer sh.mu.Unlock()
	for channel, clients := range sh.channels {
		for _, client := range clients {
			if err := client.Conn.Close(); err != nil {
				log.Printf("Error closing connection: %v", err)
			}
		}
		delete(sh.channels, channel)
	}
}
