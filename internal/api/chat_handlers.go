package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// chatClient calls the configured assistant upstream
var chatClient = &http.Client{Timeout: 60 * time.Second}

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// ChatMessage is one exchange with the assistant
type ChatMessage struct {
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// ChatReply is the relayed upstream answer
type ChatReply struct {
	ID    string `json:"id"`
	Reply string `json:"reply"`
}

// askUpstream forwards one message to the assistant upstream and
// returns its answer
func askUpstream(message string) (string, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, cfg.ChatUpstreamURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.ChatAPIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.ChatAPIKey)
	}

	resp, err := chatClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var parsed struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed.Reply == "" {
		// Upstreams that answer with plain text are relayed as-is
		return string(raw), nil
	}

	return parsed.Reply, nil
}

// chatHandler handles POST /api/chat
func chatHandler(c echo.Context) error {
	if cfg.ChatUpstreamURL == "" {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "assistant is not configured",
		})
	}

	var msg ChatMessage
	if err := c.Bind(&msg); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "invalid request body",
		})
	}
	if msg.Message == "" {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{
			"error": "message is required",
		})
	}

	reply, err := askUpstream(msg.Message)
	if err != nil {
		c.Logger().Error("chat upstream error: ", err)
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "assistant is unavailable",
		})
	}

	return c.JSON(http.StatusOK, ChatReply{
		ID:    uuid.New().String(),
		Reply: reply,
	})
}

// chatWebSocketHandler handles GET /api/chat/ws. Authentication happens
// inside the handler: the session cookie travels with the WebSocket
// handshake request.
func chatWebSocketHandler(c echo.Context) error {
	if cfg.ChatUpstreamURL == "" {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "assistant is not configured",
		})
	}

	user := authService.ResolveUser(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "authentication required",
		})
	}

	ws, err := chatUpgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	for {
		var msg ChatMessage
		if err := ws.ReadJSON(&msg); err != nil {
			return nil // client went away
		}
		if msg.Message == "" {
			continue
		}

		reply, err := askUpstream(msg.Message)
		if err != nil {
			c.Logger().Error("chat upstream error: ", err)
			ws.WriteJSON(map[string]string{"error": "assistant is unavailable"})
			continue
		}

		id := msg.ID
		if id == "" {
			id = uuid.New().String()
		}
		if err := ws.WriteJSON(ChatReply{ID: id, Reply: reply}); err != nil {
			return nil
		}
	}
}
