package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/lifemon/lifemon-services/internal/apisvc/auth"
	"github.com/lifemon/lifemon-services/internal/apisvc/models"
	"github.com/lifemon/lifemon-services/internal/comm"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// cross origin is already policed by the CORS middleware; websocket
	// upgrades carry the JWT through the auth group
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (h *Handler) ListChatMessages(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.callerID(w, r); !ok {
		return
	}
	room := chi.URLParam(r, "room")

	var limit int64
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			h.fail(w, http.StatusBadRequest, "limit tidak valid")
			return
		}
		limit = n
	}

	msgs, err := h.deps.Chat.ListMessages(r.Context(), room, limit)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if msgs == nil {
		msgs = []*models.ChatMessage{} // empty array, not null
	}

	h.ok(w, msgs, "")
}

func (h *Handler) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	room := chi.URLParam(r, "room")

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.fail(w, http.StatusBadRequest, "body request tidak valid")
		return
	}

	msg, err := h.deps.Chat.SendMessage(r.Context(), room, userID, auth.Name(r), body.Text)
	if err != nil {
		h.serviceError(w, err)
		return
	}

	h.ok(w, msg, "Pesan terkirim")
}

// HandleWebSocket upgrades the request and pumps frames into the registry.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.callerID(w, r)
	if !ok {
		return
	}
	senderName := auth.Name(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorf("Failed to upgrade to WebSocket: %v", err)
		return
	}

	socketId := uuid.New().String()
	h.deps.Registry.StoreConnection(socketId, conn)

	log.Infof("New WebSocket connection established: %s (user %d)", socketId, userID)

	go h.handleConnection(conn, socketId, userID, senderName)
}

func (h *Handler) handleConnection(conn *websocket.Conn, socketId string, userID int64, senderName string) {
	defer func() {
		log.Infof("Closing WebSocket connection: %s", socketId)
		conn.Close()
		h.deps.Registry.HandleDisconnect(socketId, senderName)
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Errorf("WebSocket unexpected close error for socket %s: %v", socketId, err)
			} else {
				log.Infof("WebSocket connection closed normally for socket: %s", socketId)
			}
			break
		}

		message := &comm.WSMessage{}
		if err := json.Unmarshal(raw, &message); err != nil {
			log.Errorf("Failed to unmarshal message from socket %s: %v", socketId, err)
			h.sendErrorToClient(socketId, "Invalid message format")
			continue // skip this message, keep the connection
		}

		message.SocketId = socketId
		h.deps.Registry.SocketMessage(socketId, userID, senderName, message)
	}
}

// sendErrorToClient sends an error message back to the WebSocket client.
// The frame goes through the registry so it takes the connection's write
// lock; a broadcast from another socket may be writing at the same moment.
func (h *Handler) sendErrorToClient(socketId string, errorMsg string) {
	errorResponse := map[string]interface{}{
		"type":  "error",
		"error": errorMsg,
	}

	if data, err := json.Marshal(errorResponse); err == nil {
		if err := h.deps.Registry.WriteTo(socketId, data); err != nil {
			log.Errorf("Failed to send error message to client: %v", err)
		}
	}
}
