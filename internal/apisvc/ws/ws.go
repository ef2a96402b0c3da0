package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/lifemon/lifemon-services/internal/apisvc/service"
	"github.com/lifemon/lifemon-services/internal/comm"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Registry tracks live chat sockets and fans messages out per room.
type Registry struct {
	connMap sync.Map // socketId -> *conn
	roomMap sync.Map // socketId -> room
	chat    *service.ChatService
}

// conn wraps a websocket connection with a write lock; gorilla connections
// do not allow concurrent writers.
type conn struct {
	sock *websocket.Conn
	mu   sync.Mutex
}

func (c *conn) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sock.WriteMessage(websocket.TextMessage, data)
}

func NewRegistry(chat *service.ChatService) *Registry {
	return &Registry{chat: chat}
}

// SocketMessage dispatches a frame from a web client.
func (s *Registry) SocketMessage(socketId string, senderID int64, senderName string, message *comm.WSMessage) {
	switch message.Type {
	case "join":
		s.handleJoin(socketId, senderName, message)
	case "chat":
		s.handleChat(socketId, senderID, senderName, message)
	default:
		log.Warnf("unknown event received: %s", message.Type)
	}
}

func (s *Registry) handleJoin(socketId, senderName string, msg *comm.WSMessage) {
	var payload comm.JoinPayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil || payload.Room == "" {
		log.Errorf("malformed join payload from socket %s", socketId)
		return
	}

	s.StoreRoom(socketId, payload.Room)

	note, _ := json.Marshal(comm.RoomNotification{
		Room:     payload.Room,
		SocketId: socketId,
		Nama:     senderName,
		Type:     "joined",
	})
	s.Broadcast(payload.Room, envelope("room", note))

	log.Infof("socket %s joined room %s", socketId, payload.Room)
}

func (s *Registry) handleChat(socketId string, senderID int64, senderName string, msg *comm.WSMessage) {
	var payload comm.ChatPayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		log.Errorf("malformed chat payload from socket %s: %v", socketId, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	saved, err := s.chat.SendMessage(ctx, payload.Room, senderID, senderName, payload.Text)
	if err != nil {
		log.Errorf("failed to persist chat message from socket %s: %v", socketId, err)
		return
	}

	data, err := json.Marshal(saved)
	if err != nil {
		log.Errorf("failed to marshal chat message: %v", err)
		return
	}

	s.Broadcast(payload.Room, envelope("chat", data))
}

func envelope(typ string, data json.RawMessage) []byte {
	out, _ := json.Marshal(comm.WSMessage{Type: typ, Data: data})
	return out
}

// WriteTo writes one frame to a single socket. All writes to a connection,
// including error replies from its own read loop, must go through here so
// they serialize on the same lock as Broadcast.
func (s *Registry) WriteTo(socketId string, data []byte) error {
	c, ok := s.connMap.Load(socketId)
	if !ok {
		return fmt.Errorf("unknown socket %s", socketId)
	}
	return c.(*conn).write(data)
}

// Broadcast writes a frame to every socket currently in the room.
func (s *Registry) Broadcast(room string, data []byte) {
	s.roomMap.Range(func(key, value interface{}) bool {
		if value.(string) != room {
			return true
		}
		if c, ok := s.connMap.Load(key.(string)); ok {
			if err := c.(*conn).write(data); err != nil {
				log.Warnf("failed to write to socket %s: %v", key.(string), err)
			}
		}
		return true // continue iterating
	})
}

func (s *Registry) StoreConnection(socketId string, sock *websocket.Conn) {
	s.connMap.Store(socketId, &conn{sock: sock})
}

func (s *Registry) StoreRoom(socketId string, room string) {
	s.roomMap.Store(socketId, room)
}

func (s *Registry) GetRoom(socketId string) (string, bool) {
	room, ok := s.roomMap.Load(socketId)
	if !ok {
		return "", false
	}
	return room.(string), true
}

// HandleDisconnect forgets a socket and tells its room.
func (s *Registry) HandleDisconnect(socketId string, senderName string) {
	room, hadRoom := s.GetRoom(socketId)
	s.connMap.Delete(socketId)
	s.roomMap.Delete(socketId)

	if hadRoom {
		note, _ := json.Marshal(comm.RoomNotification{
			Room:     room,
			SocketId: socketId,
			Nama:     senderName,
			Type:     "left",
		})
		s.Broadcast(room, envelope("room", note))
	}
}
