package comm

import (
	"encoding/json"
)

// WSMessage is the frame exchanged with chat web clients.
type WSMessage struct {
	Type     string          `json:"type"` // e.g. "join", "chat"
	Data     json.RawMessage `json:"data"`
	SocketId string          `json:"socketid"`
}

// JoinPayload subscribes a socket to a room.
type JoinPayload struct {
	Room string `json:"room"`
}

// ChatPayload is an outbound message from a client.
type ChatPayload struct {
	Room string `json:"room"`
	Text string `json:"text"`
}

// RoomNotification announces membership changes to a room.
type RoomNotification struct {
	Room     string `json:"room"`
	SocketId string `json:"socketid"`
	Nama     string `json:"nama"`
	Type     string `json:"type"` // "joined" or "left"
}
