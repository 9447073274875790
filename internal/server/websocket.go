package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/hailam/chesscore/internal/service"
)

// MessageType names the kinds of WebSocket messages.
type MessageType string

// Message types. Replies reuse the request type, or MessageTypeError.
const (
	MessageTypeMoves  MessageType = "moves"
	MessageTypeVerify MessageType = "verify"
	MessageTypeError  MessageType = "error"
)

// Message is the envelope of every WebSocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// WebSocketController answers move and verify queries over /ws/moves.
type WebSocketController struct {
	svc *service.MoveService
}

// NewWebSocketController creates a controller backed by svc.
func NewWebSocketController(svc *service.MoveService) *WebSocketController {
	return &WebSocketController{svc: svc}
}

// HandleConnection answers each text frame until the client disconnects.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		reply := wsc.handleFrame(message)
		if err := c.WriteJSON(reply); err != nil {
			log.Printf("websocket write error: %v", err)
			break
		}
	}
}

// handleFrame decodes one frame and builds the reply, turning failures
// into error messages.
func (wsc *WebSocketController) handleFrame(frame []byte) Message {
	var msg Message
	if err := json.Unmarshal(frame, &msg); err != nil {
		return errorMessage(fmt.Errorf("parse error: %w", err))
	}
	reply, err := wsc.handleMessage(msg)
	if err != nil {
		return errorMessage(err)
	}
	return reply
}

func (wsc *WebSocketController) handleMessage(msg Message) (Message, error) {
	var req MovesRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return Message{}, fmt.Errorf("payload: %w", err)
	}

	var result any
	var err error
	switch msg.Type {
	case MessageTypeMoves:
		result, err = wsc.svc.Moves(req.FEN, req.Square)
	case MessageTypeVerify:
		result, err = wsc.svc.Verify(req.FEN)
	default:
		return Message{}, fmt.Errorf("unknown message type: %s", msg.Type)
	}
	if err != nil {
		return Message{}, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return Message{}, err
	}
	return Message{Type: msg.Type, Payload: payload}, nil
}

func errorMessage(err error) Message {
	payload, _ := json.Marshal(map[string]string{"error": err.Error()})
	return Message{Type: MessageTypeError, Payload: payload}
}
