package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 65536
)

var ErrConnectionClosed = websocket.ErrCloseSent

// Connection represents a WebSocket connection to a client
type Connection struct {
	id        string
	conn      *websocket.Conn
	send      chan *Message
	advisor   *Advisor
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, advisor *Advisor, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.New().String()

	return &Connection{
		id:      id,
		conn:    conn,
		send:    make(chan *Message, 64),
		advisor: advisor,
		logger:  logger.WithPrefix("conn").With("conn", id[:8]),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.send)
		err = c.conn.Close()
	})
	return err
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *Message) error {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed during shutdown
			c.logger.Debug("Attempted to send message on closed connection", "error", r)
		}
	}()

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		select {
		case <-c.ctx.Done():
			return
		default:
		}

		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error("Unexpected close", "error", err)
			}
			return
		}
		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages and keepalive pings
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			return
		}
	}
}

// handleMessage dispatches one request and queues the response
func (c *Connection) handleMessage(msg *Message) {
	requestID := msg.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	var (
		result     interface{}
		resultType MessageType
		err        error
	)

	switch msg.Type {
	case MessageTypeClassify:
		var req ClassifyData
		if err = json.Unmarshal(msg.Data, &req); err == nil {
			result, err = c.advisor.Classify(req)
			resultType = MessageTypeClassifyResult
		}

	case MessageTypeScore:
		var req ScoreData
		if err = json.Unmarshal(msg.Data, &req); err == nil {
			result, err = c.advisor.Score(req)
			resultType = MessageTypeScoreResult
		}

	case MessageTypeBestHands:
		var req BestHandsData
		if err = json.Unmarshal(msg.Data, &req); err == nil {
			result, err = c.advisor.BestHands(req)
			resultType = MessageTypeBestHandsResult
		}

	default:
		c.sendError(requestID, "unknown_type", "unknown message type: "+string(msg.Type))
		return
	}

	if err != nil {
		c.logger.Warn("Request failed", "type", msg.Type, "error", err)
		c.sendError(requestID, "bad_request", err.Error())
		return
	}

	resp, err := NewMessage(resultType, result)
	if err != nil {
		c.logger.Error("Failed to encode response", "error", err)
		c.sendError(requestID, "internal", "failed to encode response")
		return
	}
	resp.RequestID = requestID
	_ = c.SendMessage(resp)
}

func (c *Connection) sendError(requestID, code, message string) {
	msg, err := NewMessage(MessageTypeError, ErrorData{Code: code, Message: message})
	if err != nil {
		return
	}
	msg.RequestID = requestID
	_ = c.SendMessage(msg)
}
