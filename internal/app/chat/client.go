/*
Package chat runs the live community chat rooms.

This file defines the Client struct, one WebSocket connection of a member. It
runs the read and write pumps and relays messages between the socket and its Room.
*/
package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"ufresher/internal/pkg/errs"
	"ufresher/internal/pkg/logx"
)

const (
	// timeout duration for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time allowed for the server to wait for a Pong message from the client.
	pongWait = 60 * time.Second

	// frequency at which the server sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of a frame sent by the client.
	maxMessageSize = 8192

	// MaxContentBytes is the maximum size of a text message body.
	MaxContentBytes = 5000

	// WsCloseCodeSessionKicked is a custom close code (4000-4999 range) telling
	// the client that a newer connection of the same member replaced it.
	WsCloseCodeSessionKicked = 4001
)

// Conn is the subset of *websocket.Conn used by Client.
type Conn interface {
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// Client is an active WebSocket connection and the member behind it.
type Client struct {
	room   *Room
	conn   Conn
	member Member

	// queue of encoded frames waiting to be written.
	send      chan []byte
	closeOnce sync.Once

	logger zerolog.Logger
}

// NewClient constructs a Client for member on conn, bound to room.
func NewClient(room *Room, conn Conn, member Member) *Client {
	return &Client{
		room:   room,
		conn:   conn,
		member: member,
		send:   make(chan []byte, 256),
		logger: logx.Logger().With().
			Str("client_id", member.ID).
			Str("room", room.ID).
			Logger(),
	}
}

// Member returns the identity of the client.
func (c *Client) Member() Member {
	return c.member
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() { close(c.send) })
}

// Close stops the write pump once the queued frames are flushed; the pump
// then closes the connection. Safe to call more than once.
func (c *Client) Close() {
	c.closeSend()
}

// ReadPump reads frames until the connection fails, then leaves the room.
func (c *Client) ReadPump() {
	defer c.cleanupOnDisconnect()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set read deadline")
		return
	}

	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, messageBytes, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Info().Err(err).Msg("Error reading message (Client close/going away)")
			}
			break
		}

		c.processInboundMessage(messageBytes)
	}
}

func (c *Client) cleanupOnDisconnect() {
	c.logger.Debug().Msg("Client connection cleanup starting.")

	c.room.leave(c)

	if err := c.conn.Close(); err != nil {
		c.logger.Debug().Err(err).Msg("Client connection close error")
	}
}

func (c *Client) processInboundMessage(messageBytes []byte) {
	var inboundMsg struct {
		Type    MessageType     `json:"type"`
		Payload json.RawMessage `json:"payload,omitempty"`
		TempID  string          `json:"tempId,omitempty"`
	}

	if err := json.Unmarshal(messageBytes, &inboundMsg); err != nil {
		c.logger.Warn().Err(err).Int("bytes", len(messageBytes)).Msg("Client sent invalid JSON")
		c.SendError(errs.NewError(errs.ErrInvalidJSONFormat))
		return
	}

	switch inboundMsg.Type {
	case TypeText:
		c.handleText(inboundMsg.Payload, inboundMsg.TempID)

	default:
		c.logger.Warn().Str("msg_type", string(inboundMsg.Type)).Msg("Client sent unsupported message type")
		c.SendError(errs.NewError(errs.ErrInvalidParams))
	}
}

func (c *Client) handleText(payloadBytes json.RawMessage, tempID string) {
	var textPayload TextPayload
	if err := json.Unmarshal(payloadBytes, &textPayload); err != nil {
		c.logger.Warn().Err(err).Msg("Client sent invalid TEXT payload")
		c.SendError(errs.NewError(errs.ErrInvalidJSONFormat))
		return
	}

	if strings.TrimSpace(textPayload.Content) == "" {
		return
	}

	if len(textPayload.Content) > MaxContentBytes {
		c.SendError(errs.NewError(errs.ErrMessageContentTooLong))
		return
	}

	broadcastMsg, err := NewMessage(TypeText, c.room.ID, c.member, textPayload)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create new text message for broadcast")
		return
	}

	c.sendConfirmation(tempID, broadcastMsg)
	c.room.publish(broadcastMsg)
}

// WritePump writes queued frames and periodic pings until the queue closes.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()

		if err := c.conn.Close(); err != nil {
			c.logger.Debug().Err(err).Msg("Client connection close error in WritePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !c.writeQueuedMessage(message, ok) {
				return
			}

		case <-ticker.C:
			if !c.writePingMessage() {
				return
			}
		}
	}
}

// writeQueuedMessage returns false when the pump should stop.
func (c *Client) writeQueuedMessage(message []byte, ok bool) bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline")
		return false
	}

	if !ok {
		if err := c.conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
			c.logger.Debug().Err(err).Msg("Error writing close message")
		}
		return false
	}

	if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
		c.logger.Error().Err(err).Msg("Error writing message")
		return false
	}

	return true
}

func (c *Client) writePingMessage() bool {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.logger.Error().Err(err).Msg("Failed to set write deadline on ping")
		return false
	}

	if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
		c.logger.Error().Err(err).Msg("Error writing ping")
		return false
	}

	return true
}

// sendMessage marshals data and queues it without blocking.
func (c *Client) sendMessage(data any) (err error) {
	messageBytes, err := json.Marshal(data)
	if err != nil {
		c.logger.Error().Err(err).Msg("Error marshaling data for client")
		return err
	}

	// a send on a queue closed by the room panics; treat it as a dropped frame
	defer func() {
		if recover() != nil {
			err = fmt.Errorf("client send queue closed")
		}
	}()

	select {
	case c.send <- messageBytes:
		return nil
	default:
		c.logger.Warn().Int("queue_len", len(c.send)).Msg("Client send channel full, dropping message")
		return fmt.Errorf("client send queue full")
	}
}

// SendError queues an ERROR frame describing err.
func (c *Client) SendError(err error) {
	payload := ErrorPayload{Code: errs.ErrUnknown, Message: errs.NewError(errs.ErrUnknown).Message}

	var customErr *errs.CustomError
	if errors.As(err, &customErr) {
		payload = ErrorPayload{Code: customErr.Code, Message: customErr.Message}
	} else {
		c.logger.Error().Err(err).Msg("Unclassified error sent to client")
	}

	errorMsg, msgErr := NewMessage(TypeError, c.room.ID, SystemUser, payload)
	if msgErr != nil {
		c.logger.Error().Err(msgErr).Msg("Failed to build error message")
		return
	}

	if err := c.sendMessage(errorMsg); err != nil {
		c.logger.Debug().Err(err).Msg("Failed to queue error message")
	}
}

// SendInitData queues the INIT_DATA frame.
func (c *Client) SendInitData(payload InitDataPayload) error {
	initMsg, err := NewMessage(TypeInitData, c.room.ID, SystemUser, payload)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build INIT_DATA message.")
		return err
	}

	if err := c.sendMessage(initMsg); err != nil {
		c.logger.Error().Err(err).Msg("Failed to send INIT_DATA message.")
		return err
	}

	return nil
}

// sendConfirmation acknowledges the sender's message with its server ID.
func (c *Client) sendConfirmation(tempID string, authoritative Message) {
	if tempID == "" {
		return
	}

	ackMsg, err := NewMessage(TypeConfirm, c.room.ID, c.member, ConfirmPayload{
		TempID:    tempID,
		MessageID: authoritative.ID,
		Timestamp: authoritative.Timestamp,
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to build ACK message in sendConfirmation")
		return
	}

	if err := c.sendMessage(ackMsg); err != nil {
		c.logger.Error().Err(err).Msg("Failed to queue ACK message")
	}
}

// Kick closes the connection with close code 4001 because a newer connection
// of the same member replaced it.
func (c *Client) Kick(reason string) {
	c.logger.Warn().
		Int("close_code", WsCloseCodeSessionKicked).
		Str("reason", reason).
		Msg("Sending WS Kick message and closing connection.")

	closeMessage := websocket.FormatCloseMessage(WsCloseCodeSessionKicked, reason)
	if err := c.conn.WriteControl(websocket.CloseMessage, closeMessage, time.Now().Add(writeWait)); err != nil {
		c.logger.Debug().Err(err).Msg("Failed to send WS 4001 Close Message.")
	}

	c.closeSend()
}
