package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"chat-registry/contract"
	"chat-registry/domain"
	"chat-registry/errors"
	"chat-registry/sink"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
)

// Client is one websocket connection acting on behalf of user.
type Client struct {
	id   string
	user string
	conn *websocket.Conn
	host contract.IHost
	log  *slog.Logger
	sink *sink.SessionSink
	send chan *ServerFrame
}

func NewClient(log *slog.Logger, id, user string, conn *websocket.Conn, host contract.IHost, bufferSize int) *Client {
	return &Client{
		id:   id,
		user: user,
		conn: conn,
		host: host,
		log:  log.With("session", id, "user", user),
		sink: sink.NewSessionSink(bufferSize),
		send: make(chan *ServerFrame, bufferSize),
	}
}

// Write pushes responses and room events to the socket until the
// session is closed or a write fails.
func (c *Client) Write() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
		c.log.Debug("Write pump exiting")
	}()

	for {
		select {
		case frame := <-c.send:
			if !c.writeFrame(frame) {
				return
			}
		case evt := <-c.sink.Events:
			if !c.writeFrame(toEventFrame(evt)) {
				return
			}
		case <-c.sink.Done():
			return
		case <-ticker.C:
			if !c.writeMessage(websocket.PingMessage, nil) {
				return
			}
		}
	}
}

// Read decodes client frames and dispatches them until the connection drops.
func (c *Client) Read(ctx context.Context) {
	defer c.cleanup()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				c.log.Warn("Unexpected close", "error", err)
			}
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			c.log.Debug("Unable to decode frame", "error", err)
			c.queue(NewErrorResponse(0, errors.ErrInvalidFrame))
			continue
		}
		if err := frame.Validate(); err != nil {
			c.log.Debug("Invalid frame", "id", frame.ID, "error", err)
			c.queue(NewErrorResponse(frame.ID, err))
			continue
		}
		c.queue(c.handle(ctx, frame))
	}
}

func (c *Client) handle(ctx context.Context, f ClientFrame) *ServerFrame {
	switch {
	case f.RegisterUser != nil:
		ok := c.host.RegisterUser(ctx, f.RegisterUser.Username, f.RegisterUser.WalletAddress)
		return NewResponse(f.ID, ok, nil)
	case f.GetUsername != nil:
		username, ok := c.host.GetUsername(f.GetUsername.WalletAddress)
		return NewResponse(f.ID, ok, username)
	case f.GetWalletAddress != nil:
		wallet, ok := c.host.GetWalletAddress(f.GetWalletAddress.Username)
		return NewResponse(f.ID, ok, wallet)
	case f.CreateRoom != nil:
		roomType, err := domain.ParseRoomType(f.CreateRoom.RoomType)
		if err != nil {
			return NewErrorResponse(f.ID, err)
		}
		ok := c.host.CreateRoom(ctx, f.CreateRoom.Room, f.CreateRoom.Password, c.user, roomType)
		return NewResponse(f.ID, ok, nil)
	case f.DeleteRoom != nil:
		return NewResponse(f.ID, c.host.DeleteRoom(ctx, f.DeleteRoom.Room, c.user), nil)
	case f.ListRooms != nil:
		rooms := c.host.ListRooms()
		slices.Sort(rooms)
		return NewResponse(f.ID, true, rooms)
	case f.GetRoomInfo != nil:
		info, ok := c.host.GetRoomInfo(f.GetRoomInfo.Room)
		if !ok {
			return NewResponse(f.ID, false, nil)
		}
		return NewResponse(f.ID, true, toRoomInfo(info))
	case f.JoinRoom != nil:
		ok := c.host.JoinRoom(ctx, f.JoinRoom.Room, c.user, f.JoinRoom.Password)
		if ok {
			c.host.Sessions().Subscribe(c.id, c.user, f.JoinRoom.Room, c.sink)
		}
		return NewResponse(f.ID, ok, nil)
	case f.LeaveRoom != nil:
		ok := c.host.LeaveRoom(f.LeaveRoom.Room, c.user)
		if ok {
			c.host.Sessions().Unsubscribe(c.id, f.LeaveRoom.Room)
		}
		return NewResponse(f.ID, ok, nil)
	case f.GetRoomUsers != nil:
		return NewResponse(f.ID, true, c.host.GetRoomUsers(f.GetRoomUsers.Room))
	case f.SendMessage != nil:
		ok := c.host.SendMessage(ctx, f.SendMessage.Room, c.user, f.SendMessage.Content)
		return NewResponse(f.ID, ok, nil)
	case f.GetRoomMessages != nil:
		messages := c.host.GetRoomMessages(f.GetRoomMessages.Room, c.user)
		return NewResponse(f.ID, true, toMessages(messages))
	case f.SendSignaling != nil:
		s := f.SendSignaling
		return NewResponse(f.ID, c.host.SendSignaling(ctx, s.Room, c.user, s.Receiver, s.Content), nil)
	}
	return NewErrorResponse(f.ID, errors.ErrUnknownOperation)
}

// queue drops the frame when the client does not keep up.
func (c *Client) queue(frame *ServerFrame) bool {
	select {
	case c.send <- frame:
		return true
	default:
		c.log.Warn("Send buffer full, dropping frame", "id", frame.ID)
		return false
	}
}

func (c *Client) writeFrame(frame *ServerFrame) bool {
	bytes, err := json.Marshal(frame)
	if err != nil {
		c.log.Error("Unable to encode frame", "error", err)
		return true
	}
	return c.writeMessage(websocket.TextMessage, bytes)
}

func (c *Client) writeMessage(messageType int, data []byte) bool {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteMessage(messageType, data); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
			websocket.CloseNormalClosure) {
			c.log.Warn("Unable to write message", "error", err)
		}
		return false
	}
	return true
}

func (c *Client) cleanup() {
	c.host.Sessions().Remove(c.id)
	c.sink.Close()
	_ = c.conn.Close()
	c.log.Debug("Read pump exiting")
}
