package gateway

import (
	"fmt"

	"chat-registry/domain"
	"chat-registry/domain/event"
	"chat-registry/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = newValidator()

// newValidator adds the room_type rule, which accepts what domain.ParseRoomType accepts.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("room_type", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseRoomType(fl.Field().String())
		return err == nil
	})
	return v
}

// ClientFrame carries exactly one operation. The acting user (creator,
// member, sender, caller) is always the identifier the connection was opened with.
type ClientFrame struct {
	ID               int               `json:"id"`
	RegisterUser     *RegisterUser     `json:"register_user,omitempty"`
	GetUsername      *GetUsername      `json:"get_username,omitempty"`
	GetWalletAddress *GetWalletAddress `json:"get_wallet_address,omitempty"`
	CreateRoom       *CreateRoom       `json:"create_room,omitempty"`
	DeleteRoom       *RoomRef          `json:"delete_room,omitempty"`
	ListRooms        *ListRooms        `json:"list_rooms,omitempty"`
	GetRoomInfo      *RoomRef          `json:"get_room_info,omitempty"`
	JoinRoom         *JoinRoom         `json:"join_room,omitempty"`
	LeaveRoom        *RoomRef          `json:"leave_room,omitempty"`
	GetRoomUsers     *RoomRef          `json:"get_room_users,omitempty"`
	SendMessage      *SendMessage      `json:"send_message,omitempty"`
	GetRoomMessages  *RoomRef          `json:"get_room_messages,omitempty"`
	SendSignaling    *SendSignaling    `json:"send_signaling,omitempty"`
}

type RegisterUser struct {
	Username      string `json:"username" validate:"required"`
	WalletAddress string `json:"wallet_address" validate:"required"`
}

type GetUsername struct {
	WalletAddress string `json:"wallet_address" validate:"required"`
}

type GetWalletAddress struct {
	Username string `json:"username" validate:"required"`
}

type CreateRoom struct {
	Room     string `json:"room" validate:"required"`
	Password string `json:"password"`
	RoomType string `json:"room_type" validate:"required,room_type"`
}

type ListRooms struct{}

type RoomRef struct {
	Room string `json:"room" validate:"required"`
}

type JoinRoom struct {
	Room     string `json:"room" validate:"required"`
	Password string `json:"password"`
}

type SendMessage struct {
	Room    string `json:"room" validate:"required"`
	Content string `json:"content"`
}

type SendSignaling struct {
	Room     string `json:"room" validate:"required"`
	Receiver string `json:"receiver" validate:"required"`
	Content  string `json:"content"`
}

// Validate checks field rules and that exactly one operation is set.
func (f ClientFrame) Validate() error {
	ops := lo.Compact([]bool{
		f.RegisterUser != nil, f.GetUsername != nil, f.GetWalletAddress != nil,
		f.CreateRoom != nil, f.DeleteRoom != nil, f.ListRooms != nil,
		f.GetRoomInfo != nil, f.JoinRoom != nil, f.LeaveRoom != nil,
		f.GetRoomUsers != nil, f.SendMessage != nil, f.GetRoomMessages != nil,
		f.SendSignaling != nil,
	})
	switch len(ops) {
	case 0:
		return errors.ErrUnknownOperation
	case 1:
	default:
		return fmt.Errorf("%w: %d operations in one frame", errors.ErrInvalidFrame, len(ops))
	}
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidFrame, err)
	}
	return nil
}

type ServerFrame struct {
	ID       int         `json:"id,omitempty"`
	Response *Response   `json:"response,omitempty"`
	Event    *EventFrame `json:"event,omitempty"`
}

type Response struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

type EventFrame struct {
	ID      string     `json:"id"`
	Type    event.Type `json:"type"`
	Room    string     `json:"room,omitempty"`
	Payload any        `json:"payload"`
}

type RoomInfo struct {
	Name     string `json:"name"`
	RoomType string `json:"room_type"`
	Creator  string `json:"creator"`
}

type Message struct {
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

func NewResponse(id int, ok bool, data any) *ServerFrame {
	res := &Response{Ok: ok, Data: data}
	if !ok {
		res.Error = "refused"
	}
	return &ServerFrame{ID: id, Response: res}
}

func NewErrorResponse(id int, err error) *ServerFrame {
	return &ServerFrame{ID: id, Response: &Response{Ok: false, Error: err.Error()}}
}

func toRoomInfo(info domain.RoomInfo) RoomInfo {
	return RoomInfo{Name: info.Name, RoomType: info.Type.String(), Creator: info.Creator}
}

func toMessages(messages []domain.Message) []Message {
	return lo.Map(messages, func(item domain.Message, _ int) Message {
		return Message{Sender: item.Sender, Content: item.Content, Timestamp: item.Timestamp}
	})
}

// toEventFrame flattens a domain event for the wire.
func toEventFrame(e event.DomainEvent) *ServerFrame {
	frame := &EventFrame{Type: e.Type(), Room: e.RoomName()}
	switch evt := e.(type) {
	case event.RoomCreated:
		frame.ID = evt.ID.String()
		frame.Payload = map[string]string{"room_type": evt.RoomType.String(), "creator": evt.Creator}
	case event.UserJoinedRoom:
		frame.ID = evt.ID.String()
		frame.Payload = map[string]string{"user": evt.User}
	case event.MessageSent:
		frame.ID = evt.ID.String()
		frame.Payload = Message{Sender: evt.Sender, Content: evt.Content, Timestamp: evt.Timestamp}
	case event.RoomDeleted:
		frame.ID = evt.ID.String()
		frame.Payload = map[string]string{"deleted_by": evt.DeletedBy}
	case event.UserRegistered:
		frame.ID = evt.ID.String()
		frame.Payload = map[string]string{"username": evt.Username, "wallet_address": evt.WalletAddress}
	case event.SignalingMessage:
		frame.ID = evt.ID.String()
		frame.Payload = map[string]string{"sender": evt.Sender, "receiver": evt.Receiver, "content": evt.Content}
	}
	return &ServerFrame{Event: frame}
}
