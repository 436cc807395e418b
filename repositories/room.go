package repositories

import (
	"fmt"

	"chat-registry/domain"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const roomPrefix = "room:"

// roomKey is "room:{name}". The record embeds members and the full history,
// a room is always written as a whole.
func roomKey(name string) []byte {
	return []byte(roomPrefix + name)
}

func encodeRoom(room *domain.Room) ([]byte, error) {
	record := &structpb.Struct{Fields: map[string]*structpb.Value{
		"name":          bytesValue(room.Name),
		"room_type":     structpb.NewStringValue(room.Type.String()),
		"password_hash": bytesValue(room.PasswordHash),
		"creator":       bytesValue(room.Creator),
		"users":         bytesList(room.Users),
		"messages":      fromMessages(room.Messages),
	}}
	data, err := proto.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("room record %q: %w", room.Name, err)
	}
	return data, nil
}

func decodeRoom(data []byte) (*domain.Room, error) {
	var record structpb.Struct
	if err := proto.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("room record: %w", err)
	}
	fields := record.GetFields()
	name, err := fromBytesValue(fields, "name")
	if err != nil {
		return nil, fmt.Errorf("room record: %w", err)
	}
	roomType, err := domain.ParseRoomType(fields["room_type"].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("room record %q: %w", name, err)
	}
	passwordHash, err := fromBytesValue(fields, "password_hash")
	if err != nil {
		return nil, fmt.Errorf("room record %q: %w", name, err)
	}
	creator, err := fromBytesValue(fields, "creator")
	if err != nil {
		return nil, fmt.Errorf("room record %q: %w", name, err)
	}
	users, err := fromBytesList(fields, "users")
	if err != nil {
		return nil, fmt.Errorf("room record %q: %w", name, err)
	}
	messages, err := toMessages(fields["messages"].GetListValue())
	if err != nil {
		return nil, fmt.Errorf("room record %q: %w", name, err)
	}

	room := domain.NewRoom(name, passwordHash, creator, roomType)
	room.Users = users
	room.Messages = messages
	return room, nil
}
