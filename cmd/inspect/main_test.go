package main

import (
	"bytes"
	"log/slog"
	"testing"

	"chat-registry/domain"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	req := require.New(t)

	// Given a snapshot with one user and one room
	snapshot := domain.NewSnapshot()
	snapshot.Users["0xA"] = domain.UserProfile{Username: "alice", WalletAddress: "0xA"}
	snapshot.Usernames["alice"] = "0xA"
	room := domain.NewRoom("general", "pw", "0xA", domain.Chat)
	room.AddMember("0xA")
	room.PostMessage(domain.Message{Sender: "0xA", Content: "hello"})
	snapshot.Rooms["general"] = room

	// When rendering without colours
	var out bytes.Buffer
	render(&out, snapshot, false, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Then both tables are printed
	res := out.String()
	req.Contains(res, "Users (1)")
	req.Contains(res, "alice")
	req.Contains(res, "Rooms (1)")
	req.Contains(res, "general")
	req.Contains(res, "chat")
}
