// Package domain contains core concepts of the chat system.
// This file defines Message and related rules.
// Messages are immutable once appended to a room.
package domain

// Message is one entry of a room history. Timestamp is supplied by the caller
// or left at zero, the registry never reads the wall clock.
type Message struct {
	Sender    string
	Content   string
	Timestamp int64
}
