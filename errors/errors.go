package errors

import "fmt"

// Registry preconditions. Public registry operations collapse them to false,
// the internal variants return them so tests and logs can tell them apart.
var (
	ErrRoomNotFound      = fmt.Errorf("room not found")
	ErrRoomAlreadyExists = fmt.Errorf("room already exists")
	ErrInvalidPassword   = fmt.Errorf("invalid room password")
	ErrNotAMember        = fmt.Errorf("user is not a member of the room")
	ErrNotAuthorized     = fmt.Errorf("user is not the room creator")
	ErrAlreadyRegistered = fmt.Errorf("username or wallet address already registered")
)

var (
	ErrCorruptSnapshot  = fmt.Errorf("corrupt snapshot")
	ErrInvalidRoomType  = fmt.Errorf("invalid room type")
	ErrInvalidFrame     = fmt.Errorf("invalid frame")
	ErrUnknownOperation = fmt.Errorf("unknown operation")
	ErrMissingUser      = fmt.Errorf("missing user identifier")
	ErrSinkTimeout      = fmt.Errorf("sink timeout")
	ErrSessionClosed    = fmt.Errorf("session closed")
	ErrWorkerPanic      = fmt.Errorf("worker panic")
)
