package runtime

import (
	"sync"

	"chat-registry/contract"

	"github.com/samber/lo"
)

var _ contract.ISessions = (*Sessions)(nil)

type Set map[string]struct{}

type session struct {
	user string
	sink contract.EventSink
}

// Sessions tracks connected clients and the rooms they listen to.
// It is only used for delivery, membership itself lives in the registry.
type Sessions struct {
	mu          sync.RWMutex
	sessions    map[string]session // session id -> user and sink
	roomMembers map[string]Set     // room name -> session ids
}

func NewSessions() *Sessions {
	return &Sessions{
		sessions:    make(map[string]session),
		roomMembers: make(map[string]Set),
	}
}

// GetSinksForRoom resolves every session listening to room into its sink.
// Returns nil if nobody listens to the room.
func (s *Sessions) GetSinksForRoom(room string) []contract.EventSink {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members, ok := s.roomMembers[room]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for sessionID := range members {
		if sess, exists := s.sessions[sessionID]; exists {
			activeSinks = append(activeSinks, sess.sink)
		}
	}
	return activeSinks
}

// GetSinksForUser narrows GetSinksForRoom to the sessions opened by user.
// A user connected twice gets both sinks.
func (s *Sessions) GetSinksForUser(room, user string) []contract.EventSink {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sinks []contract.EventSink
	for sessionID := range s.roomMembers[room] {
		if sess, exists := s.sessions[sessionID]; exists && sess.user == user {
			sinks = append(sinks, sess.sink)
		}
	}
	return sinks
}

// Subscribe records the session with its user and sink and makes it listen to room.
// If the room is not known yet it is initialized on the fly.
func (s *Sessions) Subscribe(sessionID, user, room string, sink contract.EventSink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sessionID] = session{user: user, sink: sink}

	if _, ok := s.roomMembers[room]; !ok {
		s.roomMembers[room] = make(Set)
	}
	s.roomMembers[room][sessionID] = struct{}{}
}

// Unsubscribe stops session from listening to room. Empty rooms are removed.
func (s *Sessions) Unsubscribe(sessionID, room string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unsubscribe(sessionID, room)
}

// Remove forgets the session and all its subscriptions.
func (s *Sessions) Remove(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	for _, room := range lo.Keys(s.roomMembers) {
		s.unsubscribe(sessionID, room)
	}
}

// DropRoom removes every subscription to room, used when the room is deleted.
// The sinks returned still get the deletion event.
func (s *Sessions) DropRoom(room string) []contract.EventSink {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sinks []contract.EventSink
	for sessionID := range s.roomMembers[room] {
		if sess, exists := s.sessions[sessionID]; exists {
			sinks = append(sinks, sess.sink)
		}
	}
	delete(s.roomMembers, room)
	return sinks
}

func (s *Sessions) unsubscribe(sessionID, room string) {
	if members, ok := s.roomMembers[room]; ok {
		delete(members, sessionID)

		// If no one is left in the room, remove the room entry entirely
		if len(members) == 0 {
			delete(s.roomMembers, room)
		}
	}
}
