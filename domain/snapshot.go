package domain

// Snapshot is the full persisted form of a registry: profiles keyed by wallet
// address, the username index, and rooms keyed by name.
type Snapshot struct {
	Users     map[string]UserProfile
	Usernames map[string]string
	Rooms     map[string]*Room
}

func NewSnapshot() Snapshot {
	return Snapshot{
		Users:     make(map[string]UserProfile),
		Usernames: make(map[string]string),
		Rooms:     make(map[string]*Room),
	}
}
