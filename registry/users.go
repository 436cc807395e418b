package registry

import (
	"chat-registry/domain"
	"chat-registry/domain/event"
	"chat-registry/errors"

	"github.com/google/uuid"
)

// RegisterUser creates a profile when neither the username nor the wallet
// address is already taken.
func (r *Registry) RegisterUser(username, walletAddress string) (bool, event.DomainEvent) {
	evt, err := r.registerUser(username, walletAddress)
	if err != nil {
		r.log.Warn("User registration refused",
			"username", username, "wallet_address", walletAddress, "error", err)
		return false, nil
	}
	return true, evt
}

func (r *Registry) registerUser(username, walletAddress string) (event.DomainEvent, error) {
	if _, ok := r.usernames[username]; ok {
		return nil, errors.ErrAlreadyRegistered
	}
	if _, ok := r.users[walletAddress]; ok {
		return nil, errors.ErrAlreadyRegistered
	}
	r.users[walletAddress] = domain.UserProfile{Username: username, WalletAddress: walletAddress}
	r.usernames[username] = walletAddress
	return event.UserRegistered{
		ID:            uuid.New(),
		Username:      username,
		WalletAddress: walletAddress,
	}, nil
}

func (r *Registry) GetUsername(walletAddress string) (string, bool) {
	profile, ok := r.users[walletAddress]
	if !ok {
		return "", false
	}
	return profile.Username, true
}

func (r *Registry) GetWalletAddress(username string) (string, bool) {
	wallet, ok := r.usernames[username]
	return wallet, ok
}
