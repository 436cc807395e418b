package repositories

import (
	"fmt"

	"chat-registry/domain"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	userPrefix     = "user:"
	usernamePrefix = "idx:username:"
)

// userKey is "user:{wallet_address}", the profile record.
func userKey(walletAddress string) []byte {
	return []byte(userPrefix + walletAddress)
}

// usernameKey is "idx:username:{username}", its value is the raw wallet address.
func usernameKey(username string) []byte {
	return []byte(usernamePrefix + username)
}

func encodeUser(profile domain.UserProfile) ([]byte, error) {
	data, err := proto.Marshal(&structpb.Struct{Fields: map[string]*structpb.Value{
		"username":       bytesValue(profile.Username),
		"wallet_address": bytesValue(profile.WalletAddress),
	}})
	if err != nil {
		return nil, fmt.Errorf("user record: %w", err)
	}
	return data, nil
}

func decodeUser(data []byte) (domain.UserProfile, error) {
	var record structpb.Struct
	if err := proto.Unmarshal(data, &record); err != nil {
		return domain.UserProfile{}, fmt.Errorf("user record: %w", err)
	}
	fields := record.GetFields()
	username, err := fromBytesValue(fields, "username")
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("user record: %w", err)
	}
	walletAddress, err := fromBytesValue(fields, "wallet_address")
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("user record: %w", err)
	}
	return domain.UserProfile{Username: username, WalletAddress: walletAddress}, nil
}
