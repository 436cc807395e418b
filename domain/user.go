// Package domain contains core concepts of the chat system.
// This file defines user identities. Profiles are created once and never mutated.
package domain

type UserProfile struct {
	Username      string
	WalletAddress string
}
