// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionStatus is the lifecycle state of a Direct Line channel.
type ConnectionStatus int

const (
	// Uninitialized is the status of a freshly constructed channel.
	Uninitialized ConnectionStatus = iota
	// Connecting means the channel is trying to join the conversation.
	Connecting
	// Online means the conversation is joined and the stream is healthy as
	// far as the channel knows.
	Online
	// ExpiredToken means the last operation was rejected because the token
	// expired. The owner must supply a fresh one via Reconnect.
	ExpiredToken
	// FailedToConnect means the channel could not join the conversation.
	// No recovery is possible.
	FailedToConnect
	// Ended means the conversation was ended.
	Ended
)

var connectionStatusNames = map[ConnectionStatus]string{
	Uninitialized:   "Uninitialized",
	Connecting:      "Connecting",
	Online:          "Online",
	ExpiredToken:    "Expired Token",
	FailedToConnect: "Failed To Connect",
	Ended:           "Ended",
}

// String returns the human-readable status name.
func (s ConnectionStatus) String() string {
	if name, ok := connectionStatusNames[s]; ok {
		return name
	}

	return "Unknown"
}

// IsTerminal reports whether no further transitions can follow s.
func (s ConnectionStatus) IsTerminal() bool {
	return s == FailedToConnect || s == Ended
}
