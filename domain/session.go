package domain

import "time"

type SessionEventType int

const (
	// SessionPacket is a custom packet received from a connected session.
	SessionPacket SessionEventType = iota
	// SessionLeave is emitted once a session disconnects.
	SessionLeave
)

type SessionEvent struct {
	Type      SessionEventType
	SessionID string
	Packet    string
	At        time.Time
}
