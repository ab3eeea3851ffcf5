package config

// SessionConfig bounds the in-memory terminal session state. The command
// history and display backlog grow while a session is live; both caps are
// explicit configuration rather than silent unlimited growth.
type SessionConfig struct {
	// HistoryLimit is the maximum number of raw input lines retained per session.
	HistoryLimit int `env:"SESSION_HISTORY_LIMIT" envDefault:"200"`

	// BacklogLimit is the maximum number of buffered display lines per location.
	BacklogLimit int `env:"SESSION_BACKLOG_LIMIT" envDefault:"100"`

	// RoomMessageLimit is how many recent messages are loaded when entering a room or DM.
	RoomMessageLimit int `env:"SESSION_ROOM_MESSAGE_LIMIT" envDefault:"50"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.HistoryLimit < 1 {
		s.HistoryLimit = 200
	}
	if s.BacklogLimit < 1 {
		s.BacklogLimit = 100
	}
	if s.RoomMessageLimit < 1 {
		s.RoomMessageLimit = 50
	}
}
