package model

import "time"

// Message represents a room broadcast record. Append-only except for admin
// single-record deletes and the retention sweep.
type Message struct {
	ID        int64     `json:"id"        db:"id"`
	Room      string    `json:"room"      db:"room"`
	Author    string    `json:"author"    db:"author"`
	Content   string    `json:"content"   db:"content"`
	Timestamp time.Time `json:"timestamp" db:"ts"`
}

// DirectMessage represents a private single-recipient record. Same retention
// policy as Message; access control is sender/recipient identity at read time.
type DirectMessage struct {
	ID        int64     `json:"id"        db:"id"`
	Sender    string    `json:"sender"    db:"sender"`
	Recipient string    `json:"recipient" db:"recipient"`
	Content   string    `json:"content"   db:"content"`
	Timestamp time.Time `json:"timestamp" db:"ts"`
}
