package entity

// SessionRecord is the persisted session of one chat: the raw login
// payload from the backend, stored as-is. The blob is opaque here; it is
// only parsed when the dashboard resolves the chat's role.
type SessionRecord struct {
	ChatID    int64  `bson:"_id"`
	Blob      string `bson:"blob,omitempty"`
	UpdatedAt int64  `bson:"updated_at,omitempty"`
}
