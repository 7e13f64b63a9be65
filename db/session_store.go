package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oybek/lalahouse/entity"
)

// SessionStore keeps one session blob per chat. It is the bot's stand-in
// for the browser's local storage: whatever the backend returned on login
// goes in untouched and comes back out untouched.
type SessionStore struct {
	coll *mongo.Collection
}

func NewSessionStore(client *mongo.Client) *SessionStore {
	return &SessionStore{coll: client.Database(Database).Collection("sessions")}
}

func (s *SessionStore) Save(ctx context.Context, chatID int64, blob []byte) error {
	record := entity.SessionRecord{
		ChatID:    chatID,
		Blob:      string(blob),
		UpdatedAt: time.Now().Unix(),
	}
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": chatID},
		record,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Load returns the stored blob, or nil when the chat has none. A missing
// record is not an error: the caller resolves nil to "logged out".
func (s *SessionStore) Load(ctx context.Context, chatID int64) ([]byte, error) {
	var record entity.SessionRecord
	err := s.coll.FindOne(ctx, bson.M{"_id": chatID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(record.Blob), nil
}

func (s *SessionStore) Delete(ctx context.Context, chatID int64) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": chatID})
	return err
}
