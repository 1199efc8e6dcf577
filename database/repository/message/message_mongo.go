package messageRepo

import (
	"context"
	"fmt"
	"time"

	"eventra/database"
	"eventra/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	messages      *mongo.Collection
	conversations *mongo.Collection
}

// NewMongoMessageRepo creates a new instance of MessageRepository using MongoDB.
func NewMongoMessageRepo() MessageRepository {
	db := database.DB()
	repo := &MongoMessageRepo{
		messages:      db.Collection("messages"),
		conversations: db.Collection("conversations"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMessageRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	messageIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sender", Value: 1}, {Key: "receiver", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	if _, err := r.messages.Indexes().CreateMany(ctx, messageIndexes); err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}

	conversationIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "pair_key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "participants", Value: 1}, {Key: "last_message_at", Value: -1}}},
	}
	if _, err := r.conversations.Indexes().CreateMany(ctx, conversationIndexes); err != nil {
		return fmt.Errorf("failed to create conversation indexes: %w", err)
	}
	return nil
}

// Create inserts the message and keeps the conversation summary for the pair
// current, so listing conversations never scans the message log.
func (r *MongoMessageRepo) Create(message *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	message.CreatedAt = time.Now()

	if _, err := r.messages.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	pairKey := models.PairKey(message.SenderID, message.ReceiverID)
	update := bson.M{
		"$set": bson.M{
			"last_message":    message.Content,
			"last_message_at": message.CreatedAt,
		},
		"$setOnInsert": bson.M{
			"id":           uuid.New().String(),
			"pair_key":     pairKey,
			"participants": []string{message.SenderID, message.ReceiverID},
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.conversations.UpdateOne(ctx, bson.M{"pair_key": pairKey}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert conversation: %w", err)
	}
	return nil
}

// ListBetween retrieves every message exchanged between the two users in
// either direction, ascending creation time.
func (r *MongoMessageRepo) ListBetween(userA, userB string) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"sender": userA, "receiver": userB},
		{"sender": userB, "receiver": userA},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

// ListConversations retrieves the caller's conversation summaries, most
// recent message first.
func (r *MongoMessageRepo) ListConversations(userID string) ([]models.Conversation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "last_message_at", Value: -1}})
	cursor, err := r.conversations.Find(ctx, bson.M{"participants": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var conversations []models.Conversation
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, fmt.Errorf("failed to decode conversations: %w", err)
	}
	return conversations, nil
}

// CounterpartIDs returns the distinct users the given user has a conversation
// with.
func (r *MongoMessageRepo) CounterpartIDs(userID string) ([]string, error) {
	conversations, err := r.ListConversations(userID)
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, conv := range conversations {
		for _, p := range conv.Participants {
			if p != userID {
				ids = append(ids, p)
			}
		}
	}
	return ids, nil
}
