package messageRepo

import "eventra/models"

// MessageRepository defines methods for the messaging relay's persistence:
// the append-only message log and the materialized conversation summaries.
type MessageRepository interface {
	// Create inserts a new message and upserts the conversation summary for
	// the participant pair in the same call.
	Create(message *models.Message) error
	// ListBetween retrieves every message exchanged between the two users in
	// either direction, ascending creation time.
	ListBetween(userA, userB string) ([]models.Message, error)
	// ListConversations retrieves the caller's conversation summaries,
	// most recent message first.
	ListConversations(userID string) ([]models.Conversation, error)
	// CounterpartIDs returns the distinct users the given user has a
	// conversation with.
	CounterpartIDs(userID string) ([]string, error)
}
