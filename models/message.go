package models

import (
	"sort"
	"time"
)

// Message is an append-only direct message between two users.
type Message struct {
	ID         string    `bson:"id" json:"id"`
	SenderID   string    `bson:"sender" json:"sender"`
	ReceiverID string    `bson:"receiver" json:"receiver"`
	Content    string    `bson:"content" json:"content"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// Conversation is the materialized per-pair summary, updated on every send so
// that listing conversations never scans the messages collection.
type Conversation struct {
	ID            string    `bson:"id" json:"id"`
	PairKey       string    `bson:"pair_key" json:"-"`
	Participants  []string  `bson:"participants" json:"participants"`
	LastMessage   string    `bson:"last_message" json:"lastMessage"`
	LastMessageAt time.Time `bson:"last_message_at" json:"lastMessageTime"`
}

// ConversationSummary is one entry of GET /api/chat/conversations: the
// counterpart's public profile annotated with the latest exchanged message.
type ConversationSummary struct {
	UserSummary
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
}

// PairKey builds the canonical key for the unordered participant pair.
func PairKey(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return ids[0] + ":" + ids[1]
}
