package chat

import (
	"context"
	"strings"

	messageRepo "eventra/database/repository/message"
	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/realtime"
	"eventra/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Emitter pushes events onto users' personal channels. *realtime.Hub
// satisfies it.
type Emitter interface {
	EmitToUser(userID, event string, payload interface{})
	EmitToUsers(userIDs []string, event string, payload interface{})
}

// ChatService persists direct messages and relays them live. It also backs
// the websocket dispatcher, so socket traffic and REST reads share one path.
type ChatService interface {
	SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.Message, error)
	History(ctx context.Context, callerID, otherID string) ([]models.Message, error)
	Conversations(ctx context.Context, callerID string) ([]models.ConversationSummary, error)
	BroadcastProfileUpdate(ctx context.Context, userID string, data map[string]interface{}) error
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Repo     messageRepo.MessageRepository
	UserRepo userRepo.UserRepository
	Emitter  Emitter
}

// SendMessage persists the message, bumps the conversation and emits it onto
// both parties' channels. Offline parties read it later via History.
func (s *DefaultChatService) SendMessage(ctx context.Context, senderID, receiverID, content string) (*models.Message, error) {
	if senderID == "" || receiverID == "" {
		return nil, utils.ValidationError("sender and receiver are required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, utils.ValidationError("message content is required")
	}

	receiver, err := s.UserRepo.GetByID(receiverID)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, utils.NotFoundError("receiver not found")
	}

	msg := &models.Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.Repo.Create(msg); err != nil {
		return nil, err
	}

	if s.Emitter != nil {
		s.Emitter.EmitToUsers([]string{receiverID, senderID}, realtime.EventReceiveMessage, msg)
	}
	return msg, nil
}

// History returns the full two-party thread oldest first. Both participants
// see the same sequence.
func (s *DefaultChatService) History(ctx context.Context, callerID, otherID string) ([]models.Message, error) {
	if otherID == "" {
		return nil, utils.ValidationError("user id is required")
	}
	return s.Repo.ListBetween(callerID, otherID)
}

// Conversations lists the caller's chat partners, most recent exchange first.
func (s *DefaultChatService) Conversations(ctx context.Context, callerID string) ([]models.ConversationSummary, error) {
	convs, err := s.Repo.ListConversations(callerID)
	if err != nil {
		return nil, err
	}

	otherIDs := make([]string, 0, len(convs))
	for _, c := range convs {
		if id := counterpart(c, callerID); id != "" {
			otherIDs = append(otherIDs, id)
		}
	}

	users := map[string]models.UserSummary{}
	if len(otherIDs) > 0 {
		found, err := s.UserRepo.GetByIDs(otherIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range found {
			users[u.ID] = u.Summary()
		}
	}

	summaries := make([]models.ConversationSummary, 0, len(convs))
	for _, c := range convs {
		other, ok := users[counterpart(c, callerID)]
		if !ok {
			// Counterpart account was deleted; drop the thread from the list.
			continue
		}
		summaries = append(summaries, models.ConversationSummary{
			UserSummary:     other,
			LastMessage:     c.LastMessage,
			LastMessageTime: c.LastMessageAt,
		})
	}
	return summaries, nil
}

// BroadcastProfileUpdate pushes the update to the user's own channel and to
// everyone they share a conversation with, not the whole relay.
func (s *DefaultChatService) BroadcastProfileUpdate(ctx context.Context, userID string, data map[string]interface{}) error {
	if userID == "" {
		if v, ok := data["userId"].(string); ok {
			userID = v
		}
	}
	if userID == "" {
		return utils.ValidationError("user id is required")
	}

	counterparts, err := s.Repo.CounterpartIDs(userID)
	if err != nil {
		return err
	}
	if s.Emitter != nil {
		s.Emitter.EmitToUsers(append(counterparts, userID), realtime.EventProfileUpdated, data)
	}
	utils.GetLogger().Debug("relayed profile update",
		zap.String("userID", userID), zap.Int("recipients", len(counterparts)))
	return nil
}

// DispatchMessage implements realtime.Dispatcher.
func (s *DefaultChatService) DispatchMessage(ctx context.Context, senderID, receiverID, content string) error {
	_, err := s.SendMessage(ctx, senderID, receiverID, content)
	return err
}

// DispatchProfileUpdate implements realtime.Dispatcher.
func (s *DefaultChatService) DispatchProfileUpdate(ctx context.Context, userID string, data map[string]interface{}) error {
	return s.BroadcastProfileUpdate(ctx, userID, data)
}

func counterpart(c models.Conversation, callerID string) string {
	for _, p := range c.Participants {
		if p != callerID {
			return p
		}
	}
	return ""
}
