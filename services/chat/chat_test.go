package chat

import (
	"context"
	"sync"
	"testing"
	"time"

	"eventra/models"
	"eventra/realtime"
	"eventra/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeMessageRepo struct {
	mu            sync.Mutex
	messages      []models.Message
	conversations map[string]*models.Conversation
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{conversations: map[string]*models.Conversation{}}
}

func (r *fakeMessageRepo) Create(msg *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	r.messages = append(r.messages, *msg)

	key := models.PairKey(msg.SenderID, msg.ReceiverID)
	conv, ok := r.conversations[key]
	if !ok {
		conv = &models.Conversation{
			PairKey:      key,
			Participants: []string{msg.SenderID, msg.ReceiverID},
		}
		r.conversations[key] = conv
	}
	conv.LastMessage = msg.Content
	conv.LastMessageAt = msg.CreatedAt
	return nil
}

func (r *fakeMessageRepo) ListBetween(userA, userB string) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := models.PairKey(userA, userB)
	var out []models.Message
	for _, m := range r.messages {
		if models.PairKey(m.SenderID, m.ReceiverID) == key {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) ListConversations(userID string) ([]models.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Conversation
	for _, conv := range r.conversations {
		for _, p := range conv.Participants {
			if p == userID {
				out = append(out, *conv)
				break
			}
		}
	}
	// Most recent first.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].LastMessageAt.After(out[i].LastMessageAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) CounterpartIDs(userID string) ([]string, error) {
	convs, err := r.ListConversations(userID)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, conv := range convs {
		for _, p := range conv.Participants {
			if p != userID {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(*models.User) error { return nil }

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }

func (r *fakeUserRepo) GetByIDs(ids []string) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }
func (r *fakeUserRepo) UpdateSet(string, bson.M) error { return nil }
func (r *fakeUserRepo) Delete(string) error            { return nil }

type emission struct {
	userIDs []string
	event   string
	payload interface{}
}

type fakeEmitter struct {
	mu        sync.Mutex
	emissions []emission
}

func (e *fakeEmitter) EmitToUser(userID, event string, payload interface{}) {
	e.EmitToUsers([]string{userID}, event, payload)
}

func (e *fakeEmitter) EmitToUsers(userIDs []string, event string, payload interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.emissions = append(e.emissions, emission{userIDs: userIDs, event: event, payload: payload})
}

func newChatService() (*DefaultChatService, *fakeMessageRepo, *fakeEmitter) {
	repo := newFakeMessageRepo()
	emitter := &fakeEmitter{}
	svc := &DefaultChatService{
		Repo: repo,
		UserRepo: &fakeUserRepo{users: map[string]*models.User{
			"alice": {ID: "alice", Name: "Alice", Email: "alice@example.com"},
			"bob":   {ID: "bob", Name: "Bob", Email: "bob@example.com"},
			"cara":  {ID: "cara", Name: "Cara", Email: "cara@example.com"},
		}},
		Emitter: emitter,
	}
	return svc, repo, emitter
}

func TestSendMessagePersistsAndEmitsToBothParties(t *testing.T) {
	svc, repo, emitter := newChatService()

	msg, err := svc.SendMessage(context.Background(), "alice", "bob", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)

	require.Len(t, repo.messages, 1)
	require.Len(t, emitter.emissions, 1)
	assert.Equal(t, realtime.EventReceiveMessage, emitter.emissions[0].event)
	assert.ElementsMatch(t, []string{"alice", "bob"}, emitter.emissions[0].userIDs)
}

func TestSendMessageValidation(t *testing.T) {
	svc, _, _ := newChatService()

	_, err := svc.SendMessage(context.Background(), "alice", "bob", "   ")
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindValidation, apiErr.Kind)

	_, err = svc.SendMessage(context.Background(), "alice", "", "hello")
	require.Error(t, err)
}

func TestSendMessageUnknownReceiver(t *testing.T) {
	svc, _, _ := newChatService()

	_, err := svc.SendMessage(context.Background(), "alice", "nobody", "hello")
	require.Error(t, err)
	apiErr, ok := err.(*utils.APIError)
	require.True(t, ok)
	assert.Equal(t, utils.KindNotFound, apiErr.Kind)
}

func TestHistoryIsSharedBetweenParticipants(t *testing.T) {
	svc, _, _ := newChatService()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "alice", "bob", "hi bob")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, "bob", "alice", "hi alice")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, "alice", "cara", "hi cara")
	require.NoError(t, err)

	fromAlice, err := svc.History(ctx, "alice", "bob")
	require.NoError(t, err)
	fromBob, err := svc.History(ctx, "bob", "alice")
	require.NoError(t, err)

	// Both participants see the same thread, and the third party's messages
	// stay out of it.
	require.Len(t, fromAlice, 2)
	assert.Equal(t, fromAlice, fromBob)
	assert.Equal(t, "hi bob", fromAlice[0].Content)
	assert.Equal(t, "hi alice", fromAlice[1].Content)
}

func TestConversationsMostRecentFirst(t *testing.T) {
	svc, _, _ := newChatService()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "alice", "bob", "first")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = svc.SendMessage(ctx, "alice", "cara", "second")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = svc.SendMessage(ctx, "bob", "alice", "third")
	require.NoError(t, err)

	convs, err := svc.Conversations(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, convs, 2)

	assert.Equal(t, "Bob", convs[0].Name)
	assert.Equal(t, "third", convs[0].LastMessage)
	assert.Equal(t, "Cara", convs[1].Name)
	assert.Equal(t, "second", convs[1].LastMessage)
}

func TestBroadcastProfileUpdateTargetsCounterparts(t *testing.T) {
	svc, _, emitter := newChatService()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "alice", "bob", "hello")
	require.NoError(t, err)

	emitter.emissions = nil
	data := map[string]interface{}{"userId": "alice", "profilePicture": "https://cdn.example.com/alice.png"}
	require.NoError(t, svc.BroadcastProfileUpdate(ctx, "alice", data))

	require.Len(t, emitter.emissions, 1)
	assert.Equal(t, realtime.EventProfileUpdated, emitter.emissions[0].event)
	assert.ElementsMatch(t, []string{"alice", "bob"}, emitter.emissions[0].userIDs)

	// Cara shares no conversation with Alice and must not be targeted.
	assert.NotContains(t, emitter.emissions[0].userIDs, "cara")
}

func TestDispatcherDelegates(t *testing.T) {
	svc, repo, _ := newChatService()

	var dispatcher realtime.Dispatcher = svc
	require.NoError(t, dispatcher.DispatchMessage(context.Background(), "alice", "bob", "via socket"))
	require.Len(t, repo.messages, 1)
	assert.Equal(t, "via socket", repo.messages[0].Content)
}
