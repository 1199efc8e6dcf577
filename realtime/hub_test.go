package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func testClient(buffer int) *Client {
	return &Client{send: make(chan []byte, buffer)}
}

func decodeEnvelope(t *testing.T, raw []byte) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestEmitToUserDeliversToJoinedSessions(t *testing.T) {
	hub := NewHub(zap.NewNop())
	c := testClient(4)
	hub.Join("alice", c)

	hub.EmitToUser("alice", EventReceiveMessage, map[string]string{"content": "hello"})

	select {
	case raw := <-c.send:
		env := decodeEnvelope(t, raw)
		assert.Equal(t, EventReceiveMessage, env.Event)
		assert.JSONEq(t, `{"content":"hello"}`, string(env.Data))
	default:
		t.Fatal("expected an event on the session channel")
	}
}

func TestEmitToUnknownChannelIsDropped(t *testing.T) {
	hub := NewHub(zap.NewNop())
	c := testClient(4)
	hub.Join("alice", c)

	hub.EmitToUser("bob", EventReceiveMessage, "payload")
	assert.Empty(t, c.send)
}

func TestEmitToUsersFansOut(t *testing.T) {
	hub := NewHub(zap.NewNop())
	alice := testClient(4)
	bob := testClient(4)
	hub.Join("alice", alice)
	hub.Join("bob", bob)

	hub.EmitToUsers([]string{"alice", "bob"}, EventProfileUpdated, map[string]string{"userId": "alice"})

	assert.Len(t, alice.send, 1)
	assert.Len(t, bob.send, 1)
}

func TestRejoinMovesSession(t *testing.T) {
	hub := NewHub(zap.NewNop())
	c := testClient(4)
	hub.Join("alice", c)
	hub.Join("alice2", c)

	assert.Equal(t, 0, hub.SessionCount("alice"))
	assert.Equal(t, 1, hub.SessionCount("alice2"))

	hub.EmitToUser("alice", EventReceiveMessage, "x")
	assert.Empty(t, c.send)
	hub.EmitToUser("alice2", EventReceiveMessage, "x")
	assert.Len(t, c.send, 1)
}

func TestLeaveRemovesSession(t *testing.T) {
	hub := NewHub(zap.NewNop())
	first := testClient(4)
	second := testClient(4)
	hub.Join("alice", first)
	hub.Join("alice", second)
	require.Equal(t, 2, hub.SessionCount("alice"))

	hub.Leave(first)
	assert.Equal(t, 1, hub.SessionCount("alice"))

	hub.EmitToUser("alice", EventReceiveMessage, "x")
	assert.Empty(t, first.send)
	assert.Len(t, second.send, 1)
}

func TestSlowSessionDoesNotBlockEmission(t *testing.T) {
	hub := NewHub(zap.NewNop())
	slow := testClient(1)
	hub.Join("alice", slow)

	// Second emission overflows the buffer and must return without blocking.
	hub.EmitToUser("alice", EventReceiveMessage, "one")
	hub.EmitToUser("alice", EventReceiveMessage, "two")

	assert.Len(t, slow.send, 1)
}
