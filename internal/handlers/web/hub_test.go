package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khelghar/rajamantri/internal/services/game"
)

// newTestClient builds a registered client without a live connection;
// none of the routing under test touches the socket.
func newTestClient(h *Hub, roomCode, playerID string, buffer int) *Client {
	c := &Client{
		send:     make(chan any, buffer),
		roomCode: roomCode,
		playerID: playerID,
	}
	h.register(c)
	return c
}

func drain(c *Client) []any {
	var msgs []any
	for {
		select {
		case msg := <-c.send:
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func TestHubViewersDeduplicates(t *testing.T) {
	h := NewHub()
	newTestClient(h, "ABC123", "p1", 8)
	newTestClient(h, "ABC123", "p1", 8) // same player, second tab
	newTestClient(h, "ABC123", "p2", 8)
	newTestClient(h, "ABC123", "", 8) // spectator without identity
	newTestClient(h, "XYZ789", "p9", 8)

	viewers := h.Viewers("ABC123")
	assert.Len(t, viewers, 2)
	assert.ElementsMatch(t, []string{"p1", "p2"}, viewers)

	assert.Empty(t, h.Viewers("NOPE99"))
}

func TestHubSendStateTargetsOneViewer(t *testing.T) {
	h := NewHub()
	p1a := newTestClient(h, "ABC123", "p1", 8)
	p1b := newTestClient(h, "ABC123", "p1", 8)
	p2 := newTestClient(h, "ABC123", "p2", 8)
	other := newTestClient(h, "XYZ789", "p1", 8)

	view := &game.RedactedView{RoomCode: "ABC123"}
	h.SendState("ABC123", "p1", view)

	// Every connection the viewer has open in the room gets the push
	require.Len(t, drain(p1a), 1)
	require.Len(t, drain(p1b), 1)

	// Other viewers and other rooms get nothing
	assert.Empty(t, drain(p2))
	assert.Empty(t, drain(other))
}

func TestHubSendErrorTargetsActor(t *testing.T) {
	h := NewHub()
	actor := newTestClient(h, "ABC123", "p4", 8)
	bystander := newTestClient(h, "ABC123", "p1", 8)

	h.SendError("ABC123", "p4", "not_sipahi", "only the sipahi may guess")

	msgs := drain(actor)
	require.Len(t, msgs, 1)
	errMsg, ok := msgs[0].(ErrorMessage)
	require.True(t, ok)
	assert.Equal(t, "action-rejected", errMsg.Type)
	assert.Equal(t, "not_sipahi", errMsg.Kind)

	assert.Empty(t, drain(bystander))
}

func TestHubBroadcastRoomReachesEveryConnection(t *testing.T) {
	h := NewHub()
	p1 := newTestClient(h, "ABC123", "p1", 8)
	spectator := newTestClient(h, "ABC123", "", 8)
	other := newTestClient(h, "XYZ789", "p9", 8)

	h.BroadcastRoom("ABC123", map[string]any{"type": "room-updated"})

	require.Len(t, drain(p1), 1)
	require.Len(t, drain(spectator), 1)
	assert.Empty(t, drain(other))
}

func TestHubSlowClientDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub()
	slow := newTestClient(h, "ABC123", "p1", 1)

	view := &game.RedactedView{RoomCode: "ABC123"}
	h.SendState("ABC123", "p1", view)
	h.SendState("ABC123", "p1", view) // buffer full; must not block

	assert.Len(t, drain(slow), 1)
}

func TestHubUnregisterRemovesRoomWhenEmpty(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, "ABC123", "p1", 8)

	h.unregister(c)

	assert.Empty(t, h.Viewers("ABC123"))

	// The send channel is closed so the write pump exits
	_, open := <-c.send
	assert.False(t, open)

	// A second unregister of the same client is a no-op
	h.unregister(c)
}
