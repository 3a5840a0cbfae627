// internal/room/manager_test.go
package room

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(t *testing.T, typ EventType, payload any) Envelope {
	t.Helper()
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		raw = data
	}
	return Envelope{Type: typ, Data: raw}
}

func TestManagerCreateJoinDisconnect(t *testing.T) {
	m := NewManager(testConfig())
	admin := newTestConn("admin-pid", "Admin")

	m.Dispatch(admin, env(t, EventCreateRoom, CreateRoomRequest{RoomID: "room1", Password: "pw"}))
	created := eventsOf(drain(admin), EventRoomCreated)
	require.Len(t, created, 1)
	assert.Equal(t, 1, m.RoomCount())

	// Wrong password: joiner is not bound to the room.
	guest := newTestConn("pid-g", "Guest")
	m.Dispatch(guest, env(t, EventJoinRoom, JoinRoomRequest{RoomID: "room1", Password: "nope"}))
	require.Len(t, eventsOf(drain(guest), EventErrorMessage), 1)

	m.Dispatch(guest, env(t, EventRequestSync, nil))
	require.Len(t, eventsOf(drain(guest), EventErrorMessage), 1)

	m.Dispatch(guest, env(t, EventJoinRoom, JoinRoomRequest{RoomID: "room1", Password: "pw"}))
	require.Len(t, eventsOf(drain(guest), EventRoomJoined), 1)

	m.Dispatch(guest, env(t, EventRequestSync, nil))
	require.Len(t, eventsOf(drain(guest), EventSyncData), 1)

	// Room is deleted once the last connection leaves.
	m.Disconnect(guest)
	assert.Equal(t, 1, m.RoomCount())
	m.Disconnect(admin)
	assert.Equal(t, 0, m.RoomCount())
}

func TestManagerJoinUnknownRoom(t *testing.T) {
	m := NewManager(testConfig())
	c := newTestConn("pid", "P")
	m.Dispatch(c, env(t, EventJoinRoom, JoinRoomRequest{RoomID: "nope"}))
	require.Len(t, eventsOf(drain(c), EventErrorMessage), 1)
}

func TestManagerDuplicateRoomID(t *testing.T) {
	m := NewManager(testConfig())
	a := newTestConn("pid-a", "A")
	b := newTestConn("pid-b", "B")
	m.Dispatch(a, env(t, EventCreateRoom, CreateRoomRequest{RoomID: "r", Password: "pw"}))
	m.Dispatch(b, env(t, EventCreateRoom, CreateRoomRequest{RoomID: "r", Password: "pw"}))
	require.Len(t, eventsOf(drain(b), EventErrorMessage), 1)
	assert.Equal(t, 1, m.RoomCount())
}

func TestDispatchRejectsMalformedPayload(t *testing.T) {
	m := NewManager(testConfig())
	c := newTestConn("pid", "P")
	m.Dispatch(c, env(t, EventCreateRoom, CreateRoomRequest{RoomID: "r", Password: "pw"}))
	drain(c)

	m.Dispatch(c, Envelope{Type: EventPlaceBid, Data: json.RawMessage(`{"amount":"not a number"}`)})
	require.Len(t, eventsOf(drain(c), EventErrorMessage), 1)
}

func TestDispatchUnknownEventType(t *testing.T) {
	m := NewManager(testConfig())
	c := newTestConn("pid", "P")
	m.Dispatch(c, env(t, EventCreateRoom, CreateRoomRequest{RoomID: "r", Password: "pw"}))
	drain(c)

	m.Dispatch(c, Envelope{Type: "bogus_event"})
	require.Len(t, eventsOf(drain(c), EventErrorMessage), 1)
}
