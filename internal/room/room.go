// internal/room/room.go
package room

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/sim"
)

// Phase is the room lifecycle state.
type Phase string

const (
	PhaseLobby          Phase = "LOBBY"
	PhaseAuction        Phase = "AUCTION_ACTIVE"
	PhaseSquadSelection Phase = "SQUAD_SELECTION"
	PhaseComplete       Phase = "SIMULATION_COMPLETE"
)

// Conn is a single client's presence in a room. ID is the transient
// connection identifier; PID is the durable player identifier the client
// supplies, stable across reconnects.
type Conn struct {
	ID     uuid.UUID
	PID    string
	Name   string
	Out    chan Event
	Cancel context.CancelFunc
}

// Write pushes an event onto the connection's outbound channel without
// blocking. A full or closed channel drops the event.
func (c *Conn) Write(ev Event) {
	select {
	case c.Out <- ev:
	default:
		log.Warnf("room: dropped %s event for conn %s (channel full or closed)", ev.Type, c.ID)
	}
}

// WriteError sends an error_message notification to this connection only.
func (c *Conn) WriteError(msg string) {
	c.Write(Event{Type: EventErrorMessage, Data: ErrorPayload{Message: msg}})
}

// Room owns all mutable state for one auction instance. Every mutation runs
// under Mu; methods suffixed Unsafe assume the caller holds it.
type Room struct {
	ID       string
	Password string
	Config   models.RoomConfig

	AdminPID  string
	AdminConn uuid.UUID

	Conns map[uuid.UUID]*Conn
	Teams map[string]*models.Team

	Queue         []*models.Player
	CurrentIndex  int
	CurrentLot    *models.Player
	CurrentBid    int
	CurrentBidder string

	Phase       Phase
	TicksLeft   int
	TimerPaused bool
	timerStop   chan struct{}
	finalizing  bool

	Squads  map[string]*models.Squad
	Results *sim.Result

	// OnEmpty fires after the last connection leaves; assigned by the Manager
	// to delete the room from its store.
	OnEmpty func(roomID string)

	Mu sync.Mutex
}

// NewRoom builds a room in the lobby phase with the creator as admin.
func NewRoom(id, password string, cfg models.RoomConfig, admin *Conn) *Room {
	cfg.Normalize()
	r := &Room{
		ID:       id,
		Password: password,
		Config:   cfg,
		AdminPID: admin.PID,
		Conns:    make(map[uuid.UUID]*Conn),
		Teams:    make(map[string]*models.Team),
		Squads:   make(map[string]*models.Squad),
		Phase:    PhaseLobby,
	}
	r.AdminConn = admin.ID
	r.Conns[admin.ID] = admin
	return r
}

// broadcastUnsafe fans an event out to every connection. Writes are
// non-blocking, so holding the lock here is safe.
func (r *Room) broadcastUnsafe(ev Event) {
	for _, c := range r.Conns {
		c.Write(ev)
	}
}

// sendToUnsafe targets one connection by ID; unknown IDs are a no-op.
func (r *Room) sendToUnsafe(connID uuid.UUID, ev Event) {
	if c, ok := r.Conns[connID]; ok {
		c.Write(ev)
	}
}

func (r *Room) isAdminUnsafe(c *Conn) bool {
	return c.ID == r.AdminConn || c.PID == r.AdminPID
}

// teamStatusesUnsafe builds the broadcast-safe team list in key order.
func (r *Room) teamStatusesUnsafe() []*TeamStatus {
	keys := make([]string, 0, len(r.Teams))
	for k := range r.Teams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*TeamStatus, 0, len(keys))
	for _, k := range keys {
		t := r.Teams[k]
		out = append(out, &TeamStatus{
			Key:         t.Key,
			Name:        t.Name,
			Budget:      t.Budget,
			Spent:       t.Spent,
			PlayerCount: t.PlayerCount,
			Taken:       t.Taken,
			Roster:      t.Roster,
		})
	}
	return out
}

// lobbyUpdateUnsafe broadcasts the current team/member picture.
func (r *Room) lobbyUpdateUnsafe() {
	r.broadcastUnsafe(Event{Type: EventLobbyUpdate, Data: LobbyUpdatePayload{
		Phase:   r.Phase,
		Teams:   r.teamStatusesUnsafe(),
		Members: len(r.Conns),
	}})
}

// syncPayloadUnsafe snapshots the full room state for one client.
func (r *Room) syncPayloadUnsafe() *SyncPayload {
	squadsIn := make([]string, 0, len(r.Squads))
	for k := range r.Squads {
		squadsIn = append(squadsIn, k)
	}
	sort.Strings(squadsIn)
	return &SyncPayload{
		RoomID:        r.ID,
		Phase:         r.Phase,
		Teams:         r.teamStatusesUnsafe(),
		CurrentLot:    r.CurrentLot,
		LotIndex:      r.CurrentIndex,
		QueueSize:     len(r.Queue),
		CurrentBid:    r.CurrentBid,
		CurrentBidder: r.CurrentBidder,
		TicksLeft:     r.TicksLeft,
		TimerPaused:   r.TimerPaused,
		SquadsIn:      squadsIn,
		AdminPID:      r.AdminPID,
		Results:       r.Results,
	}
}

// RequestSync sends the full state snapshot to the requesting connection.
func (r *Room) RequestSync(c *Conn) {
	r.Mu.Lock()
	defer r.Mu.Unlock()
	c.Write(Event{Type: EventSyncData, Data: r.syncPayloadUnsafe()})
}

// Join admits a connection after a password check and runs the silent
// reconnection workflow: an identity matching the recorded admin regains
// admin rights, and any team whose durable owner matches is re-bound to the
// new connection (last writer wins).
func (r *Room) Join(c *Conn, password string) bool {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if password != r.Password {
		c.WriteError("invalid room password")
		return false
	}
	r.Conns[c.ID] = c

	isAdmin := false
	if c.PID != "" && c.PID == r.AdminPID {
		r.AdminConn = c.ID
		isAdmin = true
		log.Infof("room %s: admin %s reconnected on %s", r.ID, c.PID, c.ID)
	}
	for _, t := range r.Teams {
		if c.PID != "" && t.OwnerPID == c.PID {
			t.OwnerConn = c.ID.String()
			t.Taken = true
		}
	}

	c.Write(Event{Type: EventRoomJoined, Data: RoomJoinedPayload{
		RoomID:  r.ID,
		PID:     c.PID,
		IsAdmin: isAdmin,
		State:   r.syncPayloadUnsafe(),
		Teams:   r.teamStatusesUnsafe(),
	}})
	r.lobbyUpdateUnsafe()
	return true
}

// Leave drops a connection. Team ownership keeps its durable identity so the
// player can reclaim silently on reconnect. Fires OnEmpty when the last
// connection leaves.
func (r *Room) Leave(c *Conn) {
	r.Mu.Lock()

	if _, ok := r.Conns[c.ID]; !ok {
		r.Mu.Unlock()
		return
	}
	delete(r.Conns, c.ID)
	for _, t := range r.Teams {
		if t.OwnerConn == c.ID.String() {
			t.OwnerConn = ""
		}
	}

	empty := len(r.Conns) == 0
	onEmpty := r.OnEmpty
	if !empty {
		r.lobbyUpdateUnsafe()
	} else {
		r.stopTimerUnsafe()
	}
	r.Mu.Unlock()

	if empty && onEmpty != nil {
		log.Infof("room %s is empty, removing", r.ID)
		onEmpty(r.ID)
	}
}
