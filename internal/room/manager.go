// internal/room/manager.go
package room

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
)

// Manager is the owned room store: rooms are created on create_room, looked
// up on join, and removed through the room's OnEmpty callback when the last
// connection leaves. It also tracks which room each connection is bound to.
type Manager struct {
	mu    sync.Mutex
	rooms map[string]*Room
	conns map[uuid.UUID]*Room

	Defaults models.RoomConfig
}

// NewManager returns an empty store using cfg as the per-room defaults.
func NewManager(cfg models.RoomConfig) *Manager {
	cfg.Normalize()
	return &Manager{
		rooms:    make(map[string]*Room),
		conns:    make(map[uuid.UUID]*Room),
		Defaults: cfg,
	}
}

// GetRoom retrieves a room by ID.
func (m *Manager) GetRoom(id string) (*Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[id]
	return r, ok
}

// RoomCount reports how many rooms are live.
func (m *Manager) RoomCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rooms)
}

func (m *Manager) deleteRoom(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rooms, id)
}

// roomFor returns the room the connection is currently bound to.
func (m *Manager) roomFor(c *Conn) (*Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.conns[c.ID]
	return r, ok
}

// CreateRoom registers a new room with the creator as admin. Room IDs are
// client-chosen; an empty ID gets a generated one.
func (m *Manager) CreateRoom(c *Conn, req CreateRoomRequest) {
	if req.RoomID == "" {
		req.RoomID = uuid.NewString()[:8]
	}
	cfg := req.Config
	if cfg == (models.RoomConfig{}) {
		cfg = m.Defaults
	}
	cfg.TickInterval = m.Defaults.TickInterval
	cfg.Normalize()

	m.mu.Lock()
	if _, exists := m.rooms[req.RoomID]; exists {
		m.mu.Unlock()
		c.WriteError("room already exists")
		return
	}
	r := NewRoom(req.RoomID, req.Password, cfg, c)
	r.OnEmpty = m.deleteRoom
	m.rooms[req.RoomID] = r
	m.conns[c.ID] = r
	m.mu.Unlock()

	log.Infof("room %s created by %s", req.RoomID, c.PID)
	c.Write(Event{Type: EventRoomCreated, Data: RoomCreatedPayload{RoomID: req.RoomID, PID: c.PID}})
}

// JoinRoom binds the connection to an existing room; the room handles the
// password check and the reconnection workflow.
func (m *Manager) JoinRoom(c *Conn, req JoinRoomRequest) {
	m.mu.Lock()
	r, ok := m.rooms[req.RoomID]
	m.mu.Unlock()

	if !ok {
		c.WriteError("room not found")
		return
	}
	if r.Join(c, req.Password) {
		m.mu.Lock()
		m.conns[c.ID] = r
		m.mu.Unlock()
	}
}

// Disconnect unbinds a connection and removes it from its room, if any.
func (m *Manager) Disconnect(c *Conn) {
	m.mu.Lock()
	r, ok := m.conns[c.ID]
	delete(m.conns, c.ID)
	m.mu.Unlock()
	if ok {
		r.Leave(c)
	}
}

// Dispatch decodes an inbound envelope and routes it. Payloads are validated
// here, at the boundary, before any room state is touched. Events that need a
// room but arrive from an unbound connection are rejected to the sender.
func (m *Manager) Dispatch(c *Conn, env Envelope) {
	switch env.Type {
	case EventCreateRoom:
		var req CreateRoomRequest
		if !decode(c, env.Data, &req) {
			return
		}
		m.CreateRoom(c, req)
		return
	case EventJoinRoom:
		var req JoinRoomRequest
		if !decode(c, env.Data, &req) {
			return
		}
		m.JoinRoom(c, req)
		return
	case EventDisconnect:
		m.Disconnect(c)
		return
	}

	r, ok := m.roomFor(c)
	if !ok {
		c.WriteError("join a room first")
		return
	}

	switch env.Type {
	case EventRequestSync:
		r.RequestSync(c)
	case EventUpdateLobbyTeams:
		var req UpdateLobbyTeamsRequest
		if decode(c, env.Data, &req) {
			r.UpdateLobbyTeams(c, req.Teams)
		}
	case EventClaimLobbyTeam:
		var req ClaimTeamRequest
		if decode(c, env.Data, &req) {
			r.ClaimLobbyTeam(c, req.Key)
		}
	case EventReclaimTeam:
		var req ClaimTeamRequest
		if decode(c, env.Data, &req) {
			r.ReclaimTeam(c, req.Key)
		}
	case EventRequestReclaimManual:
		var req ReclaimManualRequest
		if decode(c, env.Data, &req) {
			r.RequestReclaimManual(c, req.TeamKey)
		}
	case EventAdminReclaimDecision:
		var req ReclaimDecisionRequest
		if decode(c, env.Data, &req) {
			r.AdminReclaimDecision(c, req)
		}
	case EventAdminRenameTeam:
		var req RenameTeamRequest
		if decode(c, env.Data, &req) {
			r.RenameTeam(c, req.Key, req.NewName)
		}
	case EventStartAuction:
		var req StartAuctionRequest
		if decode(c, env.Data, &req) {
			r.StartAuction(c, req)
		}
	case EventPlaceBid:
		var req PlaceBidRequest
		if decode(c, env.Data, &req) {
			r.PlaceBid(c, req.TeamKey, req.Amount)
		}
	case EventToggleTimer:
		r.ToggleTimer(c)
	case EventFinalizeSale:
		var req FinalizeSaleRequest
		if decode(c, env.Data, &req) {
			r.FinalizeSale(c, req.IsUnsold)
		}
	case EventEndAuctionTrigger:
		r.EndAuction(c)
	case EventSubmitSquad:
		var req SubmitSquadRequest
		if decode(c, env.Data, &req) {
			r.SubmitSquad(c, req)
		}
	case EventRunSimulation:
		r.RunSimulation(c)
	default:
		c.WriteError(fmt.Sprintf("unknown event type: %s", env.Type))
	}
}

// decode unmarshals an envelope payload, reporting malformed JSON back to
// the sender. A nil payload decodes into the zero request.
func decode(c *Conn, raw json.RawMessage, into any) bool {
	if len(raw) == 0 {
		return true
	}
	if err := json.Unmarshal(raw, into); err != nil {
		c.WriteError("malformed event payload")
		return false
	}
	return true
}
