// internal/room/lobby.go
package room

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
)

// UpdateLobbyTeams replaces the lobby team list. Admin only, lobby phase
// only. Ownership of a team whose key survives the update is preserved.
func (r *Room) UpdateLobbyTeams(c *Conn, specs []TeamSpec) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if !r.isAdminUnsafe(c) {
		c.WriteError("only the admin can edit teams")
		return
	}
	if r.Phase != PhaseLobby {
		return
	}

	teams := make(map[string]*models.Team, len(specs))
	for _, spec := range specs {
		if spec.Key == "" {
			continue
		}
		t := &models.Team{Key: spec.Key, Name: spec.Name, Budget: r.Config.Budget}
		if old, ok := r.Teams[spec.Key]; ok {
			t.Taken = old.Taken
			t.OwnerPID = old.OwnerPID
			t.OwnerConn = old.OwnerConn
		}
		if t.Name == "" {
			t.Name = t.Key
		}
		teams[spec.Key] = t
	}
	r.Teams = teams
	r.lobbyUpdateUnsafe()
}

// ClaimLobbyTeam binds an unclaimed team to the requesting connection.
func (r *Room) ClaimLobbyTeam(c *Conn, key string) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.Phase != PhaseLobby {
		return
	}
	team, ok := r.Teams[key]
	if !ok {
		c.WriteError("unknown team")
		return
	}
	if team.Taken && team.OwnerPID != c.PID {
		c.WriteError("team is already taken")
		return
	}
	team.Taken = true
	team.OwnerPID = c.PID
	team.OwnerConn = c.ID.String()
	log.Infof("room %s: team %s claimed by %s", r.ID, key, c.PID)

	c.Write(Event{Type: EventTeamClaimSuccess, Data: ClaimSuccessPayload{TeamKey: key, TeamName: team.Name}})
	r.lobbyUpdateUnsafe()
}

// ReclaimTeam silently re-binds a team to a reconnecting connection whose
// durable identity matches the recorded owner. Anyone else is refused and
// must go through the manual admin-approved reclaim.
func (r *Room) ReclaimTeam(c *Conn, key string) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	team, ok := r.Teams[key]
	if !ok {
		c.WriteError("unknown team")
		return
	}
	if c.PID == "" || team.OwnerPID != c.PID {
		c.WriteError("identity does not match the team owner; request a manual reclaim")
		return
	}
	team.OwnerConn = c.ID.String()
	team.Taken = true
	c.Write(Event{Type: EventTeamClaimSuccess, Data: ClaimSuccessPayload{TeamKey: key, TeamName: team.Name}})
	r.lobbyUpdateUnsafe()
}

// RequestReclaimManual forwards a reclaim request for a team the requester
// does not own to the admin, who must explicitly approve it.
func (r *Room) RequestReclaimManual(c *Conn, teamKey string) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if _, ok := r.Teams[teamKey]; !ok {
		c.WriteError("unknown team")
		return
	}
	r.sendToUnsafe(r.AdminConn, Event{Type: EventAdminReclaimRequest, Data: ReclaimRequestPayload{
		TeamKey:       teamKey,
		RequesterID:   c.ID.String(),
		RequesterPID:  c.PID,
		RequesterName: c.Name,
	}})
}

// AdminReclaimDecision applies the admin's verdict on a manual reclaim. An
// approval re-binds ownership to the requester; a denial notifies the
// requester and changes nothing.
func (r *Room) AdminReclaimDecision(c *Conn, req ReclaimDecisionRequest) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if !r.isAdminUnsafe(c) {
		c.WriteError("only the admin can decide reclaim requests")
		return
	}
	requesterID, err := uuid.Parse(req.RequesterID)
	if err != nil {
		c.WriteError("invalid requester id")
		return
	}
	team, ok := r.Teams[req.TeamKey]
	if !ok {
		c.WriteError("unknown team")
		return
	}

	if !req.Approved {
		r.sendToUnsafe(requesterID, Event{Type: EventErrorMessage, Data: ErrorPayload{
			Message: "reclaim request denied by admin",
		}})
		return
	}

	team.OwnerPID = req.RequesterPID
	team.OwnerConn = req.RequesterID
	team.Taken = true
	log.Infof("room %s: admin approved reclaim of %s by %s", r.ID, req.TeamKey, req.RequesterPID)

	r.sendToUnsafe(requesterID, Event{Type: EventTeamClaimSuccess, Data: ClaimSuccessPayload{
		TeamKey:  req.TeamKey,
		TeamName: team.Name,
	}})
	r.lobbyUpdateUnsafe()
}

// RenameTeam changes a team's display name. Admin only.
func (r *Room) RenameTeam(c *Conn, key, newName string) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if !r.isAdminUnsafe(c) {
		c.WriteError("only the admin can rename teams")
		return
	}
	team, ok := r.Teams[key]
	if !ok {
		c.WriteError("unknown team")
		return
	}
	if newName == "" {
		c.WriteError("team name cannot be empty")
		return
	}
	team.Name = newName
	r.lobbyUpdateUnsafe()
}
