// internal/room/squad.go
package room

import (
	"errors"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/sim"
)

var errSimulationFailed = errors.New("simulation failed unexpectedly")

// SubmitSquad records a team's starting lineup during squad selection.
// Resubmission replaces the previous squad.
func (r *Room) SubmitSquad(c *Conn, req SubmitSquadRequest) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.Phase != PhaseSquadSelection {
		return
	}
	team, ok := r.Teams[req.TeamKey]
	if !ok {
		c.WriteError("unknown team")
		return
	}
	if team.OwnerConn != c.ID.String() {
		if c.PID != "" && team.OwnerPID == c.PID {
			team.OwnerConn = c.ID.String()
		} else {
			c.WriteError("you do not own this team")
			return
		}
	}

	r.Squads[req.TeamKey] = &models.Squad{
		TeamKey:   req.TeamKey,
		PlayingXI: req.PlayingXI,
		Impact:    req.Impact,
		Captain:   req.Captain,
	}

	submitted := make([]string, 0, len(r.Squads))
	for k := range r.Squads {
		submitted = append(submitted, k)
	}
	sort.Strings(submitted)
	r.broadcastUnsafe(Event{Type: EventSquadSubmissionUpdate, Data: SquadSubmissionPayload{
		TeamKey:   req.TeamKey,
		Submitted: submitted,
	}})
}

// RunSimulation plays the tournament from the assembled rosters. Admin only;
// no transition out of squad selection happens without it. The engine works
// on deep copies, and any internal failure is caught at this boundary and
// reported as a simulation_error without touching room state.
func (r *Room) RunSimulation(c *Conn) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if !r.isAdminUnsafe(c) {
		c.WriteError("only the admin can run the simulation")
		return
	}
	if r.Phase != PhaseSquadSelection {
		return
	}

	teams := make([]*models.Team, 0, len(r.Teams))
	keys := make([]string, 0, len(r.Teams))
	for k := range r.Teams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		teams = append(teams, r.Teams[k])
	}

	res, err := r.runEngine(teams)
	if err != nil {
		log.Warnf("room %s: simulation failed: %v", r.ID, err)
		r.broadcastUnsafe(Event{Type: EventSimulationError, Data: ErrorPayload{Message: err.Error()}})
		return
	}

	r.Results = res
	r.Phase = PhaseComplete
	log.Infof("room %s: simulation complete, champion %s", r.ID, res.Champion)
	r.broadcastUnsafe(Event{Type: EventTournamentResults, Data: TournamentResultsPayload{Results: res}})
}

// runEngine isolates the engine call so a panic inside the simulation
// degrades to an error instead of killing the room.
func (r *Room) runEngine(teams []*models.Team) (res *sim.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("room %s: simulation panic: %v", r.ID, rec)
			res = nil
			err = errSimulationFailed
		}
	}()
	return sim.New(nil).Run(teams, r.Squads, r.Config.SquadSize)
}
