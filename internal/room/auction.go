// internal/room/auction.go
package room

import (
	log "github.com/sirupsen/logrus"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
)

// StartAuction snapshots the team list and the lot queue, then transitions
// LOBBY -> AUCTION_ACTIVE and opens the first lot. Admin only. Rosters and
// spend reset to zero at the snapshot; an empty queue falls back to the
// built-in player pool.
func (r *Room) StartAuction(c *Conn, req StartAuctionRequest) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if !r.isAdminUnsafe(c) {
		c.WriteError("only the admin can start the auction")
		return
	}
	if r.Phase != PhaseLobby {
		c.WriteError("auction already started")
		return
	}

	if len(req.Teams) > 0 {
		teams := make(map[string]*models.Team, len(req.Teams))
		for _, spec := range req.Teams {
			if spec.Key == "" {
				continue
			}
			t := &models.Team{Key: spec.Key, Name: spec.Name}
			if t.Name == "" {
				t.Name = t.Key
			}
			if old, ok := r.Teams[spec.Key]; ok {
				t.Taken = old.Taken
				t.OwnerPID = old.OwnerPID
				t.OwnerConn = old.OwnerConn
			}
			teams[spec.Key] = t
		}
		r.Teams = teams
	}
	if len(r.Teams) == 0 {
		c.WriteError("no teams to auction for")
		return
	}
	for _, t := range r.Teams {
		t.Budget = r.Config.Budget
		t.Spent = 0
		t.Roster = nil
		t.PlayerCount = 0
	}

	queue := req.Queue
	if len(queue) == 0 {
		queue = DefaultPlayerPool()
	}
	for _, p := range queue {
		p.Status = ""
		p.SoldPrice = 0
	}
	r.Queue = queue
	r.CurrentIndex = 0
	r.CurrentBid = 0
	r.CurrentBidder = ""
	r.TimerPaused = false
	r.finalizing = false
	r.Squads = make(map[string]*models.Squad)
	r.Results = nil
	r.Phase = PhaseAuction

	log.Infof("room %s: auction started with %d teams, %d lots", r.ID, len(r.Teams), len(r.Queue))
	r.broadcastUnsafe(Event{Type: EventAuctionStarted, Data: AuctionStartedPayload{
		Teams:     r.teamStatusesUnsafe(),
		QueueSize: len(r.Queue),
	}})

	r.CurrentLot = r.Queue[0]
	r.broadcastUnsafe(Event{Type: EventUpdateLot, Data: UpdateLotPayload{
		Player:    r.CurrentLot,
		LotIndex:  0,
		QueueSize: len(r.Queue),
	}})
	r.startTimerUnsafe()
}

// EndAuction force-ends the auction before the queue is exhausted and moves
// the room to squad selection. Admin only.
func (r *Room) EndAuction(c *Conn) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if !r.isAdminUnsafe(c) {
		c.WriteError("only the admin can end the auction")
		return
	}
	if r.Phase != PhaseAuction {
		return
	}
	r.finalizing = false
	r.CurrentBid = 0
	r.CurrentBidder = ""
	log.Infof("room %s: auction ended by admin", r.ID)
	r.enterSquadSelectionUnsafe()
}
