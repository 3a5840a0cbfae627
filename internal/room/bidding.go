// internal/room/bidding.go
package room

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// PlaceBid validates and applies a bid request. Phase races (auction
// inactive, timer paused, sale mid-finalize, no current lot) are silent
// no-ops; ownership and validation failures notify the requester. An accepted
// bid restarts the countdown, which is the going-once/going-twice mechanic.
func (r *Room) PlaceBid(c *Conn, teamKey string, amount int) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.Phase != PhaseAuction || r.TimerPaused || r.finalizing || r.CurrentLot == nil {
		return
	}

	team, ok := r.Teams[teamKey]
	if !ok {
		c.WriteError("unknown team")
		return
	}
	if team.OwnerConn != c.ID.String() {
		if c.PID != "" && team.OwnerPID == c.PID {
			// Durable identity matches: silently re-bind to this connection.
			team.OwnerConn = c.ID.String()
		} else {
			c.WriteError("you do not own this team")
			return
		}
	}
	if r.CurrentBidder == teamKey {
		c.WriteError("your team already holds the highest bid")
		return
	}
	if amount > team.Budget {
		c.WriteError("bid exceeds remaining budget")
		return
	}
	if r.CurrentBidder != "" && amount <= r.CurrentBid {
		c.WriteError(fmt.Sprintf("bid must be higher than %d", r.CurrentBid))
		return
	}
	if r.CurrentBidder == "" && amount < r.CurrentLot.BasePrice {
		c.WriteError(fmt.Sprintf("bid must be at least the base price of %d", r.CurrentLot.BasePrice))
		return
	}

	r.CurrentBid = amount
	r.CurrentBidder = teamKey
	log.Infof("room %s: %s bid %d on %s", r.ID, teamKey, amount, r.CurrentLot.Name)
	r.broadcastUnsafe(Event{Type: EventBidUpdate, Data: BidUpdatePayload{
		TeamKey:  teamKey,
		TeamName: team.Name,
		Amount:   amount,
	}})
	r.startTimerUnsafe()
}
