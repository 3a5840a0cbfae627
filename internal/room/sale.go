// internal/room/sale.go
package room

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
)

// FinalizeSale is the explicit admin trigger. forceUnsold discards any
// standing bid and marks the lot unsold.
func (r *Room) FinalizeSale(c *Conn, forceUnsold bool) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if !r.isAdminUnsafe(c) {
		c.WriteError("only the admin can finalize a sale")
		return
	}
	r.finalizeSaleUnsafe(forceUnsold)
}

// finalizeSaleUnsafe resolves the current lot exactly once. Both the expiring
// timer and an admin trigger can race here; the finalizing flag lets only the
// first caller through. The cooldown before advancing gives clients time to
// render the outcome.
func (r *Room) finalizeSaleUnsafe(forceUnsold bool) {
	if r.finalizing || r.CurrentLot == nil || r.Phase != PhaseAuction {
		return
	}
	r.finalizing = true
	r.stopTimerUnsafe()

	lot := r.CurrentLot
	payload := SaleFinalizedPayload{Player: lot}

	if !forceUnsold && r.CurrentBidder != "" {
		team := r.Teams[r.CurrentBidder]
		price := r.CurrentBid
		lot.Status = models.StatusSold
		lot.SoldPrice = price

		won := *lot
		team.Roster = append(team.Roster, &won)
		team.PlayerCount++
		team.Budget -= price
		team.Spent += price

		payload.IsUnsold = false
		payload.TeamKey = team.Key
		payload.Price = price
		log.Infof("room %s: sold %s to %s for %d", r.ID, lot.Name, team.Key, price)
	} else {
		lot.Status = models.StatusUnsold
		payload.IsUnsold = true
		log.Infof("room %s: %s went unsold", r.ID, lot.Name)
	}

	payload.Teams = r.teamStatusesUnsafe()
	r.broadcastUnsafe(Event{Type: EventSaleFinalized, Data: payload})

	cooldown := time.Duration(r.Config.CooldownTicks) * r.Config.TickInterval
	time.AfterFunc(cooldown, func() {
		r.Mu.Lock()
		defer r.Mu.Unlock()
		r.advanceLotUnsafe()
	})
}

// advanceLotUnsafe releases the finalize guard and opens the next lot,
// skipping any lot already carrying a terminal status (replay protection for
// resumed sessions). Queue exhaustion moves the room to squad selection.
func (r *Room) advanceLotUnsafe() {
	if !r.finalizing {
		return
	}
	r.finalizing = false
	r.CurrentBid = 0
	r.CurrentBidder = ""
	r.CurrentLot = nil

	if r.Phase != PhaseAuction {
		return
	}

	r.CurrentIndex++
	for r.CurrentIndex < len(r.Queue) && r.Queue[r.CurrentIndex].Status != "" {
		r.CurrentIndex++
	}
	if r.CurrentIndex >= len(r.Queue) {
		r.enterSquadSelectionUnsafe()
		return
	}

	r.CurrentLot = r.Queue[r.CurrentIndex]
	r.broadcastUnsafe(Event{Type: EventUpdateLot, Data: UpdateLotPayload{
		Player:    r.CurrentLot,
		LotIndex:  r.CurrentIndex,
		QueueSize: len(r.Queue),
	}})
	r.startTimerUnsafe()
}

// enterSquadSelectionUnsafe transitions AUCTION_ACTIVE -> SQUAD_SELECTION.
func (r *Room) enterSquadSelectionUnsafe() {
	r.stopTimerUnsafe()
	r.Phase = PhaseSquadSelection
	r.CurrentLot = nil
	r.TimerPaused = false
	r.broadcastUnsafe(Event{Type: EventOpenSquadSelection, Data: OpenSquadSelectionPayload{
		Teams:     r.teamStatusesUnsafe(),
		SquadSize: r.Config.SquadSize,
	}})
}
