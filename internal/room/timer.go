// internal/room/timer.go
package room

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// The auction countdown. One goroutine per active countdown, owned by the
// room through timerStop. Starting a new countdown closes the previous stop
// channel first, so two tick streams can never run for the same room; the
// channel identity doubles as a stale-handle check inside tick.

// startTimerUnsafe resets the countdown to its full duration and begins
// ticking. Any prior countdown is superseded.
func (r *Room) startTimerUnsafe() {
	r.stopTimerUnsafe()
	r.TicksLeft = r.Config.TimerTicks
	stop := make(chan struct{})
	r.timerStop = stop
	go r.runTimer(stop)
}

// stopTimerUnsafe cancels any pending ticking. Idempotent.
func (r *Room) stopTimerUnsafe() {
	if r.timerStop != nil {
		close(r.timerStop)
		r.timerStop = nil
	}
}

func (r *Room) runTimer(stop chan struct{}) {
	ticker := time.NewTicker(r.Config.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if r.tick(stop) {
				return
			}
		}
	}
}

// tick advances the countdown by one unit. Returns true when this goroutine
// should exit: either the countdown expired or it was superseded while the
// tick was waiting on the lock.
func (r *Room) tick(stop chan struct{}) bool {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if r.timerStop != stop {
		return true
	}
	if r.TimerPaused {
		return false
	}

	r.TicksLeft--
	r.broadcastUnsafe(Event{Type: EventTimerTick, Data: TimerTickPayload{Remaining: r.TicksLeft}})
	if r.TicksLeft > 0 {
		return false
	}

	r.timerStop = nil
	r.broadcastUnsafe(Event{Type: EventTimerEnded})
	log.Debugf("room %s: countdown expired, finalizing lot", r.ID)
	r.finalizeSaleUnsafe(false)
	return true
}

// ToggleTimer pauses or resumes the countdown. Admin only. While paused,
// ticks are suppressed but the countdown is not cancelled.
func (r *Room) ToggleTimer(c *Conn) {
	r.Mu.Lock()
	defer r.Mu.Unlock()

	if !r.isAdminUnsafe(c) {
		c.WriteError("only the admin can pause the timer")
		return
	}
	if r.Phase != PhaseAuction {
		return
	}
	r.TimerPaused = !r.TimerPaused
	r.broadcastUnsafe(Event{Type: EventTimerStatus, Data: TimerStatusPayload{
		Paused:    r.TimerPaused,
		Remaining: r.TicksLeft,
	}})
}
