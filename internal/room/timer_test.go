// internal/room/timer_test.go
package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
)

func TestCountdownTicksAndBroadcasts(t *testing.T) {
	r, admin, _, _ := setupAuctionRoom(t)
	r.StartAuction(admin, StartAuctionRequest{Queue: []*models.Player{testLot("P", 10)}})

	require.Eventually(t, func() bool { return ticksLeft(r) <= 7 },
		200*time.Millisecond, time.Millisecond)

	ticks := eventsOf(drain(admin), EventTimerTick)
	require.NotEmpty(t, ticks)
	prev := testConfig().TimerTicks
	for _, ev := range ticks {
		rem := ev.Data.(TimerTickPayload).Remaining
		assert.Less(t, rem, prev)
		prev = rem
	}
}

func TestPauseSuppressesTicks(t *testing.T) {
	r, admin, _, _ := setupAuctionRoom(t)
	r.StartAuction(admin, StartAuctionRequest{Queue: []*models.Player{testLot("P", 10)}})

	r.ToggleTimer(admin)
	drain(admin)
	before := ticksLeft(r)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, ticksLeft(r))
	assert.Empty(t, eventsOf(drain(admin), EventTimerTick))

	// Resume: ticking continues from where it stopped.
	r.ToggleTimer(admin)
	statuses := eventsOf(drain(admin), EventTimerStatus)
	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Data.(TimerStatusPayload).Paused)

	require.Eventually(t, func() bool { return ticksLeft(r) < before },
		200*time.Millisecond, time.Millisecond)
}

func TestToggleTimerRequiresAdmin(t *testing.T) {
	r, admin, a, _ := setupAuctionRoom(t)
	r.StartAuction(admin, StartAuctionRequest{Queue: []*models.Player{testLot("P", 10)}})
	drain(a)

	r.ToggleTimer(a)
	require.Len(t, eventsOf(drain(a), EventErrorMessage), 1)

	r.Mu.Lock()
	assert.False(t, r.TimerPaused)
	r.Mu.Unlock()
}

func TestStopTimerIsIdempotent(t *testing.T) {
	r, admin, _, _ := setupAuctionRoom(t)
	r.StartAuction(admin, StartAuctionRequest{Queue: []*models.Player{testLot("P", 10)}})

	r.Mu.Lock()
	r.stopTimerUnsafe()
	r.stopTimerUnsafe()
	assert.Nil(t, r.timerStop)
	r.Mu.Unlock()
}

func TestRestartSupersedesPriorCountdown(t *testing.T) {
	r, admin, _, _ := setupAuctionRoom(t)
	r.StartAuction(admin, StartAuctionRequest{Queue: []*models.Player{testLot("P", 10)}})

	// Restart several times in a row; only one tick stream must survive.
	for i := 0; i < 3; i++ {
		r.Mu.Lock()
		r.startTimerUnsafe()
		r.Mu.Unlock()
	}
	drain(admin)

	time.Sleep(26 * time.Millisecond)
	ticks := eventsOf(drain(admin), EventTimerTick)
	// A single 5ms stream produces about 5 ticks in 26ms; duplicate streams
	// would double that and repeat remaining values.
	assert.LessOrEqual(t, len(ticks), 6)
	seen := map[int]bool{}
	for _, ev := range ticks {
		rem := ev.Data.(TimerTickPayload).Remaining
		assert.False(t, seen[rem], "remaining value %d repeated", rem)
		seen[rem] = true
	}
}
