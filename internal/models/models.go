// internal/models/models.go
package models

import "time"

// Lot status values. A lot transitions out of the empty status at most once
// per auction run; sale.go guards against re-processing.
const (
	StatusSold   = "sold"
	StatusUnsold = "unsold"
)

// Player is a single auction lot and, once sold, a roster member.
type Player struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	BasePrice int    `json:"basePrice"`
	Batting   int    `json:"batting"`
	Bowling   int    `json:"bowling"`
	Luck      int    `json:"luck"`
	Status    string `json:"status,omitempty"`
	SoldPrice int    `json:"soldPrice,omitempty"`
}

// Team persists across the auction and the simulation.
// Ownership is tracked twice: OwnerPID is the durable player identifier that
// survives reconnects, OwnerConn is the transient connection currently bound
// to the team (last writer wins on reconnect races).
type Team struct {
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Budget      int       `json:"budget"`
	Spent       int       `json:"spent"`
	PlayerCount int       `json:"playerCount"`
	Roster      []*Player `json:"roster"`
	Taken       bool      `json:"taken"`
	OwnerPID    string    `json:"ownerPid,omitempty"`
	OwnerConn   string    `json:"-"`
}

// Bid is ephemeral; only the current highest bid is retained on the room.
type Bid struct {
	TeamKey string `json:"teamKey"`
	Amount  int    `json:"amount"`
}

// Squad is a team's submitted starting lineup for the simulation.
type Squad struct {
	TeamKey   string   `json:"teamKey"`
	PlayingXI []string `json:"playing11"`
	Impact    []string `json:"impact,omitempty"`
	Captain   string   `json:"captain,omitempty"`
}

// RoomConfig carries per-room tunables. TickInterval is the wall-clock length
// of one timer unit; tests shrink it to run the countdown in milliseconds.
type RoomConfig struct {
	Budget        int           `json:"budget"`
	TimerTicks    int           `json:"timerTicks"`
	CooldownTicks int           `json:"cooldownTicks"`
	SquadSize     int           `json:"squadSize"`
	TickInterval  time.Duration `json:"-"`
}

// DefaultRoomConfig returns the standard auction settings: a 10-unit
// countdown, a 4-unit post-sale cooldown and 11-player squads.
func DefaultRoomConfig() RoomConfig {
	return RoomConfig{
		Budget:        10000,
		TimerTicks:    10,
		CooldownTicks: 4,
		SquadSize:     11,
		TickInterval:  time.Second,
	}
}

// Normalize fills zero-valued fields with defaults so a partial client-supplied
// config never produces a dead timer or a zero budget.
func (c *RoomConfig) Normalize() {
	def := DefaultRoomConfig()
	if c.Budget <= 0 {
		c.Budget = def.Budget
	}
	if c.TimerTicks <= 0 {
		c.TimerTicks = def.TimerTicks
	}
	if c.CooldownTicks <= 0 {
		c.CooldownTicks = def.CooldownTicks
	}
	if c.SquadSize <= 0 {
		c.SquadSize = def.SquadSize
	}
	if c.TickInterval <= 0 {
		c.TickInterval = def.TickInterval
	}
}
