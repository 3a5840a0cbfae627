// internal/room/events.go
package room

import (
	"encoding/json"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/sim"
)

// EventType tags every inbound request and outbound notification.
type EventType string

// Inbound event types, sent by clients through the transport layer.
const (
	EventCreateRoom           EventType = "create_room"
	EventJoinRoom             EventType = "join_room"
	EventRequestSync          EventType = "request_sync"
	EventUpdateLobbyTeams     EventType = "update_lobby_teams"
	EventClaimLobbyTeam       EventType = "claim_lobby_team"
	EventReclaimTeam          EventType = "reclaim_team"
	EventRequestReclaimManual EventType = "request_reclaim_manual"
	EventAdminReclaimDecision EventType = "admin_reclaim_decision"
	EventAdminRenameTeam      EventType = "admin_rename_team"
	EventStartAuction         EventType = "start_auction"
	EventPlaceBid             EventType = "place_bid"
	EventToggleTimer          EventType = "toggle_timer"
	EventFinalizeSale         EventType = "finalize_sale"
	EventEndAuctionTrigger    EventType = "end_auction_trigger"
	EventSubmitSquad          EventType = "submit_squad"
	EventRunSimulation        EventType = "run_simulation"
	EventDisconnect           EventType = "disconnect"
)

// Outbound event types, broadcast or sent to single connections.
const (
	EventRoomCreated           EventType = "roomcreated"
	EventRoomJoined            EventType = "room_joined"
	EventLobbyUpdate           EventType = "lobby_update"
	EventSyncData              EventType = "sync_data"
	EventTeamClaimSuccess      EventType = "team_claim_success"
	EventAdminReclaimRequest   EventType = "admin_reclaim_request"
	EventErrorMessage          EventType = "error_message"
	EventAuctionStarted        EventType = "auction_started"
	EventUpdateLot             EventType = "update_lot"
	EventTimerTick             EventType = "timer_tick"
	EventTimerStatus           EventType = "timer_status"
	EventTimerEnded            EventType = "timer_ended"
	EventBidUpdate             EventType = "bid_update"
	EventSaleFinalized         EventType = "sale_finalized"
	EventOpenSquadSelection    EventType = "open_squad_selection"
	EventSquadSubmissionUpdate EventType = "squad_submission_update"
	EventTournamentResults     EventType = "tournament_results"
	EventSimulationError       EventType = "simulation_error"
)

// Event is the single outbound message shape.
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data,omitempty"`
}

// Envelope is the inbound wire frame; Data is decoded per Type at the
// boundary before any room state is touched.
type Envelope struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// --- Inbound payloads ---

type CreateRoomRequest struct {
	RoomID   string            `json:"roomId"`
	Password string            `json:"password"`
	Config   models.RoomConfig `json:"config"`
}

type JoinRoomRequest struct {
	RoomID   string `json:"roomId"`
	Password string `json:"password"`
}

type UpdateLobbyTeamsRequest struct {
	Teams []TeamSpec `json:"teams"`
}

// TeamSpec is the minimal client-side team description.
type TeamSpec struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type ClaimTeamRequest struct {
	Key string `json:"key"`
}

type ReclaimManualRequest struct {
	TeamKey string `json:"teamKey"`
}

type ReclaimDecisionRequest struct {
	Approved     bool   `json:"approved"`
	TeamKey      string `json:"teamKey"`
	RequesterID  string `json:"requesterId"`
	RequesterPID string `json:"requesterPid"`
}

type RenameTeamRequest struct {
	Key     string `json:"key"`
	NewName string `json:"newName"`
}

type StartAuctionRequest struct {
	Teams []TeamSpec       `json:"teams"`
	Queue []*models.Player `json:"queue"`
}

type PlaceBidRequest struct {
	TeamKey string `json:"teamKey"`
	Amount  int    `json:"amount"`
}

type FinalizeSaleRequest struct {
	IsUnsold bool `json:"isUnsold"`
}

type SubmitSquadRequest struct {
	TeamKey   string   `json:"teamKey"`
	PlayingXI []string `json:"playing11"`
	Impact    []string `json:"impact"`
	Captain   string   `json:"captain"`
}

// --- Outbound payloads ---

type RoomCreatedPayload struct {
	RoomID string `json:"roomId"`
	PID    string `json:"pid"`
}

type RoomJoinedPayload struct {
	RoomID  string        `json:"roomId"`
	PID     string        `json:"pid"`
	IsAdmin bool          `json:"isAdmin"`
	State   *SyncPayload  `json:"state"`
	Teams   []*TeamStatus `json:"teams"`
}

// TeamStatus is the broadcast-safe view of a team.
type TeamStatus struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Budget      int              `json:"budget"`
	Spent       int              `json:"spent"`
	PlayerCount int              `json:"playerCount"`
	Taken       bool             `json:"taken"`
	Roster      []*models.Player `json:"roster"`
}

type LobbyUpdatePayload struct {
	Phase   Phase         `json:"phase"`
	Teams   []*TeamStatus `json:"teams"`
	Members int           `json:"members"`
}

type SyncPayload struct {
	RoomID        string           `json:"roomId"`
	Phase         Phase            `json:"phase"`
	Teams         []*TeamStatus    `json:"teams"`
	CurrentLot    *models.Player   `json:"currentLot,omitempty"`
	LotIndex      int              `json:"lotIndex"`
	QueueSize     int              `json:"queueSize"`
	CurrentBid    int              `json:"currentBid"`
	CurrentBidder string           `json:"currentBidder,omitempty"`
	TicksLeft     int              `json:"ticksLeft"`
	TimerPaused   bool             `json:"timerPaused"`
	SquadsIn      []string         `json:"squadsIn"`
	AdminPID      string           `json:"adminPid"`
	Results       *sim.Result      `json:"results,omitempty"`
}

type ClaimSuccessPayload struct {
	TeamKey  string `json:"teamKey"`
	TeamName string `json:"teamName"`
}

type ReclaimRequestPayload struct {
	TeamKey       string `json:"teamKey"`
	RequesterID   string `json:"requesterId"`
	RequesterPID  string `json:"requesterPid"`
	RequesterName string `json:"requesterName"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type AuctionStartedPayload struct {
	Teams     []*TeamStatus `json:"teams"`
	QueueSize int           `json:"queueSize"`
}

type UpdateLotPayload struct {
	Player    *models.Player `json:"player"`
	LotIndex  int            `json:"lotIndex"`
	QueueSize int            `json:"queueSize"`
}

type TimerTickPayload struct {
	Remaining int `json:"remaining"`
}

type TimerStatusPayload struct {
	Paused    bool `json:"paused"`
	Remaining int  `json:"remaining"`
}

type BidUpdatePayload struct {
	TeamKey  string `json:"teamKey"`
	TeamName string `json:"teamName"`
	Amount   int    `json:"amount"`
}

type SaleFinalizedPayload struct {
	IsUnsold bool           `json:"isUnsold"`
	Player   *models.Player `json:"player"`
	TeamKey  string         `json:"teamKey,omitempty"`
	Price    int            `json:"price,omitempty"`
	Teams    []*TeamStatus  `json:"teams"`
}

type OpenSquadSelectionPayload struct {
	Teams     []*TeamStatus `json:"teams"`
	SquadSize int           `json:"squadSize"`
}

type SquadSubmissionPayload struct {
	TeamKey   string   `json:"teamKey"`
	Submitted []string `json:"submitted"`
}

type TournamentResultsPayload struct {
	Results *sim.Result `json:"results"`
}
