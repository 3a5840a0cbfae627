// internal/sim/types.go
package sim

// PlayerStats accumulates one player's tournament-wide numbers. Every selected
// player gets an entry before the first ball is bowled, so leaderboard lookups
// never miss.
type PlayerStats struct {
	Name    string `json:"name"`
	TeamKey string `json:"teamKey"`
	Runs    int    `json:"runs"`
	Balls   int    `json:"balls"`
	Fours   int    `json:"fours"`
	Sixes   int    `json:"sixes"`
	Wickets int    `json:"wickets"`
	Points  int    `json:"points"`
}

// Innings is one team's batting turn.
type Innings struct {
	BattingTeam string `json:"battingTeam"`
	Runs        int    `json:"runs"`
	Wickets     int    `json:"wickets"`
	Balls       int    `json:"balls"`
	AllOut      bool   `json:"allOut"`
}

// Overs reports the overs consumed for net-run-rate purposes: the full 20
// when the innings ran its allotted deliveries, the actual overs when it
// ended all-out.
func (in *Innings) Overs() float64 {
	if in.AllOut {
		return float64(in.Balls) / 6.0
	}
	return 20.0
}

// Match is the resolution of two innings.
type Match struct {
	Type     string   `json:"type"`
	TeamA    string   `json:"teamA"`
	TeamB    string   `json:"teamB"`
	InningsA *Innings `json:"inningsA"`
	InningsB *Innings `json:"inningsB"`
	Winner   string   `json:"winner"`
	Summary  string   `json:"summary"`
}

// Standing is one row of the league table.
type Standing struct {
	TeamKey  string  `json:"teamKey"`
	TeamName string  `json:"teamName"`
	Played   int     `json:"played"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Points   int     `json:"points"`
	NRR      float64 `json:"nrr"`
}

// Result is the full tournament bundle. It references nothing from the live
// room; the engine builds it from deep copies.
type Result struct {
	LeagueMatches  []*Match                `json:"leagueMatches"`
	Standings      []*Standing             `json:"standings"`
	Knockouts      []*Match                `json:"knockouts"`
	Champion       string                  `json:"champion"`
	RunnerUp       string                  `json:"runnerUp"`
	TopScorer      *PlayerStats            `json:"topScorer"`
	TopWicketTaker *PlayerStats            `json:"topWicketTaker"`
	MVP            *PlayerStats            `json:"mvp"`
	PlayerStats    map[string]*PlayerStats `json:"playerStats"`
}
