// internal/sim/tournament.go
package sim

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
)

// ErrNotEnoughTeams is returned when fewer than two teams field a lineup.
var ErrNotEnoughTeams = errors.New("sim: need at least two teams with players")

// simTeam is the engine's private working copy of a team. It never aliases
// live room state.
type simTeam struct {
	Key    string
	Name   string
	Lineup []*models.Player

	Played, Wins, Losses, Points int
	RunsFor, RunsAgainst         int
	OversFaced, OversBowled      float64
}

// Engine runs one tournament. Construct a fresh Engine per run.
type Engine struct {
	rng   *rand.Rand
	stats map[string]*PlayerStats
}

// New returns an Engine driven by rng; pass nil for a time-seeded source.
func New(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		rng:   rng,
		stats: make(map[string]*PlayerStats),
	}
}

// prepareTeams builds the eligible simTeam list from deep copies of the won
// rosters. A submitted squad picks the lineup; an incomplete or missing squad
// auto-fills from the roster until squadSize players or the roster runs out.
// Teams left with zero players are excluded.
func prepareTeams(teams []*models.Team, squads map[string]*models.Squad, squadSize int) []*simTeam {
	var out []*simTeam
	for _, t := range teams {
		if !t.Taken || len(t.Roster) == 0 {
			continue
		}
		byName := make(map[string]*models.Player, len(t.Roster))
		for _, p := range t.Roster {
			cp := *p
			byName[p.Name] = &cp
		}

		var lineup []*models.Player
		picked := make(map[string]bool)
		if sq, ok := squads[t.Key]; ok {
			for _, name := range sq.PlayingXI {
				if p, ok := byName[name]; ok && !picked[name] {
					lineup = append(lineup, p)
					picked[name] = true
				}
				if len(lineup) == squadSize {
					break
				}
			}
		}
		for _, p := range t.Roster {
			if len(lineup) >= squadSize {
				break
			}
			if !picked[p.Name] {
				lineup = append(lineup, byName[p.Name])
				picked[p.Name] = true
			}
		}
		if len(lineup) == 0 {
			continue
		}
		out = append(out, &simTeam{Key: t.Key, Name: t.Name, Lineup: lineup})
	}
	return out
}

// Run plays the league and knockout stages and returns the result bundle.
// It reads the inputs only through deep copies and mutates nothing.
func (e *Engine) Run(teams []*models.Team, squads map[string]*models.Squad, squadSize int) (*Result, error) {
	sts := prepareTeams(teams, squads, squadSize)
	if len(sts) < 2 {
		return nil, ErrNotEnoughTeams
	}

	for _, st := range sts {
		for _, p := range st.Lineup {
			e.stats[p.Name] = &PlayerStats{Name: p.Name, TeamKey: st.Key}
		}
	}

	res := &Result{PlayerStats: e.stats}

	// Round-robin league: every unordered pair plays once.
	for i := 0; i < len(sts); i++ {
		for j := i + 1; j < len(sts); j++ {
			m, _, _ := e.playMatch(sts[i], sts[j], MatchTypeLeague)
			res.LeagueMatches = append(res.LeagueMatches, m)
		}
	}

	ranked := make([]*simTeam, len(sts))
	copy(ranked, sts)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].netRunRate() > ranked[j].netRunRate()
	})
	for _, st := range ranked {
		res.Standings = append(res.Standings, &Standing{
			TeamKey:  st.Key,
			TeamName: st.Name,
			Played:   st.Played,
			Wins:     st.Wins,
			Losses:   st.Losses,
			Points:   st.Points,
			NRR:      st.netRunRate(),
		})
	}

	var final *Match
	var champion, runnerUp *simTeam
	if len(ranked) >= 4 {
		q1, q1w, q1l := e.playMatch(ranked[0], ranked[1], MatchTypeQualifier1)
		el, elw, _ := e.playMatch(ranked[2], ranked[3], MatchTypeEliminator)
		q2, q2w, _ := e.playMatch(q1l, elw, MatchTypeQualifier2)
		var fw, fl *simTeam
		final, fw, fl = e.playMatch(q1w, q2w, MatchTypeFinal)
		champion, runnerUp = fw, fl
		res.Knockouts = append(res.Knockouts, q1, el, q2, final)
	} else {
		var fw, fl *simTeam
		final, fw, fl = e.playMatch(ranked[0], ranked[1], MatchTypeFinal)
		champion, runnerUp = fw, fl
		res.Knockouts = append(res.Knockouts, final)
	}
	res.Champion = champion.Name
	res.RunnerUp = runnerUp.Name

	res.TopScorer = e.topBy(func(s *PlayerStats) int { return s.Runs })
	res.TopWicketTaker = e.topBy(func(s *PlayerStats) int { return s.Wickets })
	res.MVP = e.topBy(func(s *PlayerStats) int { return s.Points })
	return res, nil
}

// topBy returns the stat entry maximizing key, with a stable name tiebreak,
// or a placeholder when the map is empty.
func (e *Engine) topBy(key func(*PlayerStats) int) *PlayerStats {
	var best *PlayerStats
	for _, s := range e.stats {
		if best == nil || key(s) > key(best) || (key(s) == key(best) && s.Name < best.Name) {
			best = s
		}
	}
	if best == nil {
		return &PlayerStats{Name: "N/A"}
	}
	return best
}
