// internal/sim/innings.go
package sim

import (
	"sort"
	"strings"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
)

const (
	ballsPerInnings = 120
	ballsPerOver    = 6
	minBowlers      = 5
	noTarget        = -1
)

// Fantasy-style point weights for the MVP leaderboard.
const (
	pointsPerRun    = 1
	pointsPerFour   = 1
	pointsPerSix    = 2
	pointsPerWicket = 25
)

// bowlingEligible reports whether a player's role marks them as a bowling
// option (bowlers and all-rounders).
func bowlingEligible(p *models.Player) bool {
	role := strings.ToLower(p.Role)
	return strings.Contains(role, "bowl") || strings.Contains(role, "rounder")
}

// bowlingRotation orders the bowling side's options by descending bowling
// skill. If fewer than minBowlers qualify by role, the remaining lineup fills
// in so an over always has a bowler.
func bowlingRotation(lineup []*models.Player) []*models.Player {
	var rotation []*models.Player
	var rest []*models.Player
	for _, p := range lineup {
		if bowlingEligible(p) {
			rotation = append(rotation, p)
		} else {
			rest = append(rest, p)
		}
	}
	sort.SliceStable(rotation, func(i, j int) bool {
		return rotation[i].Bowling > rotation[j].Bowling
	})
	for _, p := range rest {
		if len(rotation) >= minBowlers {
			break
		}
		rotation = append(rotation, p)
	}
	return rotation
}

// ballOutcome draws one delivery from a weighted distribution over
// {wicket, dot, single, four, six}. The batter/bowler skill differential
// shifts weight between boundaries and dismissals; the bowler's luck rating
// adds to the wicket weight. Returns runs scored, or -1 for a wicket.
func (e *Engine) ballOutcome(batter, bowler *models.Player) int {
	diff := batter.Batting - bowler.Bowling

	wicket := clamp(7-diff/10+bowler.Luck/20, 2, 25)
	six := clamp(10+diff/8, 2, 25)
	four := clamp(16+diff/8, 4, 30)
	single := 35
	dot := clamp(100-wicket-six-four-single, 5, 60)

	total := wicket + six + four + single + dot
	roll := e.rng.Intn(total)

	switch {
	case roll < wicket:
		return -1
	case roll < wicket+six:
		return 6
	case roll < wicket+six+four:
		return 4
	case roll < wicket+six+four+single:
		return 1
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// simulateInnings plays up to 120 deliveries or all-out. target is the score
// to beat when chasing, or noTarget for the first innings; the chase ends as
// soon as the target is exceeded.
func (e *Engine) simulateInnings(batting, bowling *simTeam, target int) *Innings {
	in := &Innings{BattingTeam: batting.Key}
	lineup := batting.Lineup
	maxWickets := len(lineup) - 1

	rotation := bowlingRotation(bowling.Lineup)
	if len(rotation) == 0 {
		return in
	}

	striker, nonStriker := 0, 1
	nextBatter := 2
	if len(lineup) == 1 {
		nonStriker = 0
		nextBatter = 1
	}

	for ball := 0; ball < ballsPerInnings; ball++ {
		bowler := rotation[(ball/ballsPerOver)%len(rotation)]
		batter := lineup[striker]
		bs := e.stats[batter.Name]
		ws := e.stats[bowler.Name]

		outcome := e.ballOutcome(batter, bowler)
		in.Balls++
		if outcome < 0 {
			in.Wickets++
			ws.Wickets++
			ws.Points += pointsPerWicket
			bs.Balls++
			if in.Wickets > maxWickets || nextBatter >= len(lineup) {
				in.AllOut = true
				break
			}
			striker = nextBatter
			nextBatter++
		} else {
			in.Runs += outcome
			bs.Runs += outcome
			bs.Balls++
			bs.Points += outcome * pointsPerRun
			switch outcome {
			case 4:
				bs.Fours++
				bs.Points += pointsPerFour
			case 6:
				bs.Sixes++
				bs.Points += pointsPerSix
			}
			if outcome%2 == 1 {
				striker, nonStriker = nonStriker, striker
			}
		}

		if target != noTarget && in.Runs > target {
			break
		}
		if in.Balls%ballsPerOver == 0 {
			striker, nonStriker = nonStriker, striker
		}
	}
	return in
}
