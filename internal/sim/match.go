// internal/sim/match.go
package sim

import "fmt"

// MatchTypeLeague marks a round-robin fixture; knockout fixtures carry their
// bracket name instead.
const (
	MatchTypeLeague     = "league"
	MatchTypeQualifier1 = "Qualifier 1"
	MatchTypeEliminator = "Eliminator"
	MatchTypeQualifier2 = "Qualifier 2"
	MatchTypeFinal      = "Final"
)

// playMatch simulates a full two-innings match between a and b. Team A bats
// first with no target, team B chases. An exact tie resolves by coin flip.
// League fixtures additionally feed the points table and the NRR accumulators.
func (e *Engine) playMatch(a, b *simTeam, matchType string) (*Match, *simTeam, *simTeam) {
	inA := e.simulateInnings(a, b, noTarget)
	inB := e.simulateInnings(b, a, inA.Runs)

	m := &Match{
		Type:     matchType,
		TeamA:    a.Key,
		TeamB:    b.Key,
		InningsA: inA,
		InningsB: inB,
	}

	var winner, loser *simTeam
	switch {
	case inB.Runs > inA.Runs:
		winner, loser = b, a
		m.Summary = fmt.Sprintf("%s won by %d wickets", b.Name, len(b.Lineup)-1-inB.Wickets)
	case inA.Runs > inB.Runs:
		winner, loser = a, b
		m.Summary = fmt.Sprintf("%s won by %d runs", a.Name, inA.Runs-inB.Runs)
	default:
		// Scores level: 50/50 flip, no super over.
		if e.rng.Intn(2) == 0 {
			winner, loser = a, b
		} else {
			winner, loser = b, a
		}
		m.Summary = fmt.Sprintf("%s won the tie-break", winner.Name)
	}
	m.Winner = winner.Key

	if matchType == MatchTypeLeague {
		winner.Points += 2
		winner.Wins++
		loser.Losses++
		a.Played++
		b.Played++

		a.RunsFor += inA.Runs
		a.OversFaced += inA.Overs()
		a.RunsAgainst += inB.Runs
		a.OversBowled += inB.Overs()

		b.RunsFor += inB.Runs
		b.OversFaced += inB.Overs()
		b.RunsAgainst += inA.Runs
		b.OversBowled += inA.Overs()
	}
	return m, winner, loser
}

// netRunRate is (runs scored / overs faced) − (runs conceded / overs bowled),
// with each term zero until the side has faced or bowled at least one over.
func (t *simTeam) netRunRate() float64 {
	var nrr float64
	if t.OversFaced > 0 {
		nrr += float64(t.RunsFor) / t.OversFaced
	}
	if t.OversBowled > 0 {
		nrr -= float64(t.RunsAgainst) / t.OversBowled
	}
	return nrr
}
