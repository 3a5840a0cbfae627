// internal/sim/sim_test.go
package sim

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"
)

func testEngine(seed int64) *Engine {
	return New(rand.New(rand.NewSource(seed)))
}

// makeTeam builds a taken team with size roster players of mixed roles.
func makeTeam(key string, size int) *models.Team {
	t := &models.Team{Key: key, Name: "Team " + key, Taken: true}
	roles := []string{"Batsman", "Bowler", "All-Rounder", "Wicket-Keeper"}
	for i := 0; i < size; i++ {
		t.Roster = append(t.Roster, &models.Player{
			Name:    fmt.Sprintf("%s-p%d", key, i),
			Role:    roles[i%len(roles)],
			Batting: 40 + (i*7)%50,
			Bowling: 30 + (i*11)%60,
			Luck:    50,
		})
	}
	t.PlayerCount = size
	return t
}

func makeTeams(n, size int) []*models.Team {
	teams := make([]*models.Team, n)
	for i := range teams {
		teams[i] = makeTeam(fmt.Sprintf("t%d", i), size)
	}
	return teams
}

func TestRunRequiresTwoTeams(t *testing.T) {
	_, err := testEngine(1).Run(makeTeams(1, 11), nil, 11)
	assert.ErrorIs(t, err, ErrNotEnoughTeams)

	// A team with an empty roster is excluded from eligibility.
	teams := makeTeams(2, 11)
	teams[1].Roster = nil
	_, err = testEngine(1).Run(teams, nil, 11)
	assert.ErrorIs(t, err, ErrNotEnoughTeams)
}

func TestPrepareTeamsAutoFill(t *testing.T) {
	teams := makeTeams(2, 13)
	squads := map[string]*models.Squad{
		"t0": {TeamKey: "t0", PlayingXI: []string{"t0-p5", "t0-p6", "no-such-player"}},
	}

	sts := prepareTeams(teams, squads, 11)
	require.Len(t, sts, 2)

	// Submitted names lead the lineup, the roster tops it up to 11.
	assert.Len(t, sts[0].Lineup, 11)
	assert.Equal(t, "t0-p5", sts[0].Lineup[0].Name)
	assert.Equal(t, "t0-p6", sts[0].Lineup[1].Name)

	// No squad: straight auto-fill.
	assert.Len(t, sts[1].Lineup, 11)
	assert.Equal(t, "t1-p0", sts[1].Lineup[0].Name)

	// Short rosters yield short lineups rather than exclusion.
	short := prepareTeams(makeTeams(2, 5), nil, 11)
	require.Len(t, short, 2)
	assert.Len(t, short[0].Lineup, 5)
}

func TestPrepareTeamsDeepCopies(t *testing.T) {
	teams := makeTeams(2, 11)
	sts := prepareTeams(teams, nil, 11)
	sts[0].Lineup[0].Batting = 1
	assert.NotEqual(t, 1, teams[0].Roster[0].Batting)
}

func TestInningsBounds(t *testing.T) {
	e := testEngine(7)
	sts := prepareTeams(makeTeams(2, 11), nil, 11)
	for _, st := range sts {
		for _, p := range st.Lineup {
			e.stats[p.Name] = &PlayerStats{Name: p.Name, TeamKey: st.Key}
		}
	}

	in := e.simulateInnings(sts[0], sts[1], noTarget)
	assert.LessOrEqual(t, in.Balls, ballsPerInnings)
	assert.LessOrEqual(t, in.Wickets, len(sts[0].Lineup)-1)
	assert.GreaterOrEqual(t, in.Runs, 0)

	// A chase ends as soon as the target is exceeded.
	chase := e.simulateInnings(sts[1], sts[0], 5)
	if !chase.AllOut && chase.Balls < ballsPerInnings {
		assert.Greater(t, chase.Runs, 5)
	}
}

func TestInningsOvers(t *testing.T) {
	full := &Innings{Balls: 120}
	assert.Equal(t, 20.0, full.Overs())

	early := &Innings{Balls: 120, AllOut: false}
	assert.Equal(t, 20.0, early.Overs())

	allOut := &Innings{Balls: 45, AllOut: true}
	assert.Equal(t, 7.5, allOut.Overs())
}

func TestNetRunRateZeroWithoutOvers(t *testing.T) {
	st := &simTeam{RunsFor: 100, RunsAgainst: 50}
	assert.Equal(t, 0.0, st.netRunRate())

	st.OversFaced = 20
	st.OversBowled = 20
	assert.InDelta(t, 2.5, st.netRunRate(), 1e-9)
}

func TestBowlingRotation(t *testing.T) {
	lineup := []*models.Player{
		{Name: "bat1", Role: "Batsman", Bowling: 10},
		{Name: "bowl1", Role: "Bowler", Bowling: 80},
		{Name: "ar1", Role: "All-Rounder", Bowling: 70},
		{Name: "bowl2", Role: "Bowler", Bowling: 90},
		{Name: "wk", Role: "Wicket-Keeper", Bowling: 5},
	}
	rot := bowlingRotation(lineup)
	require.Len(t, rot, 5)
	// Role-eligible bowlers first, by descending skill; the rest fill in.
	assert.Equal(t, "bowl2", rot[0].Name)
	assert.Equal(t, "bowl1", rot[1].Name)
	assert.Equal(t, "ar1", rot[2].Name)
}

func TestLeagueMatchCount(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		res, err := testEngine(int64(n)).Run(makeTeams(n, 11), nil, 11)
		require.NoError(t, err)
		assert.Len(t, res.LeagueMatches, n*(n-1)/2, "n=%d", n)
	}
}

func TestKnockoutBracketWithFourTeams(t *testing.T) {
	res, err := testEngine(42).Run(makeTeams(4, 11), nil, 11)
	require.NoError(t, err)

	require.Len(t, res.Knockouts, 4)
	assert.Equal(t, MatchTypeQualifier1, res.Knockouts[0].Type)
	assert.Equal(t, MatchTypeEliminator, res.Knockouts[1].Type)
	assert.Equal(t, MatchTypeQualifier2, res.Knockouts[2].Type)
	assert.Equal(t, MatchTypeFinal, res.Knockouts[3].Type)

	final := res.Knockouts[3]
	winnerName := ""
	for _, s := range res.Standings {
		if s.TeamKey == final.Winner {
			winnerName = s.TeamName
		}
	}
	assert.Equal(t, winnerName, res.Champion)
}

func TestSingleFinalWithTwoOrThreeTeams(t *testing.T) {
	for _, n := range []int{2, 3} {
		res, err := testEngine(int64(n)).Run(makeTeams(n, 11), nil, 11)
		require.NoError(t, err)
		require.Len(t, res.Knockouts, 1, "n=%d", n)
		final := res.Knockouts[0]
		assert.Equal(t, MatchTypeFinal, final.Type)

		// Finalists are the top two of the standings.
		top2 := map[string]bool{res.Standings[0].TeamKey: true, res.Standings[1].TeamKey: true}
		assert.True(t, top2[final.TeamA])
		assert.True(t, top2[final.TeamB])
	}
}

func TestThreeTeamEndToEnd(t *testing.T) {
	teams := makeTeams(3, 11)
	res, err := testEngine(99).Run(teams, nil, 11)
	require.NoError(t, err)

	assert.Len(t, res.LeagueMatches, 3)
	assert.Len(t, res.Knockouts, 1)

	names := []string{teams[0].Name, teams[1].Name, teams[2].Name}
	assert.Contains(t, names, res.Champion)
	assert.Contains(t, names, res.RunnerUp)
	assert.NotEqual(t, res.Champion, res.RunnerUp)
}

func TestStandingsSortedByPointsThenNRR(t *testing.T) {
	res, err := testEngine(5).Run(makeTeams(5, 11), nil, 11)
	require.NoError(t, err)

	for i := 1; i < len(res.Standings); i++ {
		prev, cur := res.Standings[i-1], res.Standings[i]
		assert.GreaterOrEqual(t, prev.Points, cur.Points)
		if prev.Points == cur.Points {
			assert.GreaterOrEqual(t, prev.NRR, cur.NRR)
		}
	}
}

func TestPlayerStatsInitializedForAllSelected(t *testing.T) {
	res, err := testEngine(11).Run(makeTeams(2, 11), nil, 11)
	require.NoError(t, err)

	assert.Len(t, res.PlayerStats, 22)
	require.NotNil(t, res.TopScorer)
	require.NotNil(t, res.TopWicketTaker)
	require.NotNil(t, res.MVP)

	// The top scorer really is the max of the stat map.
	for _, s := range res.PlayerStats {
		assert.LessOrEqual(t, s.Runs, res.TopScorer.Runs)
		assert.LessOrEqual(t, s.Wickets, res.TopWicketTaker.Wickets)
		assert.LessOrEqual(t, s.Points, res.MVP.Points)
	}
}

func TestLeaderboardPlaceholderWhenEmpty(t *testing.T) {
	e := testEngine(1)
	assert.Equal(t, "N/A", e.topBy(func(s *PlayerStats) int { return s.Runs }).Name)
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	a, err := testEngine(1234).Run(makeTeams(4, 11), nil, 11)
	require.NoError(t, err)
	b, err := testEngine(1234).Run(makeTeams(4, 11), nil, 11)
	require.NoError(t, err)

	assert.Equal(t, a.Champion, b.Champion)
	require.Len(t, b.LeagueMatches, len(a.LeagueMatches))
	for i := range a.LeagueMatches {
		assert.Equal(t, a.LeagueMatches[i].Winner, b.LeagueMatches[i].Winner)
		assert.Equal(t, a.LeagueMatches[i].InningsA.Runs, b.LeagueMatches[i].InningsA.Runs)
	}
}

func TestMatchUpdatesLeagueTable(t *testing.T) {
	e := testEngine(3)
	sts := prepareTeams(makeTeams(2, 11), nil, 11)
	for _, st := range sts {
		for _, p := range st.Lineup {
			e.stats[p.Name] = &PlayerStats{Name: p.Name, TeamKey: st.Key}
		}
	}

	m, winner, loser := e.playMatch(sts[0], sts[1], MatchTypeLeague)
	assert.Equal(t, winner.Key, m.Winner)
	assert.Equal(t, 2, winner.Points)
	assert.Equal(t, 0, loser.Points)
	assert.Equal(t, 1, winner.Wins)
	assert.Equal(t, 1, loser.Losses)
	assert.Equal(t, 1, sts[0].Played)
	assert.Equal(t, 1, sts[1].Played)

	// NRR accumulators mirror each other.
	assert.Equal(t, sts[0].RunsFor, sts[1].RunsAgainst)
	assert.Equal(t, sts[1].RunsFor, sts[0].RunsAgainst)
	assert.InDelta(t, sts[0].OversFaced, sts[1].OversBowled, 1e-9)
	assert.InDelta(t, sts[1].OversFaced, sts[0].OversBowled, 1e-9)
}

func TestKnockoutMatchesDoNotAffectTable(t *testing.T) {
	e := testEngine(4)
	sts := prepareTeams(makeTeams(2, 11), nil, 11)
	for _, st := range sts {
		for _, p := range st.Lineup {
			e.stats[p.Name] = &PlayerStats{Name: p.Name, TeamKey: st.Key}
		}
	}

	_, winner, _ := e.playMatch(sts[0], sts[1], MatchTypeFinal)
	assert.Equal(t, 0, winner.Points)
	assert.Equal(t, 0, sts[0].Played)
}
