package badge

import (
	"testing"
	"time"

	"github.com/padelclub/padelengine/internal/domain"
	"github.com/padelclub/padelengine/internal/rating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestID(b byte) uuid.UUID {
	var id uuid.UUID
	id[15] = b
	return id
}

func teamOf(ids ...uuid.UUID) domain.Team {
	team := make(domain.Team, 0, len(ids))
	for _, id := range ids {
		team = append(team, domain.KnownPlayer(id))
	}
	return team
}

func at(day, hour int) time.Time {
	return time.Date(2024, time.March, day, hour, 0, 0, 0, time.UTC)
}

func sampleHistory() []domain.Match {
	p1, p2, p3, p4 := newTestID(1), newTestID(2), newTestID(3), newTestID(4)
	return []domain.Match{
		{
			ID: newTestID(101), PlayedAt: at(1, 22),
			TeamA: teamOf(p1, p2), TeamB: teamOf(p3, p4),
			SetsA: 6, SetsB: 0, ScoreType: domain.ScoreSets,
		},
		{
			ID: newTestID(102), PlayedAt: at(2, 8),
			TeamA: teamOf(p1, p3), TeamB: teamOf(p2, p4),
			SetsA: 5, SetsB: 6, ScoreType: domain.ScoreSets,
		},
		{
			ID: newTestID(103), PlayedAt: at(3, 18),
			TeamA: teamOf(p1, p2), TeamB: teamOf(p3, p4),
			SetsA: 3, SetsB: 2, ScoreType: domain.ScoreSets,
		},
	}
}

func TestBuildStatsCounters(t *testing.T) {
	p1 := newTestID(1)
	now := at(5, 12)
	stats := BuildStats(sampleHistory(), nil, nil, now)
	require.Contains(t, stats, p1)

	s := stats[p1]
	assert.Equal(t, 3, s.MatchesPlayed)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 1, s.BestWinStreak)
	assert.Equal(t, 1, s.BestLossStreak)
	assert.Equal(t, 1, s.CurrentWinStreak)
	assert.Equal(t, 0, s.CurrentLossStreak)
	assert.Equal(t, 1, s.CleanSheets)
	assert.Equal(t, 2, s.MarathonMatches)
	assert.Equal(t, 1, s.QuickWins)
	assert.Equal(t, 1, s.CloseWins)
	assert.Equal(t, 1, s.NightOwlMatches)
	assert.Equal(t, 1, s.EarlyBirdMatches)
	assert.Equal(t, 3, s.MatchesLast30Days)
	assert.Equal(t, 14, s.TotalSetsWon)
	assert.Equal(t, 8, s.TotalSetsLost)
	assert.Equal(t, 2, s.UniquePartners)
	assert.Equal(t, 3, s.UniqueOpponents)
	assert.Equal(t, 67, s.WinRatePercent())
}

func TestBuildStatsUpsetAndRatingLoss(t *testing.T) {
	p1, p4 := newTestID(1), newTestID(4)
	stats := BuildStats(sampleHistory(), nil, nil, at(5, 12))

	// After the 6-0 opener p4 sits at 976; winning the second match
	// against a 1000-average side is a 24 point upset.
	assert.Equal(t, 24, stats[p4].BiggestUpsetGap)
	assert.Equal(t, at(2, 8), stats[p4].FirstUpsetAt)
	assert.True(t, stats[p1].FirstUpsetAt.IsZero())

	// p1 drops 23 in the second match, their single biggest fall.
	assert.Equal(t, 23, stats[p1].BiggestRatingLoss)
}

func TestBuildStatsRatingMatchesReplay(t *testing.T) {
	matches := sampleHistory()
	stats := BuildStats(matches, nil, nil, at(5, 12))
	states := rating.Replay(matches, nil)
	require.Len(t, stats, len(states))
	for id, st := range states {
		assert.Equalf(t, st.Rating, stats[id].CurrentRating, "player %s", id)
	}
}

func TestBuildStatsActivityWindow(t *testing.T) {
	p1, p2 := newTestID(1), newTestID(2)
	old := domain.Match{
		ID: newTestID(110), PlayedAt: at(1, 12).AddDate(0, 0, -60),
		TeamA: teamOf(p1), TeamB: teamOf(p2),
		SetsA: 6, SetsB: 3, ScoreType: domain.ScoreSets,
	}
	stats := BuildStats([]domain.Match{old}, nil, nil, at(1, 12))
	assert.Equal(t, 1, stats[p1].MatchesPlayed)
	assert.Equal(t, 0, stats[p1].MatchesLast30Days)
}

func TestBuildStatsGuestPartners(t *testing.T) {
	p1, p2, p3 := newTestID(1), newTestID(2), newTestID(3)
	m := domain.Match{
		ID: newTestID(111), PlayedAt: at(1, 12),
		TeamA: domain.Team{domain.KnownPlayer(p1), domain.GuestPlayer()},
		TeamB: teamOf(p2, p3),
		SetsA: 6, SetsB: 4, ScoreType: domain.ScoreSets,
	}
	stats := BuildStats([]domain.Match{m}, nil, nil, at(2, 12))
	assert.Equal(t, 1, stats[p1].GuestPartners)
	assert.Equal(t, 0, stats[p2].GuestPartners)
	// The guest is not an opponent entry for the other side.
	assert.Equal(t, 1, stats[p2].UniqueOpponents)
}

func TestBuildStatsRosterInitialized(t *testing.T) {
	idle := newTestID(9)
	roster := []domain.Player{{ID: idle, Name: "idle"}}
	stats := BuildStats(nil, roster, nil, at(1, 12))
	require.Contains(t, stats, idle)
	assert.Equal(t, 0, stats[idle].MatchesPlayed)
	assert.Equal(t, rating.Baseline, stats[idle].CurrentRating)
}

func TestBuildStatsTournamentPlacements(t *testing.T) {
	p1 := newTestID(1)
	results := []domain.TournamentResult{
		{ID: newTestID(50), PlayerID: p1, TournamentID: newTestID(60), Rank: 1, TournamentType: domain.TournamentAmericano},
		{ID: newTestID(51), PlayerID: p1, TournamentID: newTestID(61), Rank: 3},
		{ID: newTestID(52), PlayerID: p1, TournamentID: newTestID(62), Rank: 5},
	}
	roster := []domain.Player{{ID: p1}}
	stats := BuildStats(nil, roster, results, at(1, 12))

	s := stats[p1]
	assert.Equal(t, 3, s.TournamentsPlayed)
	assert.Equal(t, 1, s.TournamentWins)
	assert.Equal(t, 2, s.TournamentPodiums)
	assert.Equal(t, 1, s.AmericanoWins)
	assert.Equal(t, 0, s.MexicanoWins)
}

func TestBuildStatsSkipsUnresolvableMatches(t *testing.T) {
	p1, p2 := newTestID(1), newTestID(2)
	m := domain.Match{
		ID: newTestID(112), PlayedAt: at(1, 12),
		TeamA: teamOf(p1, p2),
		TeamB: domain.Team{domain.GuestPlayer(), domain.GuestPlayer()},
		SetsA: 6, SetsB: 0, ScoreType: domain.ScoreSets,
	}
	stats := BuildStats([]domain.Match{m}, []domain.Player{{ID: p1}}, nil, at(2, 12))
	assert.Equal(t, 0, stats[p1].MatchesPlayed)
}
