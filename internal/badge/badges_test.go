package badge

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func badgeByID(t *testing.T, badges []Badge, id string) Badge {
	t.Helper()
	for _, b := range badges {
		if b.ID == id {
			return b
		}
	}
	t.Fatalf("badge %q not found", id)
	return Badge{}
}

func hasBadge(badges []Badge, id string) bool {
	for _, b := range badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

func TestBuildBadgesThresholds(t *testing.T) {
	p1 := newTestID(1)
	all := map[uuid.UUID]*PlayerStats{
		p1: {MatchesPlayed: 27, Wins: 12, Losses: 15, BestWinStreak: 4, CurrentRating: 1000},
	}
	badges := BuildBadges(p1, all)
	require.NotEmpty(t, badges)

	earned := badgeByID(t, badges, "matches-25")
	assert.True(t, earned.Earned)
	assert.Equal(t, "IV", earned.Tier)
	assert.Equal(t, &Progress{Current: 25, Target: 25}, earned.Progress)

	locked := badgeByID(t, badges, "matches-50")
	assert.False(t, locked.Earned)
	assert.Equal(t, "V", locked.Tier)
	assert.Equal(t, &Progress{Current: 27, Target: 50}, locked.Progress)

	streak := badgeByID(t, badges, "streak-3")
	assert.True(t, streak.Earned)
	assert.Equal(t, "Win 3 matches in a row", streak.Description)
}

func TestBuildBadgesUnknownPlayer(t *testing.T) {
	assert.Nil(t, BuildBadges(newTestID(1), map[uuid.UUID]*PlayerStats{}))
}

func TestUniqueMeritEligibility(t *testing.T) {
	pA, pB := newTestID(1), newTestID(2)
	all := map[uuid.UUID]*PlayerStats{
		// Highest rating but one game short of the floor.
		pA: {MatchesPlayed: 9, Wins: 9, CurrentRating: 1400},
		pB: {MatchesPlayed: 15, Wins: 8, Losses: 7, CurrentRating: 1100},
	}

	forA := BuildBadges(pA, all)
	king := badgeByID(t, forA, "king-of-elo")
	assert.False(t, king.Earned)
	assert.Equal(t, pB, king.HolderID)
	assert.Equal(t, "1100 ELO", king.HolderValue)

	forB := BuildBadges(pB, all)
	king = badgeByID(t, forB, "king-of-elo")
	assert.True(t, king.Earned)
	assert.Equal(t, uuid.Nil, king.HolderID)
	assert.Empty(t, king.HolderValue)
}

func TestUniqueMeritOmittedWithoutEligiblePlayers(t *testing.T) {
	p1 := newTestID(1)
	all := map[uuid.UUID]*PlayerStats{
		p1: {MatchesPlayed: 5, Wins: 5, CurrentRating: 1080},
	}
	badges := BuildBadges(p1, all)
	assert.False(t, hasBadge(badges, "king-of-elo"))
	assert.False(t, hasBadge(badges, "win-machine"))
	// Everybody has matches played, so most-active survives.
	assert.True(t, hasBadge(badges, "most-active"))
}

func TestUniqueMeritTieBreak(t *testing.T) {
	p1, p2 := newTestID(1), newTestID(2)
	all := map[uuid.UUID]*PlayerStats{
		p1: {MatchesPlayed: 10, Losses: 5},
		p2: {MatchesPlayed: 10, Losses: 5},
	}
	// Same loss count: the smaller id holds the merit, deterministically.
	badges := BuildBadges(p2, all)
	hardTimes := badgeByID(t, badges, "hard-times")
	assert.False(t, hardTimes.Earned)
	assert.Equal(t, p1, hardTimes.HolderID)
}

func TestGiantSlayerBadges(t *testing.T) {
	p1 := newTestID(1)
	all := map[uuid.UUID]*PlayerStats{
		p1: {MatchesPlayed: 10, Wins: 5, BiggestUpsetGap: 120, FirstUpsetAt: at(3, 19)},
	}
	badges := BuildBadges(p1, all)

	first := badgeByID(t, badges, "giant-slayer")
	assert.True(t, first.Earned)
	assert.Contains(t, first.Meta, "2024-03-03")

	pro := badgeByID(t, badges, "giant-slayer-pro")
	assert.False(t, pro.Earned)
	assert.Equal(t, &Progress{Current: 120, Target: 200}, pro.Progress)
}

func TestMeritValueFormatting(t *testing.T) {
	tests := []struct {
		merit string
		value float64
		want  string
	}{
		{merit: "win-machine", value: 0.857, want: "86%"},
		{merit: "king-of-elo", value: 1234, want: "1234 ELO"},
		{merit: "trough-dweller", value: 10000 - 931, want: "931 ELO"},
		{merit: "upset-king", value: 150, want: "+150 ELO"},
		{merit: "biggest-fall", value: 31, want: "-31 ELO"},
		{merit: "most-active", value: 42, want: "42"},
	}
	for _, tt := range tests {
		if got := formatMeritValue(tt.merit, tt.value); got != tt.want {
			t.Errorf("formatMeritValue(%q, %v) = %q, want %q", tt.merit, tt.value, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	holder := newTestID(7)
	badges := []Badge{
		{ID: "a", Earned: true},
		{ID: "b"},
		{ID: "c", HolderID: holder},
	}
	summary := Summarize(badges)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.TotalEarned)
	require.Len(t, summary.OtherUnique, 1)
	assert.Equal(t, "c", summary.OtherUnique[0].ID)
	require.Len(t, summary.Locked, 1)
	assert.Equal(t, "b", summary.Locked[0].ID)
}

func TestBadgeLookupHelpers(t *testing.T) {
	icon, ok := IconByID("wins-25")
	require.True(t, ok)
	assert.Equal(t, "🏆", icon)

	icon, ok = IconByID("king-of-elo")
	require.True(t, ok)
	assert.Equal(t, "👑", icon)

	_, ok = IconByID("no-such-badge")
	assert.False(t, ok)

	tier, ok := TierLabelByID("streak-7")
	require.True(t, ok)
	assert.Equal(t, "III", tier)

	_, ok = TierLabelByID("streak-4")
	assert.False(t, ok)

	desc, ok := DescriptionByID("elo-1200")
	require.True(t, ok)
	assert.Equal(t, "Reach 1200 rating", desc)

	desc, ok = DescriptionByID("giant-slayer")
	require.True(t, ok)
	assert.Equal(t, "Beat a team with a higher average rating", desc)
}
