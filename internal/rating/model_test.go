package rating

import (
	"math"
	"testing"

	"github.com/padelclub/padelengine/internal/domain"
)

func TestExpectedScoreSymmetry(t *testing.T) {
	pairs := [][2]float64{
		{1000, 1000},
		{1200, 1000},
		{1000, 1200},
		{944, 938},
		{1500, 700},
	}
	for _, pair := range pairs {
		sum := ExpectedScore(pair[0], pair[1]) + ExpectedScore(pair[1], pair[0])
		if math.Abs(sum-1.0) > 1e-12 {
			t.Errorf("ExpectedScore(%v,%v)+ExpectedScore(%v,%v) = %v, want 1",
				pair[0], pair[1], pair[1], pair[0], sum)
		}
	}
}

func TestKFactor(t *testing.T) {
	tests := []struct {
		games int
		want  int
	}{
		{games: 0, want: 40},
		{games: 9, want: 40},
		{games: 10, want: 30},
		{games: 29, want: 30},
		{games: 30, want: 20},
		{games: 100, want: 20},
	}
	for _, tt := range tests {
		if got := KFactor(tt.games); got != tt.want {
			t.Errorf("KFactor(%d) = %d, want %d", tt.games, got, tt.want)
		}
	}
}

func TestMarginMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		setsA int
		setsB int
		want  float64
	}{
		{name: "no margin", setsA: 6, setsB: 6, want: 1.0},
		{name: "one set", setsA: 6, setsB: 5, want: 1.1},
		{name: "two sets same as one", setsA: 6, setsB: 4, want: 1.1},
		{name: "three sets", setsA: 6, setsB: 3, want: 1.2},
		{name: "blowout", setsA: 6, setsB: 0, want: 1.2},
		{name: "order independent", setsA: 0, setsB: 6, want: 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MarginMultiplier(tt.setsA, tt.setsB); got != tt.want {
				t.Errorf("MarginMultiplier(%d, %d) = %v, want %v", tt.setsA, tt.setsB, got, tt.want)
			}
		})
	}
}

func doubles(slots int) domain.Team {
	team := make(domain.Team, 0, slots)
	for i := 0; i < slots; i++ {
		team = append(team, domain.KnownPlayer(newTestID(byte(i+1))))
	}
	return team
}

func TestMatchWeight(t *testing.T) {
	tests := []struct {
		name  string
		match domain.Match
		want  float64
	}{
		{
			name: "tournament always full weight",
			match: domain.Match{
				TeamA: doubles(2), TeamB: doubles(2),
				SetsA: 2, SetsB: 1,
				ScoreType:    domain.ScoreSets,
				TournamentID: newTestID(9),
			},
			want: 1.0,
		},
		{
			name: "short sets",
			match: domain.Match{
				TeamA: doubles(2), TeamB: doubles(2),
				SetsA: 3, SetsB: 2, ScoreType: domain.ScoreSets,
			},
			want: 0.5,
		},
		{
			name: "long sets",
			match: domain.Match{
				TeamA: doubles(2), TeamB: doubles(2),
				SetsA: 6, SetsB: 4, ScoreType: domain.ScoreSets,
			},
			want: 1.0,
		},
		{
			name: "mid sets",
			match: domain.Match{
				TeamA: doubles(2), TeamB: doubles(2),
				SetsA: 5, SetsB: 4, ScoreType: domain.ScoreSets,
			},
			want: 0.5,
		},
		{
			name: "short points target",
			match: domain.Match{
				TeamA: doubles(2), TeamB: doubles(2),
				SetsA: 15, SetsB: 11,
				ScoreType: domain.ScorePoints, ScoreTarget: 15,
			},
			want: 0.5,
		},
		{
			name: "mid points target",
			match: domain.Match{
				TeamA: doubles(2), TeamB: doubles(2),
				SetsA: 21, SetsB: 18,
				ScoreType: domain.ScorePoints, ScoreTarget: 21,
			},
			want: 0.5,
		},
		{
			name: "long points target",
			match: domain.Match{
				TeamA: doubles(2), TeamB: doubles(2),
				SetsA: 24, SetsB: 20,
				ScoreType: domain.ScorePoints, ScoreTarget: 24,
			},
			want: 1.0,
		},
		{
			name: "unknown score type",
			match: domain.Match{
				TeamA: doubles(2), TeamB: doubles(2),
				SetsA: 6, SetsB: 4,
			},
			want: 0.5,
		},
		{
			name: "singles halves the weight",
			match: domain.Match{
				TeamA: doubles(1), TeamB: doubles(1),
				SetsA: 6, SetsB: 4, ScoreType: domain.ScoreSets,
			},
			want: 0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchWeight(tt.match); got != tt.want {
				t.Errorf("MatchWeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayerWeight(t *testing.T) {
	tests := []struct {
		name    string
		rating  float64
		teamAvg float64
		want    float64
	}{
		{name: "at team average", rating: 1000, teamAvg: 1000, want: 1.0},
		{name: "below average gets boost", rating: 900, teamAvg: 1000, want: 1.125},
		{name: "above average gets discount", rating: 1100, teamAvg: 1000, want: 0.875},
		{name: "clamped low", rating: 1400, teamAvg: 1000, want: 0.75},
		{name: "clamped high", rating: 600, teamAvg: 1000, want: 1.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlayerWeight(tt.rating, tt.teamAvg); got != tt.want {
				t.Errorf("PlayerWeight(%v, %v) = %v, want %v", tt.rating, tt.teamAvg, got, tt.want)
			}
		})
	}
}

func TestPlayerDeltaBaselineMatch(t *testing.T) {
	m := domain.Match{
		TeamA: doubles(2), TeamB: doubles(2),
		SetsA: 6, SetsB: 4, ScoreType: domain.ScoreSets,
	}
	// Both teams at baseline: expected 0.5, margin 1.1, full match weight.
	winner := PlayerDelta(0, Baseline, Baseline, 0.5, true, m)
	if winner != 22 {
		t.Errorf("winner delta = %d, want 22", winner)
	}
	loser := PlayerDelta(0, Baseline, Baseline, 0.5, false, m)
	if loser != -22 {
		t.Errorf("loser delta = %d, want -22", loser)
	}
}
