package rating

import (
	"math"

	"github.com/padelclub/padelengine/internal/domain"
)

const Baseline = 1000

const (
	expectedScoreDivisor = 300
	playerWeightDivisor  = 800
	maxPlayerWeight      = 1.25
	minPlayerWeight      = 0.75
	maxMarginBonus       = 0.2
	shortSetMax          = 3
	longSetMin           = 6
	shortPointsMax       = 15
	midPointsMax         = 21
	shortMatchWeight     = 0.5
	midMatchWeight       = 0.5
	longMatchWeight      = 1.0
	singlesMatchWeight   = 0.5
)

// ExpectedScore returns the probability that a player (or team) rated a
// beats one rated b. ExpectedScore(a, b) + ExpectedScore(b, a) == 1.
func ExpectedScore(a, b float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (b-a)/expectedScoreDivisor))
}

// KFactor is the maximum per-match swing, cooled down by experience.
func KFactor(gamesPlayed int) int {
	if gamesPlayed < 10 {
		return 40
	}
	if gamesPlayed < 30 {
		return 30
	}
	return 20
}

// MarginMultiplier scales the delta by how lopsided the score was.
// A two-set margin counts the same as a one-set margin.
func MarginMultiplier(setsA, setsB int) float64 {
	diff := setsA - setsB
	if diff < 0 {
		diff = -diff
	}
	var bucket float64
	switch {
	case diff == 0:
		bucket = 0
	case diff <= 2:
		bucket = 1
	default:
		bucket = 2
	}
	return 1 + math.Min(maxMarginBonus, bucket*0.1)
}

// MatchWeight scales the delta by match format: tournament and long
// matches count in full, short casual games and singles count less.
func MatchWeight(m domain.Match) float64 {
	w := baseMatchWeight(m)
	if m.IsSingles() {
		w *= singlesMatchWeight
	}
	return w
}

func baseMatchWeight(m domain.Match) float64 {
	if m.IsTournament() {
		return longMatchWeight
	}
	switch m.ScoreType {
	case domain.ScoreSets:
		maxSets := m.SetsA
		if m.SetsB > maxSets {
			maxSets = m.SetsB
		}
		if maxSets <= shortSetMax {
			return shortMatchWeight
		}
		if maxSets >= longSetMin {
			return longMatchWeight
		}
		return midMatchWeight
	case domain.ScorePoints:
		if m.ScoreTarget <= shortPointsMax {
			return shortMatchWeight
		}
		if m.ScoreTarget <= midPointsMax {
			return midMatchWeight
		}
		return longMatchWeight
	}
	return midMatchWeight
}

// PlayerWeight adjusts an individual's share of the team result: a player
// rated below their team average is carried and gets reduced credit.
func PlayerWeight(playerRating, teamAverage float64) float64 {
	adjustment := 1 + (teamAverage-playerRating)/playerWeightDivisor
	return math.Min(maxPlayerWeight, math.Max(minPlayerWeight, adjustment))
}

// PlayerDelta computes one player's signed rating change for a match.
// The weight applies as-is on a win and reciprocally on a loss, so a
// carried player is shielded from losses as much as they are short-changed
// on wins.
func PlayerDelta(gamesPlayed int, playerRating, teamAverage, expected float64, won bool, m domain.Match) int {
	weight := PlayerWeight(playerRating, teamAverage)
	actual := 0.0
	if won {
		actual = 1.0
	} else {
		weight = 1 / weight
	}
	raw := float64(KFactor(gamesPlayed)) * MarginMultiplier(m.SetsA, m.SetsB) * MatchWeight(m) * weight * (actual - expected)
	return roundHalfUp(raw)
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
