// Package rotation plans balanced doubles sessions for a fixed player
// pool: each round picks the two teams (and resting players) that score
// best on fairness while spreading teammates, opponents and court time.
package rotation

import (
	"bytes"
	"math"

	"github.com/padelclub/padelengine/internal/rating"

	"github.com/google/uuid"
)

const (
	fairnessWeight = 2
	teammateWeight = 15
	opponentWeight = 6
	gamesWeight    = 4
	restWeight     = 2
)

type Round struct {
	Round          int
	TeamA          []uuid.UUID
	TeamB          []uuid.UUID
	Rest           []uuid.UUID
	Fairness       int
	WinProbability float64
}

type Schedule struct {
	Rounds          []Round
	AverageFairness int
	TargetGames     float64
}

// RoundsFor returns the number of rounds planned for a pool size. The
// small sizes use hand-tuned counts that give everyone equal court time.
func RoundsFor(poolSize int) int {
	switch poolSize {
	case 5:
		return 5
	case 6:
		return 3
	case 7:
		return 7
	case 8:
		return 4
	}
	return (poolSize + 1) / 2
}

// FairnessScore maps a win probability to 0-100, where a 50/50 matchup
// scores 100 and certainty either way scores 0.
func FairnessScore(winProbability float64) int {
	score := int(math.Round((1 - math.Abs(0.5-winProbability)*2) * 100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// TeamAverage is the mean rating of a team, defaulting unknown players to
// the baseline.
func TeamAverage(team []uuid.UUID, ratings map[uuid.UUID]int) float64 {
	if len(team) == 0 {
		return rating.Baseline
	}
	sum := 0
	for _, id := range team {
		if r, ok := ratings[id]; ok {
			sum += r
		} else {
			sum += rating.Baseline
		}
	}
	return float64(sum) / float64(len(team))
}

type pairKey struct {
	low  uuid.UUID
	high uuid.UUID
}

func keyFor(a, b uuid.UUID) pairKey {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return pairKey{low: a, high: b}
}

type scheduler struct {
	pool        []uuid.UUID
	ratings     map[uuid.UUID]int
	targetGames float64
	games       map[uuid.UUID]int
	teammates   map[pairKey]int
	opponents   map[pairKey]int
}

// BuildSchedule plans a full session for the pool. Pools smaller than four
// players yield an empty schedule; a pool that cannot fill the planned
// round count under the scoring rule simply gets fewer rounds.
func BuildSchedule(pool []uuid.UUID, ratings map[uuid.UUID]int) Schedule {
	roundCount := RoundsFor(len(pool))
	s := &scheduler{
		pool:      append([]uuid.UUID(nil), pool...),
		ratings:   ratings,
		games:     make(map[uuid.UUID]int, len(pool)),
		teammates: make(map[pairKey]int),
		opponents: make(map[pairKey]int),
	}
	if len(pool) > 0 {
		s.targetGames = float64(4*roundCount) / float64(len(pool))
	}

	schedule := Schedule{TargetGames: s.targetGames}
	fairnessSum := 0
	for round := 1; round <= roundCount; round++ {
		candidate, ok := s.pickCandidate(true)
		if !ok {
			// Nobody under target: relax the cap instead of failing.
			candidate, ok = s.pickCandidate(false)
		}
		if !ok {
			break
		}
		candidate.Round = round
		schedule.Rounds = append(schedule.Rounds, candidate)
		fairnessSum += candidate.Fairness
		s.commit(candidate)
	}
	if len(schedule.Rounds) > 0 {
		schedule.AverageFairness = int(math.Round(float64(fairnessSum) / float64(len(schedule.Rounds))))
	}
	return schedule
}

func (s *scheduler) pickCandidate(strictGames bool) (Round, bool) {
	var best Round
	bestScore := math.Inf(-1)
	found := false

	forEachFourSubset(s.pool, func(combo [4]uuid.UUID, rest []uuid.UUID) {
		for _, split := range teamSplits(combo) {
			if strictGames && s.anyAtTarget(split) {
				continue
			}
			avgA := TeamAverage(split.teamA[:], s.ratings)
			avgB := TeamAverage(split.teamB[:], s.ratings)
			winProbability := rating.ExpectedScore(avgA, avgB)
			fairness := FairnessScore(winProbability)

			score := float64(fairness*fairnessWeight) -
				float64(s.teammatePenalty(split)*teammateWeight) -
				float64(s.opponentPenalty(split)*opponentWeight) -
				float64(s.gamesPenalty(split)*gamesWeight) -
				s.restPenalty(rest)*restWeight

			if score > bestScore {
				bestScore = score
				best = Round{
					TeamA:          append([]uuid.UUID(nil), split.teamA[:]...),
					TeamB:          append([]uuid.UUID(nil), split.teamB[:]...),
					Rest:           append([]uuid.UUID(nil), rest...),
					Fairness:       fairness,
					WinProbability: winProbability,
				}
				found = true
			}
		}
	})
	return best, found
}

func (s *scheduler) commit(round Round) {
	for _, id := range round.TeamA {
		s.games[id]++
	}
	for _, id := range round.TeamB {
		s.games[id]++
	}
	s.teammates[keyFor(round.TeamA[0], round.TeamA[1])]++
	s.teammates[keyFor(round.TeamB[0], round.TeamB[1])]++
	for _, a := range round.TeamA {
		for _, b := range round.TeamB {
			s.opponents[keyFor(a, b)]++
		}
	}
}

type split struct {
	teamA [2]uuid.UUID
	teamB [2]uuid.UUID
}

func teamSplits(combo [4]uuid.UUID) [3]split {
	return [3]split{
		{teamA: [2]uuid.UUID{combo[0], combo[1]}, teamB: [2]uuid.UUID{combo[2], combo[3]}},
		{teamA: [2]uuid.UUID{combo[0], combo[2]}, teamB: [2]uuid.UUID{combo[1], combo[3]}},
		{teamA: [2]uuid.UUID{combo[0], combo[3]}, teamB: [2]uuid.UUID{combo[1], combo[2]}},
	}
}

func forEachFourSubset(pool []uuid.UUID, fn func(combo [4]uuid.UUID, rest []uuid.UUID)) {
	n := len(pool)
	for i := 0; i < n-3; i++ {
		for j := i + 1; j < n-2; j++ {
			for k := j + 1; k < n-1; k++ {
				for l := k + 1; l < n; l++ {
					combo := [4]uuid.UUID{pool[i], pool[j], pool[k], pool[l]}
					rest := make([]uuid.UUID, 0, n-4)
					for m, id := range pool {
						if m != i && m != j && m != k && m != l {
							rest = append(rest, id)
						}
					}
					fn(combo, rest)
				}
			}
		}
	}
}

func (s *scheduler) anyAtTarget(sp split) bool {
	for _, id := range selected(sp) {
		if float64(s.games[id]) >= s.targetGames {
			return true
		}
	}
	return false
}

func (s *scheduler) teammatePenalty(sp split) int {
	return s.teammates[keyFor(sp.teamA[0], sp.teamA[1])] +
		s.teammates[keyFor(sp.teamB[0], sp.teamB[1])]
}

func (s *scheduler) opponentPenalty(sp split) int {
	penalty := 0
	for _, a := range sp.teamA {
		for _, b := range sp.teamB {
			penalty += s.opponents[keyFor(a, b)]
		}
	}
	return penalty
}

func (s *scheduler) gamesPenalty(sp split) int {
	penalty := 0
	for _, id := range selected(sp) {
		penalty += s.games[id]
	}
	return penalty
}

func (s *scheduler) restPenalty(rest []uuid.UUID) float64 {
	penalty := 0.0
	for _, id := range rest {
		if deficit := s.targetGames - float64(s.games[id]); deficit > 0 {
			penalty += deficit
		}
	}
	return penalty
}

func selected(sp split) [4]uuid.UUID {
	return [4]uuid.UUID{sp.teamA[0], sp.teamA[1], sp.teamB[0], sp.teamB[1]}
}
