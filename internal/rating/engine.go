package rating

import (
	"bytes"
	"sort"

	"github.com/padelclub/padelengine/internal/domain"

	"github.com/google/uuid"
)

type Result string

const (
	Win  Result = "W"
	Loss Result = "L"
)

type HistoryEntry struct {
	MatchID uuid.UUID
	Delta   int
	Result  Result
}

type PartnerRecord struct {
	Games int
	Wins  int
}

type PlayerState struct {
	ID       uuid.UUID
	Rating   int
	Games    int
	Wins     int
	Losses   int
	History  []HistoryEntry
	Partners map[uuid.UUID]PartnerRecord
}

func newPlayerState(id uuid.UUID) *PlayerState {
	return &PlayerState{
		ID:       id,
		Rating:   Baseline,
		Partners: make(map[uuid.UUID]PartnerRecord),
	}
}

func (s *PlayerState) clone() *PlayerState {
	c := *s
	c.History = append([]HistoryEntry(nil), s.History...)
	c.Partners = make(map[uuid.UUID]PartnerRecord, len(s.Partners))
	for id, rec := range s.Partners {
		c.Partners[id] = rec
	}
	return &c
}

// RecentResults returns the player's W/L sequence in chronological order.
func (s *PlayerState) RecentResults() []Result {
	results := make([]Result, 0, len(s.History))
	for _, entry := range s.History {
		results = append(results, entry.Result)
	}
	return results
}

type BestPartner struct {
	PartnerID uuid.UUID
	Games     int
	Wins      int
	WinRate   float64
}

// BestPartner picks the teammate with the best shared record, requiring at
// least two games together. Win rate ranks first, then games, then wins.
func (s *PlayerState) BestPartner() (BestPartner, bool) {
	candidates := make([]BestPartner, 0, len(s.Partners))
	for id, rec := range s.Partners {
		if rec.Games < 2 {
			continue
		}
		candidates = append(candidates, BestPartner{
			PartnerID: id,
			Games:     rec.Games,
			Wins:      rec.Wins,
			WinRate:   float64(rec.Wins) / float64(rec.Games),
		})
	}
	if len(candidates) == 0 {
		return BestPartner{}, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].WinRate != candidates[j].WinRate {
			return candidates[i].WinRate > candidates[j].WinRate
		}
		if candidates[i].Games != candidates[j].Games {
			return candidates[i].Games > candidates[j].Games
		}
		if candidates[i].Wins != candidates[j].Wins {
			return candidates[i].Wins > candidates[j].Wins
		}
		return lessID(candidates[i].PartnerID, candidates[j].PartnerID)
	})
	return candidates[0], true
}

// Replay runs every match through the rating model in chronological order
// and returns the resulting per-player states. A nil prior starts every
// player at the baseline; passing the states returned by an earlier Replay
// continues from that point, so Replay(all) == Replay(rest, Replay(head)).
// The prior map is not mutated.
func Replay(matches []domain.Match, prior map[uuid.UUID]*PlayerState) map[uuid.UUID]*PlayerState {
	states := make(map[uuid.UUID]*PlayerState, len(prior))
	for id, st := range prior {
		states[id] = st.clone()
	}
	for _, m := range SortChronologically(matches) {
		applyMatch(states, m)
	}
	return states
}

// SortChronologically orders matches by played-at time, ties broken by id
// so the replay is deterministic. The input slice is not modified.
func SortChronologically(matches []domain.Match) []domain.Match {
	ordered := append([]domain.Match(nil), matches...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].PlayedAt.Equal(ordered[j].PlayedAt) {
			return ordered[i].PlayedAt.Before(ordered[j].PlayedAt)
		}
		return lessID(ordered[i].ID, ordered[j].ID)
	})
	return ordered
}

func lessID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

func applyMatch(states map[uuid.UUID]*PlayerState, m domain.Match) {
	teamA := m.TeamA.Active()
	teamB := m.TeamB.Active()
	if len(teamA) == 0 || len(teamB) == 0 {
		return
	}
	for _, id := range teamA {
		ensurePlayer(states, id)
	}
	for _, id := range teamB {
		ensurePlayer(states, id)
	}

	// Both teams read the same pre-match snapshot: averages and every
	// player's own rating are captured before any delta is applied.
	avgA := teamAverage(states, teamA)
	avgB := teamAverage(states, teamB)
	expectedA := ExpectedScore(avgA, avgB)
	teamAWon := m.TeamAWon()

	type update struct {
		state *PlayerState
		delta int
		won   bool
	}
	updates := make([]update, 0, len(teamA)+len(teamB))
	for _, id := range teamA {
		st := states[id]
		delta := PlayerDelta(st.Games, float64(st.Rating), avgA, expectedA, teamAWon, m)
		updates = append(updates, update{state: st, delta: delta, won: teamAWon})
	}
	for _, id := range teamB {
		st := states[id]
		delta := PlayerDelta(st.Games, float64(st.Rating), avgB, 1-expectedA, !teamAWon, m)
		updates = append(updates, update{state: st, delta: delta, won: !teamAWon})
	}
	for _, u := range updates {
		u.state.Rating += u.delta
		u.state.Games++
		result := Loss
		if u.won {
			u.state.Wins++
			result = Win
		} else {
			u.state.Losses++
		}
		u.state.History = append(u.state.History, HistoryEntry{
			MatchID: m.ID,
			Delta:   u.delta,
			Result:  result,
		})
	}

	recordPartners(states, teamA, teamAWon)
	recordPartners(states, teamB, !teamAWon)
}

func ensurePlayer(states map[uuid.UUID]*PlayerState, id uuid.UUID) {
	if _, ok := states[id]; !ok {
		states[id] = newPlayerState(id)
	}
}

func teamAverage(states map[uuid.UUID]*PlayerState, team []uuid.UUID) float64 {
	sum := 0
	for _, id := range team {
		sum += states[id].Rating
	}
	return float64(sum) / float64(len(team))
}

func recordPartners(states map[uuid.UUID]*PlayerState, team []uuid.UUID, won bool) {
	for _, id := range team {
		for _, partnerID := range team {
			if id == partnerID {
				continue
			}
			rec := states[id].Partners[partnerID]
			rec.Games++
			if won {
				rec.Wins++
			}
			states[id].Partners[partnerID] = rec
		}
	}
}
