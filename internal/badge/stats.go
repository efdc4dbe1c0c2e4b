package badge

import (
	"math"
	"time"

	"github.com/padelclub/padelengine/internal/domain"
	"github.com/padelclub/padelengine/internal/rating"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

// PlayerStats is the flat counter aggregate all badges derive from. It is
// rebuilt from scratch on every call, never updated incrementally.
type PlayerStats struct {
	MatchesPlayed     int
	Wins              int
	Losses            int
	CurrentWinStreak  int
	BestWinStreak     int
	CurrentLossStreak int
	BestLossStreak    int
	FirstUpsetAt      time.Time
	BiggestUpsetGap   int
	CurrentRating     int
	MatchesLast30Days int
	MarathonMatches   int
	QuickWins         int
	CloseWins         int
	CleanSheets       int
	NightOwlMatches   int
	EarlyBirdMatches  int
	UniquePartners    int
	UniqueOpponents   int
	GuestPartners     int
	TournamentsPlayed int
	TournamentWins    int
	TournamentPodiums int
	AmericanoWins     int
	MexicanoWins      int
	TotalSetsWon      int
	TotalSetsLost     int
	BiggestRatingLoss int
}

func (s *PlayerStats) WinRatePercent() int {
	if s.MatchesPlayed == 0 {
		return 0
	}
	return int(math.Round(float64(s.Wins) / float64(s.MatchesPlayed) * 100))
}

func (s *PlayerStats) RatingLift() int {
	lift := s.CurrentRating - rating.Baseline
	if lift < 0 {
		return 0
	}
	return lift
}

type ratingEntry struct {
	rating int
	games  int
}

type builder struct {
	stats     map[uuid.UUID]*PlayerStats
	ratings   map[uuid.UUID]*ratingEntry
	partners  map[uuid.UUID]mapset.Set[uuid.UUID]
	opponents map[uuid.UUID]mapset.Set[uuid.UUID]
}

func (b *builder) ensure(id uuid.UUID) {
	if _, ok := b.stats[id]; ok {
		return
	}
	b.stats[id] = &PlayerStats{CurrentRating: rating.Baseline}
	b.ratings[id] = &ratingEntry{rating: rating.Baseline}
	b.partners[id] = mapset.NewThreadUnsafeSet[uuid.UUID]()
	b.opponents[id] = mapset.NewThreadUnsafeSet[uuid.UUID]()
}

// BuildStats replays the full match history, mirroring the rating engine's
// replay so every per-match pre-match rating is available for upset and
// rating-loss tracking, and folds tournament placements in afterwards.
// The caller supplies now so the 30-day activity window stays reproducible.
func BuildStats(matches []domain.Match, roster []domain.Player, results []domain.TournamentResult, now time.Time) map[uuid.UUID]*PlayerStats {
	b := &builder{
		stats:     make(map[uuid.UUID]*PlayerStats),
		ratings:   make(map[uuid.UUID]*ratingEntry),
		partners:  make(map[uuid.UUID]mapset.Set[uuid.UUID]),
		opponents: make(map[uuid.UUID]mapset.Set[uuid.UUID]),
	}
	for _, player := range roster {
		b.ensure(player.ID)
	}

	activityCutoff := now.AddDate(0, 0, -30)
	for _, m := range rating.SortChronologically(matches) {
		b.applyMatch(m, activityCutoff)
	}

	b.finalize(results)
	return b.stats
}

func (b *builder) applyMatch(m domain.Match, activityCutoff time.Time) {
	teamA := m.TeamA.Active()
	teamB := m.TeamB.Active()
	if len(teamA) == 0 || len(teamB) == 0 {
		return
	}
	for _, id := range teamA {
		b.ensure(id)
	}
	for _, id := range teamB {
		b.ensure(id)
	}

	avgA := b.teamAverage(teamA)
	avgB := b.teamAverage(teamB)
	expectedA := rating.ExpectedScore(avgA, avgB)
	teamAWon := m.TeamAWon()

	for _, id := range teamA {
		b.applyPlayer(id, m, sideStats{
			teammates:   teamA,
			opponents:   teamB,
			ownAverage:  avgA,
			oppAverage:  avgB,
			expected:    expectedA,
			won:         teamAWon,
			setsFor:     m.SetsA,
			setsAgainst: m.SetsB,
			guests:      m.TeamA.GuestCount(),
		}, activityCutoff)
	}
	for _, id := range teamB {
		b.applyPlayer(id, m, sideStats{
			teammates:   teamB,
			opponents:   teamA,
			ownAverage:  avgB,
			oppAverage:  avgA,
			expected:    1 - expectedA,
			won:         !teamAWon,
			setsFor:     m.SetsB,
			setsAgainst: m.SetsA,
			guests:      m.TeamB.GuestCount(),
		}, activityCutoff)
	}
}

type sideStats struct {
	teammates   []uuid.UUID
	opponents   []uuid.UUID
	ownAverage  float64
	oppAverage  float64
	expected    float64
	won         bool
	setsFor     int
	setsAgainst int
	guests      int
}

func (b *builder) applyPlayer(id uuid.UUID, m domain.Match, side sideStats, activityCutoff time.Time) {
	stats := b.stats[id]
	entry := b.ratings[id]
	preRating := entry.rating

	for _, teammate := range side.teammates {
		if teammate != id {
			b.partners[id].Add(teammate)
		}
	}
	for _, opponent := range side.opponents {
		b.opponents[id].Add(opponent)
	}

	margin := side.setsFor - side.setsAgainst
	if margin < 0 {
		margin = -margin
	}
	maxSets := side.setsFor
	if side.setsAgainst > maxSets {
		maxSets = side.setsAgainst
	}
	if m.ScoreType == domain.ScoreSets {
		if maxSets >= 6 {
			stats.MarathonMatches++
		}
		if side.won && maxSets <= 3 {
			stats.QuickWins++
		}
		if side.won && margin == 1 {
			stats.CloseWins++
		}
		if side.won && side.setsAgainst == 0 {
			stats.CleanSheets++
		}
	}

	if !m.PlayedAt.IsZero() {
		if !m.PlayedAt.Before(activityCutoff) {
			stats.MatchesLast30Days++
		}
		hour := m.PlayedAt.Hour()
		if hour >= 21 {
			stats.NightOwlMatches++
		}
		if hour < 9 {
			stats.EarlyBirdMatches++
		}
	}

	stats.MatchesPlayed++
	stats.TotalSetsWon += side.setsFor
	stats.TotalSetsLost += side.setsAgainst
	stats.GuestPartners += side.guests

	if side.won {
		stats.Wins++
		stats.CurrentWinStreak++
		if stats.CurrentWinStreak > stats.BestWinStreak {
			stats.BestWinStreak = stats.CurrentWinStreak
		}
		stats.CurrentLossStreak = 0
		if side.oppAverage > float64(preRating) {
			if stats.FirstUpsetAt.IsZero() {
				stats.FirstUpsetAt = m.PlayedAt
			}
			gap := int(math.Round(side.oppAverage - float64(preRating)))
			if gap > stats.BiggestUpsetGap {
				stats.BiggestUpsetGap = gap
			}
		}
	} else {
		stats.Losses++
		stats.CurrentWinStreak = 0
		stats.CurrentLossStreak++
		if stats.CurrentLossStreak > stats.BestLossStreak {
			stats.BestLossStreak = stats.CurrentLossStreak
		}
	}

	delta := rating.PlayerDelta(entry.games, float64(preRating), side.ownAverage, side.expected, side.won, m)
	if delta < 0 && -delta > stats.BiggestRatingLoss {
		stats.BiggestRatingLoss = -delta
	}
	entry.rating += delta
	entry.games++
}

func (b *builder) teamAverage(team []uuid.UUID) float64 {
	sum := 0
	for _, id := range team {
		sum += b.ratings[id].rating
	}
	return float64(sum) / float64(len(team))
}

func (b *builder) finalize(results []domain.TournamentResult) {
	byPlayer := make(map[uuid.UUID][]domain.TournamentResult)
	for _, result := range results {
		byPlayer[result.PlayerID] = append(byPlayer[result.PlayerID], result)
	}
	for id, stats := range b.stats {
		stats.CurrentRating = b.ratings[id].rating
		stats.UniquePartners = b.partners[id].Cardinality()
		stats.UniqueOpponents = b.opponents[id].Cardinality()

		tournaments := mapset.NewThreadUnsafeSet[uuid.UUID]()
		for _, result := range byPlayer[id] {
			tournaments.Add(result.TournamentID)
			if result.Rank == 1 {
				stats.TournamentWins++
				switch result.TournamentType {
				case domain.TournamentAmericano:
					stats.AmericanoWins++
				case domain.TournamentMexicano:
					stats.MexicanoWins++
				}
			}
			if result.Rank <= 3 {
				stats.TournamentPodiums++
			}
		}
		stats.TournamentsPlayed = tournaments.Cardinality()
	}
}
