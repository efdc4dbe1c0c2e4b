package service

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/padelclub/padelengine/internal/badge"
	"github.com/padelclub/padelengine/internal/cache/mem"
	"github.com/padelclub/padelengine/internal/domain"
	"github.com/padelclub/padelengine/internal/normalize"
	"github.com/padelclub/padelengine/internal/rating"
	"github.com/padelclub/padelengine/internal/rotation"
	"github.com/padelclub/padelengine/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyName   = errors.New("player name is empty")
	ErrEmptyTeam   = errors.New("match team has no player slots")
	ErrDrawnScore  = errors.New("match score is a draw")
	ErrNoScoreType = errors.New("unknown score type")
	ErrUnevenTeams = errors.New("teams have different sizes")
)

type EngineService struct {
	log         *logrus.Entry
	players     storage.PlayerStorage
	matches     storage.MatchStorage
	tournaments storage.TournamentStorage
	cache       *mem.Cache
}

func New(
	l *logrus.Logger,
	players storage.PlayerStorage,
	matches storage.MatchStorage,
	tournaments storage.TournamentStorage,
	cache *mem.Cache,
) *EngineService {
	return &EngineService{
		log:         l.WithField("module", "service"),
		players:     players,
		matches:     matches,
		tournaments: tournaments,
		cache:       cache,
	}
}

func (s *EngineService) ListPlayers() ([]domain.Player, error) {
	players, err := s.players.ListPlayers()
	if err != nil {
		return nil, err
	}
	s.cache.Update(players)
	return players, nil
}

func (s *EngineService) CreatePlayer(name string) (domain.Player, error) {
	if normalize.Name(name) == "" {
		return domain.Player{}, ErrEmptyName
	}
	player := domain.Player{
		ID:           uuid.New(),
		Name:         name,
		RegisteredAt: time.Now(),
	}
	created, err := s.players.Add(player)
	if err != nil {
		return domain.Player{}, err
	}
	s.cache.Invalidate()
	s.log.WithField("player", created.ID).Info("player created")
	return created, nil
}

func (s *EngineService) Get(id uuid.UUID) (domain.Player, error) {
	return s.players.Get(id)
}

func (s *EngineService) GetByName(name string) (domain.Player, error) {
	if player, ok := s.cache.GetPlayerByName(name); ok {
		return player, nil
	}
	players, err := s.ListPlayers()
	if err != nil {
		return domain.Player{}, err
	}
	folded := normalize.Name(name)
	for _, player := range players {
		if normalize.Name(player.Name) == folded {
			return player, nil
		}
	}
	return domain.Player{}, storage.ErrPlayerNotFound
}

// PlayerRating is one leaderboard row.
type PlayerRating struct {
	Player     domain.Player
	Rank       int
	Rating     int
	Games      int
	Wins       int
	Losses     int
	RecentForm []rating.Result
}

func (s *EngineService) GetRatings() ([]PlayerRating, error) {
	matches, err := s.matches.ListMatches()
	if err != nil {
		return nil, err
	}
	players, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}
	return s.ratingsFor(matches, players), nil
}

// GetRatingsAsOf rebuilds the leaderboard from the matches played at or
// before the cutoff. Later matches are ignored entirely.
func (s *EngineService) GetRatingsAsOf(cutoff time.Time) ([]PlayerRating, error) {
	matches, err := s.matches.ListMatches()
	if err != nil {
		return nil, err
	}
	players, err := s.ListPlayers()
	if err != nil {
		return nil, err
	}
	return s.ratingsFor(filterUntil(matches, cutoff), players), nil
}

func (s *EngineService) ratingsFor(matches []domain.Match, players []domain.Player) []PlayerRating {
	states := rating.Replay(matches, nil)
	ratings := make([]PlayerRating, 0, len(players))
	for _, player := range players {
		row := PlayerRating{Player: player, Rating: rating.Baseline}
		if st, ok := states[player.ID]; ok {
			row.Rating = st.Rating
			row.Games = st.Games
			row.Wins = st.Wins
			row.Losses = st.Losses
			row.RecentForm = tail(st.RecentResults(), 10)
		}
		ratings = append(ratings, row)
	}
	sort.SliceStable(ratings, func(i, j int) bool {
		if ratings[i].Rating != ratings[j].Rating {
			return ratings[i].Rating > ratings[j].Rating
		}
		return ratings[i].Player.Name < ratings[j].Player.Name
	})
	for i := range ratings {
		ratings[i].Rank = i + 1
	}
	return ratings
}

// PlayerCard is the detail view for one player: current standing plus
// the teammate they win the most with.
type PlayerCard struct {
	Player      domain.Player
	Rating      int
	Games       int
	Wins        int
	Losses      int
	RecentForm  []rating.Result
	BestPartner *rating.BestPartner
}

func (s *EngineService) GetPlayerCard(id uuid.UUID) (PlayerCard, error) {
	player, err := s.players.Get(id)
	if err != nil {
		return PlayerCard{}, err
	}
	matches, err := s.matches.ListMatches()
	if err != nil {
		return PlayerCard{}, err
	}
	states := rating.Replay(matches, nil)
	card := PlayerCard{Player: player, Rating: rating.Baseline}
	if st, ok := states[id]; ok {
		card.Rating = st.Rating
		card.Games = st.Games
		card.Wins = st.Wins
		card.Losses = st.Losses
		card.RecentForm = tail(st.RecentResults(), 10)
		if best, ok := st.BestPartner(); ok {
			card.BestPartner = &best
		}
	}
	return card, nil
}

// RatingChange reports how a player's rating moved inside a time window.
type RatingChange struct {
	PlayerID uuid.UUID
	Before   int
	After    int
	Games    int
}

// RatingChanges replays the history up to the start of the window, then
// continues through the window and diffs the two snapshots. Only players
// who appeared in a window match are reported.
func (s *EngineService) RatingChanges(from, to time.Time) ([]RatingChange, error) {
	matches, err := s.matches.ListMatches()
	if err != nil {
		return nil, err
	}
	var head, window []domain.Match
	for _, m := range matches {
		switch {
		case !m.PlayedAt.After(from):
			head = append(head, m)
		case !m.PlayedAt.After(to):
			window = append(window, m)
		}
	}
	before := rating.Replay(head, nil)
	after := rating.Replay(window, before)

	changes := make([]RatingChange, 0, len(after))
	for id, st := range after {
		prevRating := rating.Baseline
		prevGames := 0
		if prev, ok := before[id]; ok {
			prevRating = prev.Rating
			prevGames = prev.Games
		}
		if st.Games == prevGames {
			continue
		}
		changes = append(changes, RatingChange{
			PlayerID: id,
			Before:   prevRating,
			After:    st.Rating,
			Games:    st.Games - prevGames,
		})
	}
	sort.Slice(changes, func(i, j int) bool {
		di := changes[i].After - changes[i].Before
		dj := changes[j].After - changes[j].Before
		if di != dj {
			return di > dj
		}
		return changes[i].PlayerID.String() < changes[j].PlayerID.String()
	})
	return changes, nil
}

// MatchSummary is a played match plus the rating delta every rated
// participant took away from it.
type MatchSummary struct {
	Match  domain.Match
	Deltas map[uuid.UUID]int
}

// GetMatches returns all matches newest first, each annotated with the
// per-player rating changes it produced at the time it was played.
func (s *EngineService) GetMatches() ([]MatchSummary, error) {
	matches, err := s.matches.ListMatches()
	if err != nil {
		return nil, err
	}
	states := rating.Replay(matches, nil)
	deltas := make(map[uuid.UUID]map[uuid.UUID]int)
	for id, st := range states {
		for _, entry := range st.History {
			if deltas[entry.MatchID] == nil {
				deltas[entry.MatchID] = make(map[uuid.UUID]int)
			}
			deltas[entry.MatchID][id] = entry.Delta
		}
	}
	ordered := rating.SortChronologically(matches)
	summaries := make([]MatchSummary, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		summaries = append(summaries, MatchSummary{
			Match:  ordered[i],
			Deltas: deltas[ordered[i].ID],
		})
	}
	return summaries, nil
}

func (s *EngineService) CreateMatch(match domain.Match) (domain.Match, error) {
	if err := validateMatch(match); err != nil {
		return domain.Match{}, err
	}
	created, err := s.matches.Create(match)
	if err != nil {
		return domain.Match{}, err
	}
	s.log.WithField("match", created.ID).Info("match recorded")
	return created, nil
}

func validateMatch(match domain.Match) error {
	if len(match.TeamA) == 0 || len(match.TeamB) == 0 {
		return ErrEmptyTeam
	}
	if len(match.TeamA) != len(match.TeamB) {
		return ErrUnevenTeams
	}
	if match.SetsA == match.SetsB {
		return ErrDrawnScore
	}
	switch match.ScoreType {
	case domain.ScoreSets, domain.ScorePoints:
	default:
		return ErrNoScoreType
	}
	return nil
}

func (s *EngineService) AddTournamentResult(result domain.TournamentResult) (domain.TournamentResult, error) {
	return s.tournaments.AddTournamentResult(result)
}

// GetPlayerBadges assembles the full badge board for one player.
func (s *EngineService) GetPlayerBadges(id uuid.UUID) (badge.Summary, error) {
	if _, err := s.players.Get(id); err != nil {
		return badge.Summary{}, err
	}
	matches, err := s.matches.ListMatches()
	if err != nil {
		return badge.Summary{}, err
	}
	players, err := s.ListPlayers()
	if err != nil {
		return badge.Summary{}, err
	}
	results, err := s.tournaments.ListTournamentResults()
	if err != nil {
		return badge.Summary{}, err
	}
	stats := badge.BuildStats(matches, players, results, time.Now())
	return badge.Summarize(badge.BuildBadges(id, stats)), nil
}

// PlanRotation builds a doubles schedule for the given pool using the
// current ratings. Players without match history play at the baseline.
func (s *EngineService) PlanRotation(pool []uuid.UUID) (rotation.Schedule, error) {
	matches, err := s.matches.ListMatches()
	if err != nil {
		return rotation.Schedule{}, err
	}
	states := rating.Replay(matches, nil)
	ratings := make(map[uuid.UUID]int, len(states))
	for id, st := range states {
		ratings[id] = st.Rating
	}
	return rotation.BuildSchedule(pool, ratings), nil
}

const exportVersion = 1

type export struct {
	Version           int
	Players           []domain.Player
	Matches           []domain.Match
	TournamentResults []domain.TournamentResult
}

func (s *EngineService) Export() ([]byte, error) {
	players, err := s.players.ListPlayers()
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.ListMatches()
	if err != nil {
		return nil, err
	}
	results, err := s.tournaments.ListTournamentResults()
	if err != nil {
		return nil, err
	}
	return json.Marshal(export{
		Version:           exportVersion,
		Players:           players,
		Matches:           matches,
		TournamentResults: results,
	})
}

func (s *EngineService) Import(data []byte) error {
	var importData export
	if err := json.Unmarshal(data, &importData); err != nil {
		return err
	}
	if importData.Version != exportVersion {
		return errors.New("invalid export file version")
	}
	if err := s.players.ImportPlayers(importData.Players); err != nil {
		return err
	}
	if err := s.matches.ImportMatches(importData.Matches); err != nil {
		return err
	}
	for _, result := range importData.TournamentResults {
		if _, err := s.tournaments.AddTournamentResult(result); err != nil {
			return err
		}
	}
	s.cache.Invalidate()
	return nil
}

func filterUntil(matches []domain.Match, cutoff time.Time) []domain.Match {
	filtered := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		if m.PlayedAt.After(cutoff) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered
}

func tail(results []rating.Result, n int) []rating.Result {
	if len(results) <= n {
		return results
	}
	return results[len(results)-n:]
}
