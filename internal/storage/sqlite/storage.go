package sqlite

import (
	"database/sql"
	"errors"

	"github.com/padelclub/padelengine/gen/model"
	"github.com/padelclub/padelengine/gen/table"
	"github.com/padelclub/padelengine/internal/domain"
	"github.com/padelclub/padelengine/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

type Storage struct {
	db *sql.DB
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)
var _ storage.TournamentStorage = (*Storage)(nil)

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) ListPlayers() ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		ORDER_BY(table.Players.CreatedAt.ASC()).
		Query(s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) Get(id uuid.UUID) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(sqlite.String(id.String()))).
		Query(s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, storage.ErrPlayerNotFound
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player)
}

func (s *Storage) Add(player domain.Player) (domain.Player, error) {
	row := convertPlayerFromDomain(player)
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(row).
		Exec(s.db)
	if err != nil {
		return domain.Player{}, err
	}
	return player, nil
}

func (s *Storage) ImportPlayers(players []domain.Player) error {
	for _, player := range players {
		if _, err := s.Add(player); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) ListMatches() ([]domain.Match, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.PlayedAt.ASC()).
		Query(s.db, &matches)
	if err != nil {
		return nil, err
	}
	return convertMatchesToDomain(matches)
}

func (s *Storage) Create(match domain.Match) (domain.Match, error) {
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	row := convertMatchFromDomain(match)
	_, err := table.Matches.
		INSERT(table.Matches.AllColumns).
		MODEL(row).
		Exec(s.db)
	if err != nil {
		return domain.Match{}, err
	}
	return match, nil
}

func (s *Storage) ImportMatches(matches []domain.Match) error {
	for _, match := range matches {
		if _, err := s.Create(match); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) ListTournamentResults() ([]domain.TournamentResult, error) {
	var results []model.TournamentResults
	err := table.TournamentResults.
		SELECT(table.TournamentResults.AllColumns).
		FROM(table.TournamentResults).
		ORDER_BY(table.TournamentResults.PlayedAt.ASC()).
		Query(s.db, &results)
	if err != nil {
		return nil, err
	}
	return convertTournamentResultsToDomain(results)
}

func (s *Storage) AddTournamentResult(result domain.TournamentResult) (domain.TournamentResult, error) {
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	row := convertTournamentResultFromDomain(result)
	_, err := table.TournamentResults.
		INSERT(table.TournamentResults.AllColumns).
		MODEL(row).
		Exec(s.db)
	if err != nil {
		return domain.TournamentResult{}, err
	}
	return result, nil
}
