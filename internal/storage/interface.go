package storage

import (
	"errors"

	"github.com/padelclub/padelengine/internal/domain"

	"github.com/google/uuid"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerStorage interface {
	ListPlayers() ([]domain.Player, error)
	Get(uuid.UUID) (domain.Player, error)
	Add(domain.Player) (domain.Player, error)

	ImportPlayers([]domain.Player) error
}

type MatchStorage interface {
	ListMatches() ([]domain.Match, error)
	Create(domain.Match) (domain.Match, error)

	ImportMatches([]domain.Match) error
}

type TournamentStorage interface {
	ListTournamentResults() ([]domain.TournamentResult, error)
	AddTournamentResult(domain.TournamentResult) (domain.TournamentResult, error)
}
