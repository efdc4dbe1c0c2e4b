package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	TournamentAmericano = "americano"
	TournamentMexicano  = "mexicano"
)

// TournamentResult is one player's final placement in a finished tournament.
type TournamentResult struct {
	ID             uuid.UUID
	PlayerID       uuid.UUID
	TournamentID   uuid.UUID
	TournamentType string
	Rank           int
	PlayedAt       time.Time
}
