package domain

import (
	"time"

	"github.com/google/uuid"
)

type ScoreType string

const (
	ScoreSets   ScoreType = "sets"
	ScorePoints ScoreType = "points"
)

// PlayerSlot is one spot on a team. A slot is either a known roster player
// or an unregistered guest; guests never receive rating updates.
type PlayerSlot struct {
	ID    uuid.UUID
	Guest bool
}

func KnownPlayer(id uuid.UUID) PlayerSlot {
	return PlayerSlot{ID: id}
}

func GuestPlayer() PlayerSlot {
	return PlayerSlot{Guest: true}
}

type Team []PlayerSlot

// Active returns the ids of the rateable players on the team.
func (t Team) Active() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t))
	for _, slot := range t {
		if slot.Guest || slot.ID == uuid.Nil {
			continue
		}
		ids = append(ids, slot.ID)
	}
	return ids
}

func (t Team) GuestCount() int {
	n := 0
	for _, slot := range t {
		if slot.Guest {
			n++
		}
	}
	return n
}

type Match struct {
	ID       uuid.UUID
	PlayedAt time.Time
	TeamA    Team
	TeamB    Team
	// SetsA and SetsB hold the team scores: sets for ScoreSets,
	// points for ScorePoints.
	SetsA            int
	SetsB            int
	ScoreType        ScoreType
	ScoreTarget      int
	TournamentID     uuid.UUID
	TournamentType   string
	TeamAServesFirst bool
}

func (m Match) TeamAWon() bool {
	return m.SetsA > m.SetsB
}

func (m Match) IsTournament() bool {
	return m.TournamentID != uuid.Nil
}

func (m Match) IsSingles() bool {
	return len(m.TeamA) == 1 && len(m.TeamB) == 1
}
