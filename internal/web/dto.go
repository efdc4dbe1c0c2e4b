package web

import (
	"errors"
	"time"

	"github.com/padelclub/padelengine/internal/domain"

	"github.com/google/uuid"
)

var ErrMissingPlayer = errors.New("every slot needs a player id or the guest flag")
var ErrTeamSize = errors.New("a team fields one or two players")
var ErrBadScoreType = errors.New("score type must be sets or points")
var ErrEmptyPool = errors.New("rotation pool is empty")
var ErrDuplicatePlayer = errors.New("rotation pool repeats a player")

type matchSlot struct {
	PlayerID uuid.UUID `json:"playerId,omitempty"`
	Guest    bool      `json:"guest,omitempty"`
}

type createMatch struct {
	TeamA            []matchSlot `json:"teamA"`
	TeamB            []matchSlot `json:"teamB"`
	ScoreA           int         `json:"scoreA"`
	ScoreB           int         `json:"scoreB"`
	ScoreType        string      `json:"scoreType"`
	ScoreTarget      int         `json:"scoreTarget,omitempty"`
	PlayedAt         *time.Time  `json:"playedAt,omitempty"`
	TournamentID     uuid.UUID   `json:"tournamentId,omitempty"`
	TournamentType   string      `json:"tournamentType,omitempty"`
	TeamAServesFirst bool        `json:"teamAServesFirst,omitempty"`
}

func (c createMatch) Validate() error {
	for _, team := range [][]matchSlot{c.TeamA, c.TeamB} {
		if len(team) < 1 || len(team) > 2 {
			return ErrTeamSize
		}
		for _, slot := range team {
			if slot.Guest == (slot.PlayerID != uuid.Nil) {
				return ErrMissingPlayer
			}
		}
	}
	switch domain.ScoreType(c.ScoreType) {
	case domain.ScoreSets, domain.ScorePoints:
	default:
		return ErrBadScoreType
	}
	return nil
}

func (c createMatch) convertToDomainMatch() domain.Match {
	playedAt := time.Now()
	if c.PlayedAt != nil {
		playedAt = *c.PlayedAt
	}
	return domain.Match{
		PlayedAt:         playedAt,
		TeamA:            convertSlots(c.TeamA),
		TeamB:            convertSlots(c.TeamB),
		SetsA:            c.ScoreA,
		SetsB:            c.ScoreB,
		ScoreType:        domain.ScoreType(c.ScoreType),
		ScoreTarget:      c.ScoreTarget,
		TournamentID:     c.TournamentID,
		TournamentType:   c.TournamentType,
		TeamAServesFirst: c.TeamAServesFirst,
	}
}

func convertSlots(slots []matchSlot) domain.Team {
	team := make(domain.Team, 0, len(slots))
	for _, slot := range slots {
		if slot.Guest {
			team = append(team, domain.GuestPlayer())
			continue
		}
		team = append(team, domain.KnownPlayer(slot.PlayerID))
	}
	return team
}

type createPlayer struct {
	Name string `json:"name"`
}

type planRotation struct {
	PlayerIDs []uuid.UUID `json:"playerIds"`
}

func (p planRotation) Validate() error {
	if len(p.PlayerIDs) == 0 {
		return ErrEmptyPool
	}
	seen := make(map[uuid.UUID]struct{}, len(p.PlayerIDs))
	for _, id := range p.PlayerIDs {
		if id == uuid.Nil {
			return ErrMissingPlayer
		}
		if _, ok := seen[id]; ok {
			return ErrDuplicatePlayer
		}
		seen[id] = struct{}{}
	}
	return nil
}
