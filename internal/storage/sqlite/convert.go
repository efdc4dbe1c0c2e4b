package sqlite

import (
	"fmt"

	"github.com/padelclub/padelengine/gen/model"
	"github.com/padelclub/padelengine/internal/domain"

	"github.com/google/uuid"
)

// guestSlot marks a team spot taken by an unregistered guest. An absent
// slot is stored as NULL.
const guestSlot = "guest"

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("parse player id: %w", err)
	}
	return domain.Player{
		ID:           id,
		Name:         player.Name,
		RegisteredAt: player.CreatedAt,
	}, nil
}

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:        player.ID.String(),
		Name:      player.Name,
		CreatedAt: player.RegisteredAt,
	}
}

func convertSlotToDomain(slot *string) (domain.PlayerSlot, bool, error) {
	if slot == nil {
		return domain.PlayerSlot{}, false, nil
	}
	if *slot == guestSlot {
		return domain.GuestPlayer(), true, nil
	}
	id, err := uuid.Parse(*slot)
	if err != nil {
		return domain.PlayerSlot{}, false, fmt.Errorf("parse slot id: %w", err)
	}
	return domain.KnownPlayer(id), true, nil
}

func convertTeamToDomain(slot1, slot2 *string) (domain.Team, error) {
	team := make(domain.Team, 0, 2)
	for _, raw := range []*string{slot1, slot2} {
		slot, ok, err := convertSlotToDomain(raw)
		if err != nil {
			return nil, err
		}
		if ok {
			team = append(team, slot)
		}
	}
	return team, nil
}

func convertSlotFromDomain(team domain.Team, index int) *string {
	if index >= len(team) {
		return nil
	}
	slot := team[index]
	value := guestSlot
	if !slot.Guest {
		value = slot.ID.String()
	}
	return &value
}

func convertMatchToDomain(match model.Matches) (domain.Match, error) {
	id, err := uuid.Parse(match.ID)
	if err != nil {
		return domain.Match{}, fmt.Errorf("parse match id: %w", err)
	}
	teamA, err := convertTeamToDomain(match.TeamASlot1, match.TeamASlot2)
	if err != nil {
		return domain.Match{}, err
	}
	teamB, err := convertTeamToDomain(match.TeamBSlot1, match.TeamBSlot2)
	if err != nil {
		return domain.Match{}, err
	}
	converted := domain.Match{
		ID:               id,
		PlayedAt:         match.PlayedAt,
		TeamA:            teamA,
		TeamB:            teamB,
		SetsA:            int(match.SetsA),
		SetsB:            int(match.SetsB),
		ScoreType:        domain.ScoreType(match.ScoreType),
		TeamAServesFirst: match.TeamAServesFirst,
	}
	if match.ScoreTarget != nil {
		converted.ScoreTarget = int(*match.ScoreTarget)
	}
	if match.TournamentID != nil {
		tournamentID, err := uuid.Parse(*match.TournamentID)
		if err != nil {
			return domain.Match{}, fmt.Errorf("parse tournament id: %w", err)
		}
		converted.TournamentID = tournamentID
	}
	if match.TournamentType != nil {
		converted.TournamentType = *match.TournamentType
	}
	return converted, nil
}

func convertMatchesToDomain(matches []model.Matches) ([]domain.Match, error) {
	converted := make([]domain.Match, 0, len(matches))
	for _, match := range matches {
		m, err := convertMatchToDomain(match)
		if err != nil {
			return nil, err
		}
		converted = append(converted, m)
	}
	return converted, nil
}

func convertMatchFromDomain(match domain.Match) model.Matches {
	row := model.Matches{
		ID:               match.ID.String(),
		TeamASlot1:       convertSlotFromDomain(match.TeamA, 0),
		TeamASlot2:       convertSlotFromDomain(match.TeamA, 1),
		TeamBSlot1:       convertSlotFromDomain(match.TeamB, 0),
		TeamBSlot2:       convertSlotFromDomain(match.TeamB, 1),
		SetsA:            int32(match.SetsA),
		SetsB:            int32(match.SetsB),
		ScoreType:        string(match.ScoreType),
		TeamAServesFirst: match.TeamAServesFirst,
		PlayedAt:         match.PlayedAt,
	}
	if match.ScoreTarget != 0 {
		target := int32(match.ScoreTarget)
		row.ScoreTarget = &target
	}
	if match.TournamentID != uuid.Nil {
		tournamentID := match.TournamentID.String()
		row.TournamentID = &tournamentID
	}
	if match.TournamentType != "" {
		tournamentType := match.TournamentType
		row.TournamentType = &tournamentType
	}
	return row
}

func convertTournamentResultToDomain(result model.TournamentResults) (domain.TournamentResult, error) {
	id, err := uuid.Parse(result.ID)
	if err != nil {
		return domain.TournamentResult{}, fmt.Errorf("parse result id: %w", err)
	}
	playerID, err := uuid.Parse(result.PlayerID)
	if err != nil {
		return domain.TournamentResult{}, fmt.Errorf("parse result player id: %w", err)
	}
	tournamentID, err := uuid.Parse(result.TournamentID)
	if err != nil {
		return domain.TournamentResult{}, fmt.Errorf("parse result tournament id: %w", err)
	}
	converted := domain.TournamentResult{
		ID:           id,
		PlayerID:     playerID,
		TournamentID: tournamentID,
		Rank:         int(result.Rank),
		PlayedAt:     result.PlayedAt,
	}
	if result.TournamentType != nil {
		converted.TournamentType = *result.TournamentType
	}
	return converted, nil
}

func convertTournamentResultsToDomain(results []model.TournamentResults) ([]domain.TournamentResult, error) {
	converted := make([]domain.TournamentResult, 0, len(results))
	for _, result := range results {
		r, err := convertTournamentResultToDomain(result)
		if err != nil {
			return nil, err
		}
		converted = append(converted, r)
	}
	return converted, nil
}

func convertTournamentResultFromDomain(result domain.TournamentResult) model.TournamentResults {
	row := model.TournamentResults{
		ID:           result.ID.String(),
		PlayerID:     result.PlayerID.String(),
		TournamentID: result.TournamentID.String(),
		Rank:         int32(result.Rank),
		PlayedAt:     result.PlayedAt,
	}
	if result.TournamentType != "" {
		tournamentType := result.TournamentType
		row.TournamentType = &tournamentType
	}
	return row
}
