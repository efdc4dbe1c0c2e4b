package web

import (
	"time"

	"github.com/padelclub/padelengine/internal/badge"
	"github.com/padelclub/padelengine/internal/domain"
	"github.com/padelclub/padelengine/internal/rotation"
	"github.com/padelclub/padelengine/internal/service"

	"github.com/google/uuid"
)

type playerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func convertPlayer(p domain.Player) playerResponse {
	return playerResponse{
		ID:           p.ID,
		Name:         p.Name,
		RegisteredAt: p.RegisteredAt,
	}
}

func convertPlayers(players []domain.Player) []playerResponse {
	converted := make([]playerResponse, 0, len(players))
	for _, p := range players {
		converted = append(converted, convertPlayer(p))
	}
	return converted
}

type ratingResponse struct {
	Rank       int            `json:"rank"`
	Player     playerResponse `json:"player"`
	Rating     int            `json:"rating"`
	Games      int            `json:"games"`
	Wins       int            `json:"wins"`
	Losses     int            `json:"losses"`
	RecentForm []string       `json:"recentForm,omitempty"`
}

func convertRatings(ratings []service.PlayerRating) []ratingResponse {
	converted := make([]ratingResponse, 0, len(ratings))
	for _, row := range ratings {
		form := make([]string, 0, len(row.RecentForm))
		for _, r := range row.RecentForm {
			form = append(form, string(r))
		}
		converted = append(converted, ratingResponse{
			Rank:       row.Rank,
			Player:     convertPlayer(row.Player),
			Rating:     row.Rating,
			Games:      row.Games,
			Wins:       row.Wins,
			Losses:     row.Losses,
			RecentForm: form,
		})
	}
	return converted
}

type bestPartnerResponse struct {
	PlayerID uuid.UUID `json:"playerId"`
	Games    int       `json:"games"`
	Wins     int       `json:"wins"`
	WinRate  float64   `json:"winRate"`
}

type playerCardResponse struct {
	Player      playerResponse       `json:"player"`
	Rating      int                  `json:"rating"`
	Games       int                  `json:"games"`
	Wins        int                  `json:"wins"`
	Losses      int                  `json:"losses"`
	RecentForm  []string             `json:"recentForm,omitempty"`
	BestPartner *bestPartnerResponse `json:"bestPartner,omitempty"`
}

func convertPlayerCard(card service.PlayerCard) playerCardResponse {
	form := make([]string, 0, len(card.RecentForm))
	for _, r := range card.RecentForm {
		form = append(form, string(r))
	}
	resp := playerCardResponse{
		Player:     convertPlayer(card.Player),
		Rating:     card.Rating,
		Games:      card.Games,
		Wins:       card.Wins,
		Losses:     card.Losses,
		RecentForm: form,
	}
	if card.BestPartner != nil {
		resp.BestPartner = &bestPartnerResponse{
			PlayerID: card.BestPartner.PartnerID,
			Games:    card.BestPartner.Games,
			Wins:     card.BestPartner.Wins,
			WinRate:  card.BestPartner.WinRate,
		}
	}
	return resp
}

type ratingChangeResponse struct {
	PlayerID uuid.UUID `json:"playerId"`
	Before   int       `json:"before"`
	After    int       `json:"after"`
	Games    int       `json:"games"`
}

func convertRatingChanges(changes []service.RatingChange) []ratingChangeResponse {
	converted := make([]ratingChangeResponse, 0, len(changes))
	for _, change := range changes {
		converted = append(converted, ratingChangeResponse(change))
	}
	return converted
}

type matchResponse struct {
	ID               uuid.UUID      `json:"id"`
	PlayedAt         time.Time      `json:"playedAt"`
	TeamA            []matchSlot    `json:"teamA"`
	TeamB            []matchSlot    `json:"teamB"`
	ScoreA           int            `json:"scoreA"`
	ScoreB           int            `json:"scoreB"`
	ScoreType        string         `json:"scoreType"`
	ScoreTarget      int            `json:"scoreTarget,omitempty"`
	TournamentID     uuid.UUID      `json:"tournamentId,omitempty"`
	TournamentType   string         `json:"tournamentType,omitempty"`
	TeamAServesFirst bool           `json:"teamAServesFirst"`
	Deltas           map[string]int `json:"ratingChanges,omitempty"`
}

func convertMatch(m domain.Match, deltas map[uuid.UUID]int) matchResponse {
	resp := matchResponse{
		ID:               m.ID,
		PlayedAt:         m.PlayedAt,
		TeamA:            convertTeam(m.TeamA),
		TeamB:            convertTeam(m.TeamB),
		ScoreA:           m.SetsA,
		ScoreB:           m.SetsB,
		ScoreType:        string(m.ScoreType),
		ScoreTarget:      m.ScoreTarget,
		TournamentID:     m.TournamentID,
		TournamentType:   m.TournamentType,
		TeamAServesFirst: m.TeamAServesFirst,
	}
	if len(deltas) > 0 {
		resp.Deltas = make(map[string]int, len(deltas))
		for id, delta := range deltas {
			resp.Deltas[id.String()] = delta
		}
	}
	return resp
}

func convertMatches(summaries []service.MatchSummary) []matchResponse {
	converted := make([]matchResponse, 0, len(summaries))
	for _, summary := range summaries {
		converted = append(converted, convertMatch(summary.Match, summary.Deltas))
	}
	return converted
}

func convertTeam(team domain.Team) []matchSlot {
	slots := make([]matchSlot, 0, len(team))
	for _, slot := range team {
		slots = append(slots, matchSlot{PlayerID: slot.ID, Guest: slot.Guest})
	}
	return slots
}

type progressResponse struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

type badgeResponse struct {
	ID          string            `json:"id"`
	Icon        string            `json:"icon"`
	Tier        string            `json:"tier,omitempty"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Earned      bool              `json:"earned"`
	Group       string            `json:"group,omitempty"`
	GroupOrder  int               `json:"groupOrder,omitempty"`
	Progress    *progressResponse `json:"progress,omitempty"`
	Meta        string            `json:"meta,omitempty"`
	HolderID    uuid.UUID         `json:"holderId,omitempty"`
	HolderValue string            `json:"holderValue,omitempty"`
}

type badgeSummaryResponse struct {
	Earned      []badgeResponse `json:"earned"`
	OtherUnique []badgeResponse `json:"otherUnique"`
	Locked      []badgeResponse `json:"locked"`
	Total       int             `json:"total"`
	TotalEarned int             `json:"totalEarned"`
}

func convertBadges(badges []badge.Badge) []badgeResponse {
	converted := make([]badgeResponse, 0, len(badges))
	for _, b := range badges {
		resp := badgeResponse{
			ID:          b.ID,
			Icon:        b.Icon,
			Tier:        b.Tier,
			Title:       b.Title,
			Description: b.Description,
			Earned:      b.Earned,
			Group:       b.Group,
			GroupOrder:  b.GroupOrder,
			Meta:        b.Meta,
			HolderID:    b.HolderID,
			HolderValue: b.HolderValue,
		}
		if b.Progress != nil {
			resp.Progress = &progressResponse{
				Current: b.Progress.Current,
				Target:  b.Progress.Target,
			}
		}
		converted = append(converted, resp)
	}
	return converted
}

func convertBadgeSummary(summary badge.Summary) badgeSummaryResponse {
	return badgeSummaryResponse{
		Earned:      convertBadges(summary.Earned),
		OtherUnique: convertBadges(summary.OtherUnique),
		Locked:      convertBadges(summary.Locked),
		Total:       summary.Total,
		TotalEarned: summary.TotalEarned,
	}
}

type roundResponse struct {
	Round          int         `json:"round"`
	TeamA          []uuid.UUID `json:"teamA"`
	TeamB          []uuid.UUID `json:"teamB"`
	Rest           []uuid.UUID `json:"rest,omitempty"`
	Fairness       int         `json:"fairness"`
	WinProbability float64     `json:"winProbability"`
}

type scheduleResponse struct {
	Rounds          []roundResponse `json:"rounds"`
	AverageFairness int             `json:"averageFairness"`
	TargetGames     float64         `json:"targetGames"`
}

func convertSchedule(schedule rotation.Schedule) scheduleResponse {
	rounds := make([]roundResponse, 0, len(schedule.Rounds))
	for _, round := range schedule.Rounds {
		rounds = append(rounds, roundResponse(round))
	}
	return scheduleResponse{
		Rounds:          rounds,
		AverageFairness: schedule.AverageFairness,
		TargetGames:     schedule.TargetGames,
	}
}
