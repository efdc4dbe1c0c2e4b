package badge

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
)

type Progress struct {
	Current int
	Target  int
}

type Badge struct {
	ID          string
	Icon        string
	Tier        string
	Title       string
	Description string
	Earned      bool
	Group       string
	GroupOrder  int
	Progress    *Progress
	Meta        string
	// HolderID and HolderValue are set on unique merits the player does
	// not hold, pointing at the current record holder.
	HolderID    uuid.UUID
	HolderValue string
}

// BuildBadges produces the full badge list for one player: every threshold
// tier, the giant-slayer pair, and the unique merits scanned across all
// players. Merits nobody qualifies for are omitted.
func BuildBadges(playerID uuid.UUID, all map[uuid.UUID]*PlayerStats) []Badge {
	stats, ok := all[playerID]
	if !ok {
		return nil
	}

	values := thresholdValues(stats)
	badges := make([]Badge, 0, 128)
	for _, def := range Definitions {
		value := values[def.ID]
		for i, target := range def.Thresholds {
			current := value
			if current > target {
				current = target
			}
			badges = append(badges, Badge{
				ID:          fmt.Sprintf("%s-%d", def.ID, target),
				Icon:        def.Icon,
				Tier:        tierLabel(i),
				Title:       fmt.Sprintf("%s %d", def.Title, target),
				Description: fmt.Sprintf(def.Description, target),
				Earned:      value >= target,
				Group:       def.Group,
				GroupOrder:  def.GroupOrder,
				Progress:    &Progress{Current: current, Target: target},
			})
		}
	}
	badges = append(badges, giantSlayerBadges(stats)...)
	badges = append(badges, uniqueMerits(playerID, all)...)
	return badges
}

func thresholdValues(stats *PlayerStats) map[string]int {
	return map[string]int{
		"matches":             stats.MatchesPlayed,
		"wins":                stats.Wins,
		"losses":              stats.Losses,
		"streak":              stats.BestWinStreak,
		"activity":            stats.MatchesLast30Days,
		"elo":                 stats.CurrentRating,
		"upset":               stats.BiggestUpsetGap,
		"win-rate":            stats.WinRatePercent(),
		"elo-lift":            stats.RatingLift(),
		"marathon":            stats.MarathonMatches,
		"fast-win":            stats.QuickWins,
		"clutch":              stats.CloseWins,
		"partners":            stats.UniquePartners,
		"rivals":              stats.UniqueOpponents,
		"tournaments-played":  stats.TournamentsPlayed,
		"tournaments-wins":    stats.TournamentWins,
		"tournaments-podiums": stats.TournamentPodiums,
		"americano-wins":      stats.AmericanoWins,
		"mexicano-wins":       stats.MexicanoWins,
		"night-owl":           stats.NightOwlMatches,
		"early-bird":          stats.EarlyBirdMatches,
		"sets-won":            stats.TotalSetsWon,
		"guest-helper":        stats.GuestPartners,
		"clean-sheets":        stats.CleanSheets,
		"sets-lost":           stats.TotalSetsLost,
	}
}

func giantSlayerBadges(stats *PlayerStats) []Badge {
	first := Badge{
		ID:          giantSlayerID,
		Icon:        giantSlayerIcon,
		Tier:        "I",
		Title:       "Giant Slayer",
		Description: "Beat a team with a higher average rating",
		Earned:      !stats.FirstUpsetAt.IsZero(),
		Group:       "Giant Slayer",
		GroupOrder:  25,
	}
	if first.Earned {
		first.Meta = "First upset: " + stats.FirstUpsetAt.Format("2006-01-02")
	} else {
		first.Meta = "Aim for a win against a higher rated team."
	}

	current := stats.BiggestUpsetGap
	if current > giantSlayerGap {
		current = giantSlayerGap
	}
	pro := Badge{
		ID:          giantSlayerProID,
		Icon:        giantSlayerIcon,
		Tier:        "II",
		Title:       "Great Giant Slayer",
		Description: fmt.Sprintf("Beat a team rated %d+ above you on average", giantSlayerGap),
		Earned:      stats.BiggestUpsetGap >= giantSlayerGap,
		Group:       "Giant Slayer",
		GroupOrder:  26,
		Meta:        fmt.Sprintf("Biggest upset so far: +%d", stats.BiggestUpsetGap),
		Progress:    &Progress{Current: current, Target: giantSlayerGap},
	}
	return []Badge{first, pro}
}

const (
	meritMinGamesRating  = 10
	meritMinGamesWinRate = 20
	// trough-dweller ranks by inverted rating so the common "highest
	// value wins" scan still applies.
	ratingInversionBase = 10000
)

func meritValue(meritID string, s *PlayerStats) float64 {
	switch meritID {
	case "king-of-elo":
		if s.MatchesPlayed < meritMinGamesRating {
			return -1
		}
		return float64(s.CurrentRating)
	case "most-active":
		return float64(s.MatchesPlayed)
	case "win-machine":
		if s.MatchesPlayed < meritMinGamesWinRate {
			return -1
		}
		return float64(s.Wins) / float64(s.MatchesPlayed)
	case "upset-king":
		return float64(s.BiggestUpsetGap)
	case "marathon-pro":
		return float64(s.MarathonMatches)
	case "clutch-pro":
		return float64(s.CloseWins)
	case "social-butterfly":
		return float64(s.UniquePartners)
	case "monthly-giant":
		return float64(s.MatchesLast30Days)
	case "the-wall":
		return float64(s.CleanSheets)
	case "loss-machine":
		if s.MatchesPlayed < meritMinGamesWinRate {
			return -1
		}
		return float64(s.Losses) / float64(s.MatchesPlayed)
	case "trough-dweller":
		if s.MatchesPlayed < meritMinGamesRating {
			return -1
		}
		return float64(ratingInversionBase - s.CurrentRating)
	case "biggest-fall":
		return float64(s.BiggestRatingLoss)
	case "hard-times":
		return float64(s.Losses)
	case "most-generous":
		return float64(s.TotalSetsLost)
	case "cold-streak-pro":
		return float64(s.BestLossStreak)
	}
	return -1
}

func formatMeritValue(meritID string, value float64) string {
	rounded := int(math.Round(value))
	switch meritID {
	case "win-machine", "loss-machine":
		return fmt.Sprintf("%d%%", int(math.Round(value*100)))
	case "king-of-elo":
		return fmt.Sprintf("%d ELO", rounded)
	case "trough-dweller":
		return fmt.Sprintf("%d ELO", ratingInversionBase-rounded)
	case "upset-king":
		return fmt.Sprintf("+%d ELO", rounded)
	case "biggest-fall":
		return fmt.Sprintf("-%d ELO", rounded)
	}
	return fmt.Sprintf("%d", rounded)
}

func uniqueMerits(playerID uuid.UUID, all map[uuid.UUID]*PlayerStats) []Badge {
	ids := make([]uuid.UUID, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	// Exact ties go to the lexicographically smallest player id.
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	badges := make([]Badge, 0, len(UniqueDefinitions))
	for _, def := range UniqueDefinitions {
		bestValue := -1.0
		var holder uuid.UUID
		for _, id := range ids {
			value := meritValue(def.ID, all[id])
			if value > bestValue {
				bestValue = value
				holder = id
			}
		}
		if holder == uuid.Nil || bestValue <= 0 {
			continue
		}
		earned := holder == playerID
		merit := Badge{
			ID:          def.ID,
			Icon:        def.Icon,
			Tier:        "Unique",
			Title:       def.Title,
			Description: def.Description,
			Earned:      earned,
			Group:       uniqueGroup,
		}
		if !earned {
			merit.HolderID = holder
			merit.HolderValue = formatMeritValue(def.ID, bestValue)
		}
		badges = append(badges, merit)
	}
	return badges
}

// Summary buckets a badge list the way profile pages consume it.
type Summary struct {
	Earned      []Badge
	OtherUnique []Badge
	Locked      []Badge
	Total       int
	TotalEarned int
}

func Summarize(badges []Badge) Summary {
	summary := Summary{Total: len(badges)}
	for _, b := range badges {
		switch {
		case b.Earned:
			summary.Earned = append(summary.Earned, b)
		case b.HolderID != uuid.Nil:
			summary.OtherUnique = append(summary.OtherUnique, b)
		default:
			summary.Locked = append(summary.Locked, b)
		}
	}
	summary.TotalEarned = len(summary.Earned)
	return summary
}
