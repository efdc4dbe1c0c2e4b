package badge

import (
	"fmt"
	"strconv"
	"strings"
)

// Definition is one threshold-badge family: a metric with an ascending
// ladder of targets. Badge ids are "<family id>-<target>".
type Definition struct {
	ID          string
	Icon        string
	Title       string
	Description string // fmt format with one %d verb for the target
	Thresholds  []int
	Group       string
	GroupOrder  int
}

// UniqueDefinition is a cross-player record badge held by exactly one
// player at a time.
type UniqueDefinition struct {
	ID          string
	Icon        string
	Title       string
	Description string
}

const uniqueGroup = "Unique Merits"

var Definitions = []Definition{
	{ID: "matches", Icon: "🏟️", Title: "Matches", Description: "Play %d matches", Thresholds: []int{1, 5, 10, 25, 50, 75, 100, 150, 200}, Group: "Matches", GroupOrder: 1},
	{ID: "wins", Icon: "🏆", Title: "Wins", Description: "Win %d matches", Thresholds: []int{1, 5, 10, 25, 50, 75, 100, 150}, Group: "Wins", GroupOrder: 2},
	{ID: "losses", Icon: "🧱", Title: "Losses", Description: "Lose %d matches", Thresholds: []int{1, 5, 10, 25, 50, 75}, Group: "Losses", GroupOrder: 3},
	{ID: "streak", Icon: "🔥", Title: "Win Streak", Description: "Win %d matches in a row", Thresholds: []int{3, 5, 7, 10, 15}, Group: "Win Streak", GroupOrder: 4},
	{ID: "activity", Icon: "📅", Title: "Activity", Description: "Play %d matches in the last 30 days", Thresholds: []int{3, 6, 10, 15, 20}, Group: "Activity", GroupOrder: 5},
	{ID: "elo", Icon: "📈", Title: "Rating", Description: "Reach %d rating", Thresholds: []int{1100, 1200, 1300, 1400, 1500}, Group: "Rating", GroupOrder: 6},
	{ID: "upset", Icon: "🎯", Title: "Upset", Description: "Beat a team rated %d+ above you", Thresholds: []int{25, 50, 100, 150, 200, 250}, Group: "Upset", GroupOrder: 7},
	{ID: "win-rate", Icon: "📊", Title: "Win Rate", Description: "Keep a win rate of at least %d%%", Thresholds: []int{50, 60, 70, 80, 90}, Group: "Win Rate", GroupOrder: 8},
	{ID: "elo-lift", Icon: "🚀", Title: "Rating Lift", Description: "Climb %d rating points above the baseline", Thresholds: []int{50, 100}, Group: "Rating Lift", GroupOrder: 9},
	{ID: "marathon", Icon: "⏱️", Title: "Marathons", Description: "Play %d marathon matches", Thresholds: []int{1, 3, 5, 10, 15}, Group: "Marathons", GroupOrder: 10},
	{ID: "fast-win", Icon: "⚡", Title: "Quick Wins", Description: "Win %d short matches", Thresholds: []int{1, 3, 5, 8, 12}, Group: "Quick Wins", GroupOrder: 11},
	{ID: "clutch", Icon: "🧊", Title: "Nail-biters", Description: "Win %d matches by a single set", Thresholds: []int{1, 3, 5, 8, 12}, Group: "Nail-biters", GroupOrder: 12},
	{ID: "partners", Icon: "🤝", Title: "Partnerships", Description: "Play with %d different partners", Thresholds: []int{2, 4, 6, 10, 15}, Group: "Partnerships", GroupOrder: 13},
	{ID: "rivals", Icon: "👀", Title: "Rivals", Description: "Face %d different opponents", Thresholds: []int{3, 5, 8, 12, 20}, Group: "Rivals", GroupOrder: 14},
	{ID: "tournaments-played", Icon: "🎲", Title: "Tournaments", Description: "Play %d tournaments", Thresholds: []int{1, 3, 5, 8}, Group: "Tournaments", GroupOrder: 15},
	{ID: "tournaments-wins", Icon: "🥇", Title: "Tournament Wins", Description: "Win %d tournaments", Thresholds: []int{1, 2, 3}, Group: "Tournaments", GroupOrder: 16},
	{ID: "tournaments-podiums", Icon: "🥉", Title: "Podiums", Description: "Take %d podium finishes", Thresholds: []int{1, 3, 5}, Group: "Tournaments", GroupOrder: 17},
	{ID: "americano-wins", Icon: "🇺🇸", Title: "Americano Wins", Description: "Win %d americano tournaments", Thresholds: []int{1, 3, 5}, Group: "Tournaments", GroupOrder: 18},
	{ID: "mexicano-wins", Icon: "🇲🇽", Title: "Mexicano Wins", Description: "Win %d mexicano tournaments", Thresholds: []int{1, 3, 5}, Group: "Tournaments", GroupOrder: 19},
	{ID: "night-owl", Icon: "🦉", Title: "Night Owl", Description: "Play %d matches after 21:00", Thresholds: []int{5, 10, 25}, Group: "Misc", GroupOrder: 20},
	{ID: "early-bird", Icon: "🌅", Title: "Early Bird", Description: "Play %d matches before 09:00", Thresholds: []int{5, 10, 25}, Group: "Misc", GroupOrder: 21},
	{ID: "sets-won", Icon: "🍽️", Title: "Set Eater", Description: "Win %d sets in total", Thresholds: []int{10, 25, 50, 100, 250}, Group: "Feats", GroupOrder: 22},
	{ID: "guest-helper", Icon: "🤝", Title: "Guest Friendly", Description: "Play alongside %d guests", Thresholds: []int{1, 5, 10, 20}, Group: "Feats", GroupOrder: 23},
	{ID: "clean-sheets", Icon: "🧹", Title: "Shutouts", Description: "Win %d matches without dropping a set", Thresholds: []int{5, 10, 25, 50}, Group: "Wins", GroupOrder: 22},
	{ID: "sets-lost", Icon: "🎁", Title: "Generosity", Description: "Lose %d sets in total", Thresholds: []int{10, 25, 50, 100, 250}, Group: "Feats", GroupOrder: 24},
}

var UniqueDefinitions = []UniqueDefinition{
	{ID: "king-of-elo", Icon: "👑", Title: "Rating King", Description: "Highest rating right now (10+ matches played)"},
	{ID: "most-active", Icon: "🐜", Title: "Workhorse", Description: "Most matches played overall"},
	{ID: "win-machine", Icon: "🤖", Title: "Win Machine", Description: "Highest win rate (20+ matches played)"},
	{ID: "upset-king", Icon: "⚡", Title: "Upset Master", Description: "Biggest single rating upset"},
	{ID: "marathon-pro", Icon: "🏃", Title: "Marathon Runner", Description: "Most marathon matches (6+ sets)"},
	{ID: "clutch-pro", Icon: "🧊", Title: "Clutch Specialist", Description: "Most single-set wins"},
	{ID: "social-butterfly", Icon: "🦋", Title: "Social Butterfly", Description: "Most unique partners"},
	{ID: "monthly-giant", Icon: "🐘", Title: "Giant of the Month", Description: "Most matches in the last 30 days"},
	{ID: "the-wall", Icon: "🧱", Title: "The Wall", Description: "Most wins without conceding a set"},
	{ID: "loss-machine", Icon: "🌪️", Title: "Headwind", Description: "Highest loss rate (20+ matches played)"},
	{ID: "trough-dweller", Icon: "🤿", Title: "Bottom Feeder", Description: "Lowest rating right now (10+ matches played)"},
	{ID: "biggest-fall", Icon: "⚓", Title: "The Anchor", Description: "Biggest single rating loss"},
	{ID: "hard-times", Icon: "🩹", Title: "Hard Times", Description: "Most losses overall"},
	{ID: "most-generous", Icon: "💝", Title: "Most Generous", Description: "Most sets lost in total"},
	{ID: "cold-streak-pro", Icon: "❄️", Title: "Cold Snap", Description: "Longest loss streak"},
}

const (
	giantSlayerID    = "giant-slayer"
	giantSlayerProID = "giant-slayer-pro"
	giantSlayerIcon  = "⚔️"
	giantSlayerGap   = 200
)

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

func tierLabel(index int) string {
	if index < len(romanNumerals) {
		return romanNumerals[index]
	}
	return strconv.Itoa(index + 1)
}

var iconsByID = buildIconIndex()

func buildIconIndex() map[string]string {
	index := map[string]string{giantSlayerID: giantSlayerIcon, giantSlayerProID: giantSlayerIcon}
	for _, def := range Definitions {
		index[def.ID] = def.Icon
	}
	for _, def := range UniqueDefinitions {
		index[def.ID] = def.Icon
	}
	return index
}

// IconByID resolves a badge id, full ("wins-25") or family ("wins"), to
// its icon. Used for rendering a player's featured badge.
func IconByID(badgeID string) (string, bool) {
	if icon, ok := iconsByID[badgeID]; ok {
		return icon, true
	}
	family, _, ok := splitBadgeID(badgeID)
	if !ok {
		return "", false
	}
	icon, ok := iconsByID[family]
	return icon, ok
}

// TierLabelByID returns the Roman tier of a full threshold-badge id.
func TierLabelByID(badgeID string) (string, bool) {
	if badgeID == giantSlayerID {
		return "I", true
	}
	if badgeID == giantSlayerProID {
		return "II", true
	}
	family, target, ok := splitBadgeID(badgeID)
	if !ok {
		return "", false
	}
	for _, def := range Definitions {
		if def.ID != family {
			continue
		}
		for i, threshold := range def.Thresholds {
			if threshold == target {
				return tierLabel(i), true
			}
		}
	}
	return "", false
}

// DescriptionByID returns the human description for any badge id.
func DescriptionByID(badgeID string) (string, bool) {
	switch badgeID {
	case giantSlayerID:
		return "Beat a team with a higher average rating", true
	case giantSlayerProID:
		return fmt.Sprintf("Beat a team rated %d+ above you on average", giantSlayerGap), true
	}
	for _, def := range UniqueDefinitions {
		if def.ID == badgeID {
			return def.Description, true
		}
	}
	family, target, ok := splitBadgeID(badgeID)
	if !ok {
		return "", false
	}
	for _, def := range Definitions {
		if def.ID == family {
			return fmt.Sprintf(def.Description, target), true
		}
	}
	return "", false
}

func splitBadgeID(badgeID string) (family string, target int, ok bool) {
	i := strings.LastIndex(badgeID, "-")
	if i < 0 {
		return "", 0, false
	}
	target, err := strconv.Atoi(badgeID[i+1:])
	if err != nil {
		return "", 0, false
	}
	return badgeID[:i], target, true
}
