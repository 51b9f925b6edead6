package notify

import (
	"strconv"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

// Badge background colors: red while anything is live, grey otherwise.
const (
	BadgeColorLive = "#d93025"
	BadgeColorIdle = "#5f6368"
)

// BadgeText renders the count of currently relevant games, or empty when
// there is nothing to show.
func BadgeText(games []domain.Game) string {
	if len(games) == 0 {
		return ""
	}
	return strconv.Itoa(len(games))
}

// AnyLive reports whether any game in the list is in progress.
func AnyLive(games []domain.Game) bool {
	for _, g := range games {
		if g.Status.Phase == domain.PhaseLive {
			return true
		}
	}
	return false
}

// BadgeColor picks the badge background for the list.
func BadgeColor(games []domain.Game) string {
	if AnyLive(games) {
		return BadgeColorLive
	}
	return BadgeColorIdle
}
