package proxy

import (
	"strings"

	"github.com/iammaxlichter/SportScanner/internal/domain"
)

func mapGame(league domain.League, g gameResponse) domain.Game {
	lg := league
	if g.League != "" {
		lg = domain.League(g.League).Normalize()
	}
	return domain.Game{
		League:    lg,
		Home:      mapSide(g.Home),
		Away:      mapSide(g.Away),
		Status:    mapStatus(g.Status),
		StartTime: g.StartTime,
	}
}

func mapSide(s sideResponse) domain.TeamSide {
	return domain.TeamSide{
		TeamID: strings.TrimSpace(s.TeamID),
		Name:   s.Name,
		Logo:   s.Logo,
		Score:  s.Score,
	}
}

func mapStatus(s statusResponse) domain.GameStatus {
	return domain.GameStatus{
		Phase:      mapPhase(s.Phase),
		Clock:      s.Clock,
		Possession: s.Possession,
		Down:       s.Down,
		Distance:   s.Distance,
		YardLine:   s.YardLine,
		Outs:       s.Outs,
		OnFirst:    s.OnFirst,
		OnSecond:   s.OnSecond,
		OnThird:    s.OnThird,
	}
}

func mapPhase(raw string) domain.Phase {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "live", "in_progress", "in progress":
		return domain.PhaseLive
	case "final", "ended":
		return domain.PhaseFinal
	default:
		return domain.PhasePre
	}
}
