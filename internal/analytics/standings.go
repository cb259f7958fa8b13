package analytics

import (
	"sort"
	"strconv"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
)

const (
	pointsWin  = 3
	pointsDraw = 1
	pointsLoss = 0
)

// matchPoints returns the points earned by a side scoring `goals` against `conceded`.
func matchPoints(goals, conceded int) int {
	switch {
	case goals > conceded:
		return pointsWin
	case goals == conceded:
		return pointsDraw
	default:
		return pointsLoss
	}
}

// ComputeStandings accumulates points per team across home and away games and
// ranks every team by points descending, then team id ascending. Teams that
// never played are listed with zero points.
func ComputeStandings(teams []domain.Team, matches []domain.Match) ([]domain.TeamStanding, error) {
	known := make(map[int]struct{}, len(teams))
	for _, t := range teams {
		if _, dup := known[t.ID]; dup {
			return nil, domain.NewValidationError("times", t.ID, domain.ErrDuplicateKey, "")
		}
		known[t.ID] = struct{}{}
	}

	points := make(map[int]int, len(teams))
	seen := make(map[int]struct{}, len(matches))
	for _, m := range matches {
		if err := validateMatch(m, known, seen); err != nil {
			return nil, err
		}
		points[m.HomeTeamID] += matchPoints(m.HomeGoals, m.AwayGoals)
		points[m.AwayTeamID] += matchPoints(m.AwayGoals, m.HomeGoals)
	}

	standings := make([]domain.TeamStanding, 0, len(teams))
	for _, t := range teams {
		standings = append(standings, domain.TeamStanding{
			TeamID:   t.ID,
			TeamName: t.Name,
			Points:   points[t.ID],
		})
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].TeamID < standings[j].TeamID
	})
	return standings, nil
}

func validateMatch(m domain.Match, known, seen map[int]struct{}) error {
	if _, dup := seen[m.ID]; dup {
		return domain.NewValidationError("jogos", m.ID, domain.ErrDuplicateKey, "")
	}
	seen[m.ID] = struct{}{}

	if _, ok := known[m.HomeTeamID]; !ok {
		return domain.NewValidationError("jogos", m.ID, domain.ErrUnknownReference, "home team "+strconv.Itoa(m.HomeTeamID))
	}
	if _, ok := known[m.AwayTeamID]; !ok {
		return domain.NewValidationError("jogos", m.ID, domain.ErrUnknownReference, "away team "+strconv.Itoa(m.AwayTeamID))
	}
	if m.HomeTeamID == m.AwayTeamID {
		return domain.NewValidationError("jogos", m.ID, domain.ErrSelfReference, "team plays itself")
	}
	if m.HomeGoals < 0 || m.AwayGoals < 0 {
		return domain.NewValidationError("jogos", m.ID, domain.ErrNegativeValue, "goals")
	}
	return nil
}
