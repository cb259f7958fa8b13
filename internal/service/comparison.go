package service

import (
	"context"
	"fmt"
	"reflect"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/analytics"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/logger"
)

// Comparison is the outcome of checking in-memory results against the
// database-side reference queries.
type Comparison struct {
	StandingsMatch bool     `json:"standings_match"`
	SellersMatch   bool     `json:"sellers_match"`
	ManagersMatch  bool     `json:"managers_match"`
	Mismatches     []string `json:"mismatches,omitempty"`
}

// OK reports whether every report matched.
func (c *Comparison) OK() bool {
	return c.StandingsMatch && c.SellersMatch && c.ManagersMatch
}

// Compare runs the reference queries and the in-memory computations on the
// same source. The reference queries follow the top-three and two-hop
// readings, so those rules are used here regardless of the defaults.
func (s *AnalyticsService) Compare(ctx context.Context, ref domain.ReferenceQuerier) (*Comparison, error) {
	cmp := &Comparison{}

	standings, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}
	refStandings, err := ref.ReferenceStandings(ctx)
	if err != nil {
		return nil, err
	}
	cmp.StandingsMatch = standingsEqual(standings, refStandings)
	if !cmp.StandingsMatch {
		cmp.Mismatches = append(cmp.Mismatches, fmt.Sprintf("standings: memory=%v reference=%v", standings, refStandings))
	}

	sellers, err := s.QualifyingSellers(ctx, domain.SellerRuleTopThree)
	if err != nil {
		return nil, err
	}
	refSellers, err := ref.ReferenceSellers(ctx)
	if err != nil {
		return nil, err
	}
	names := analytics.SellerNames(sellers)
	cmp.SellersMatch = stringsEqual(names, refSellers)
	if !cmp.SellersMatch {
		cmp.Mismatches = append(cmp.Mismatches, fmt.Sprintf("sellers: memory=%v reference=%v", names, refSellers))
	}

	managers, err := s.IndirectManagers(ctx, domain.ManagerRuleTwoHop)
	if err != nil {
		return nil, err
	}
	refManagers, err := ref.ReferenceIndirectManagers(ctx)
	if err != nil {
		return nil, err
	}
	cmp.ManagersMatch = reflect.DeepEqual(normalizeManagers(managers), normalizeManagers(refManagers))
	if !cmp.ManagersMatch {
		cmp.Mismatches = append(cmp.Mismatches, fmt.Sprintf("indirect managers: memory=%v reference=%v",
			FormatManagers(managers), FormatManagers(refManagers)))
	}

	for _, m := range cmp.Mismatches {
		logger.WarnLog(ctx, "reference mismatch: %s", m)
	}
	return cmp, nil
}

func standingsEqual(a, b []domain.TeamStanding) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func normalizeManagers(in []domain.IndirectManager) []domain.IndirectManager {
	if len(in) == 0 {
		return nil
	}
	return in
}

// FormatManagers renders rows as "id->manager" with NULL for nil.
func FormatManagers(rows []domain.IndirectManager) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		if r.ManagerID == nil {
			out[i] = fmt.Sprintf("%d->NULL", r.EmployeeID)
		} else {
			out[i] = fmt.Sprintf("%d->%d", r.EmployeeID, *r.ManagerID)
		}
	}
	return out
}
