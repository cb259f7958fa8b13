package dataset

import (
	"context"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
)

// Memory is a RelationSource backed by in-memory slices. Each call returns a
// fresh copy so callers cannot alter the source.
type Memory struct {
	teams       []domain.Team
	matches     []domain.Match
	commissions []domain.Commission
	employees   []domain.Employee
}

// NewMemory wraps the given relations.
func NewMemory(teams []domain.Team, matches []domain.Match, commissions []domain.Commission, employees []domain.Employee) *Memory {
	return &Memory{teams: teams, matches: matches, commissions: commissions, employees: employees}
}

// Sample returns the assessment datasets.
func Sample() *Memory {
	return NewMemory(SampleTeams(), SampleMatches(), SampleCommissions(), SampleEmployees())
}

func (m *Memory) Teams(ctx context.Context) ([]domain.Team, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Team(nil), m.teams...), nil
}

func (m *Memory) Matches(ctx context.Context) ([]domain.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Match(nil), m.matches...), nil
}

func (m *Memory) Commissions(ctx context.Context) ([]domain.Commission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Commission(nil), m.commissions...), nil
}

func (m *Memory) Employees(ctx context.Context) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]domain.Employee(nil), m.employees...), nil
}
