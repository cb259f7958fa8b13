package service

import (
	"context"
	"testing"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/dataset"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReference struct {
	standings []domain.TeamStanding
	sellers   []string
	managers  []domain.IndirectManager
}

func (s *stubReference) ReferenceStandings(context.Context) ([]domain.TeamStanding, error) {
	return s.standings, nil
}

func (s *stubReference) ReferenceSellers(context.Context) ([]string, error) {
	return s.sellers, nil
}

func (s *stubReference) ReferenceIndirectManagers(context.Context) ([]domain.IndirectManager, error) {
	return s.managers, nil
}

func id(n int) *int { return &n }

func sampleReference() *stubReference {
	return &stubReference{
		standings: []domain.TeamStanding{
			{TeamID: 20, TeamName: "Marketing", Points: 4},
			{TeamID: 50, TeamName: "Dados", Points: 4},
			{TeamID: 10, TeamName: "Financeiro", Points: 3},
			{TeamID: 30, TeamName: "Logística", Points: 3},
			{TeamID: 40, TeamName: "TI", Points: 0},
		},
		sellers: []string{"Lucas", "Matheus"},
		managers: []domain.IndirectManager{
			{EmployeeID: 10}, {EmployeeID: 20},
			{EmployeeID: 30, ManagerID: id(10)}, {EmployeeID: 40, ManagerID: id(10)},
			{EmployeeID: 50, ManagerID: id(20)}, {EmployeeID: 60, ManagerID: id(10)},
			{EmployeeID: 70, ManagerID: id(20)},
		},
	}
}

func TestCompare_AllMatch(t *testing.T) {
	// defaults differ from the reference readings; Compare must pin them
	svc := NewAnalyticsService(dataset.Sample(), domain.SellerRuleTotalCount, domain.ManagerRuleSalaryChain)

	cmp, err := svc.Compare(context.Background(), sampleReference())
	require.NoError(t, err)
	assert.True(t, cmp.OK(), "mismatches: %v", cmp.Mismatches)
	assert.Empty(t, cmp.Mismatches)
}

func TestCompare_ReportsMismatch(t *testing.T) {
	ref := sampleReference()
	ref.sellers = []string{"Matheus"}
	ref.managers[4].ManagerID = id(10)

	svc := NewAnalyticsService(dataset.Sample(), "", "")
	cmp, err := svc.Compare(context.Background(), ref)
	require.NoError(t, err)

	assert.False(t, cmp.OK())
	assert.True(t, cmp.StandingsMatch)
	assert.False(t, cmp.SellersMatch)
	assert.False(t, cmp.ManagersMatch)
	assert.Len(t, cmp.Mismatches, 2)
}

func TestFormatManagers(t *testing.T) {
	got := FormatManagers([]domain.IndirectManager{{EmployeeID: 1}, {EmployeeID: 2, ManagerID: id(9)}})
	assert.Equal(t, []string{"1->NULL", "2->9"}, got)
}
