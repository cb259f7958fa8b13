package analytics

import (
	"testing"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/dataset"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mgr(id int) *int {
	return &id
}

func emp(id int, salary float64, manager *int) domain.Employee {
	return domain.Employee{ID: id, Name: "e", Salary: salary, ManagerID: manager}
}

func TestResolveIndirectManagers_Sample(t *testing.T) {
	want := []domain.IndirectManager{
		{EmployeeID: 10, ManagerID: nil},
		{EmployeeID: 20, ManagerID: nil},
		{EmployeeID: 30, ManagerID: mgr(10)},
		{EmployeeID: 40, ManagerID: mgr(10)},
		{EmployeeID: 50, ManagerID: mgr(20)},
		{EmployeeID: 60, ManagerID: mgr(10)},
		{EmployeeID: 70, ManagerID: mgr(20)},
	}

	for _, rule := range []domain.ManagerRule{domain.ManagerRuleTwoHop, domain.ManagerRuleSalaryChain} {
		t.Run(string(rule), func(t *testing.T) {
			got, err := ResolveIndirectManagers(dataset.SampleEmployees(), rule)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolveIndirectManagers_RulesDisagreeOnDeepChain(t *testing.T) {
	// 1 (1000) -> 2 (1500) -> 3 (1800) -> 4 (5000)
	employees := []domain.Employee{
		emp(1, 1000, mgr(2)),
		emp(2, 1500, mgr(3)),
		emp(3, 1800, mgr(4)),
		emp(4, 5000, nil),
	}

	twoHop, err := ResolveIndirectManagers(employees, domain.ManagerRuleTwoHop)
	require.NoError(t, err)
	assert.Equal(t, []domain.IndirectManager{
		{EmployeeID: 1, ManagerID: mgr(3)},
		{EmployeeID: 2, ManagerID: mgr(4)},
		{EmployeeID: 3, ManagerID: nil},
		{EmployeeID: 4, ManagerID: nil},
	}, twoHop)

	chain, err := ResolveIndirectManagers(employees, domain.ManagerRuleSalaryChain)
	require.NoError(t, err)
	assert.Equal(t, []domain.IndirectManager{
		{EmployeeID: 1, ManagerID: mgr(4)},
		{EmployeeID: 2, ManagerID: mgr(4)},
		{EmployeeID: 3, ManagerID: nil},
		{EmployeeID: 4, ManagerID: nil},
	}, chain)
}

func TestResolveIndirectManagers_SalaryChainMayFindNobody(t *testing.T) {
	employees := []domain.Employee{
		emp(1, 3000, mgr(2)),
		emp(2, 2000, mgr(3)),
		emp(3, 5999, nil),
	}
	got, err := ResolveIndirectManagers(employees, domain.ManagerRuleSalaryChain)
	require.NoError(t, err)
	assert.Nil(t, got[0].ManagerID)
}

func TestResolveIndirectManagers_DirectManagerNeverCounts(t *testing.T) {
	employees := []domain.Employee{
		emp(1, 100, mgr(2)),
		emp(2, 100000, nil),
	}
	got, err := ResolveIndirectManagers(employees, domain.ManagerRuleSalaryChain)
	require.NoError(t, err)
	assert.Nil(t, got[0].ManagerID)
}

func TestResolveIndirectManagers_Forest(t *testing.T) {
	employees := []domain.Employee{
		emp(9, 100, mgr(8)), emp(8, 150, mgr(7)), emp(7, 400, nil),
		emp(3, 100, mgr(2)), emp(2, 100, mgr(1)), emp(1, 100, nil),
		emp(5, 100, nil),
	}
	got, err := ResolveIndirectManagers(employees, domain.ManagerRuleTwoHop)
	require.NoError(t, err)
	assert.Equal(t, []domain.IndirectManager{
		{EmployeeID: 1}, {EmployeeID: 2}, {EmployeeID: 3, ManagerID: mgr(1)},
		{EmployeeID: 5},
		{EmployeeID: 7}, {EmployeeID: 8}, {EmployeeID: 9, ManagerID: mgr(7)},
	}, got)
}

func TestResolveIndirectManagers_Idempotent(t *testing.T) {
	employees := dataset.SampleEmployees()
	before := dataset.SampleEmployees()

	first, err := ResolveIndirectManagers(employees, domain.ManagerRuleSalaryChain)
	require.NoError(t, err)
	second, err := ResolveIndirectManagers(employees, domain.ManagerRuleSalaryChain)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, employees)
}

func TestResolveIndirectManagers_Validation(t *testing.T) {
	testCases := map[string]struct {
		input   []domain.Employee
		wantErr error
	}{
		"duplicate id": {
			input:   []domain.Employee{emp(1, 1, nil), emp(1, 2, nil)},
			wantErr: domain.ErrDuplicateKey,
		},
		"dangling manager": {
			input:   []domain.Employee{emp(1, 1, mgr(42))},
			wantErr: domain.ErrUnknownReference,
		},
		"self managed": {
			input:   []domain.Employee{emp(1, 1, mgr(1))},
			wantErr: domain.ErrSelfReference,
		},
		"two cycle": {
			input:   []domain.Employee{emp(1, 1, mgr(2)), emp(2, 1, mgr(1))},
			wantErr: domain.ErrCycle,
		},
		"cycle above a valid branch": {
			input: []domain.Employee{
				emp(1, 1, nil), emp(2, 1, mgr(1)),
				emp(10, 1, mgr(11)), emp(11, 1, mgr(12)), emp(12, 1, mgr(13)), emp(13, 1, mgr(11)),
			},
			wantErr: domain.ErrCycle,
		},
		"negative salary": {
			input:   []domain.Employee{emp(1, -5, nil)},
			wantErr: domain.ErrNegativeValue,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := ResolveIndirectManagers(tc.input, domain.ManagerRuleTwoHop)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
