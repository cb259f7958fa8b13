package export

import (
	"bytes"
	"testing"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/dataset"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func managerID(n int) *int { return &n }

func sampleReport() *domain.Report {
	return &domain.Report{
		Standings: []domain.TeamStanding{
			{TeamID: 20, TeamName: "Marketing", Points: 4},
			{TeamID: 40, TeamName: "TI", Points: 0},
		},
		QualifyingSellers: []domain.QualifyingSeller{
			{Seller: "Lucas", Transfers: 3, Total: dataset.Amount("1112.00")},
			{Seller: "Matheus", Transfers: 1, Total: dataset.Amount("1024.50")},
		},
		IndirectManagers: []domain.IndirectManager{
			{EmployeeID: 10},
			{EmployeeID: 30, ManagerID: managerID(10)},
		},
	}
}

func TestWorkbook(t *testing.T) {
	data, err := Workbook(sampleReport())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetStandings, SheetSellers, SheetManagers}, f.GetSheetList())

	rows, err := f.GetRows(SheetStandings)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Team ID", "Team", "Points"},
		{"20", "Marketing", "4"},
		{"40", "TI", "0"},
	}, rows)

	rows, err = f.GetRows(SheetSellers)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Seller", "Transfers", "Total"},
		{"Lucas", "3", "1112"},
		{"Matheus", "1", "1024.5"},
	}, rows)

	rows, err = f.GetRows(SheetManagers)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Employee ID", "Indirect Manager ID"},
		{"10"},
		{"30", "10"},
	}, rows)
}

func TestWorkbookEmptyReport(t *testing.T) {
	data, err := Workbook(&domain.Report{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetManagers)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Employee ID", "Indirect Manager ID"}}, rows)
}

func TestWriteToHeaderStyle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellStyle(SheetSellers, "C1")
	require.NoError(t, err)
	body, err := f.GetCellStyle(SheetSellers, "C2")
	require.NoError(t, err)
	assert.NotZero(t, header)
	assert.NotEqual(t, header, body)
}
