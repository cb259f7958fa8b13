package export

import (
	"bytes"
	"fmt"
	"io"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SheetStandings = "Standings"
	SheetSellers   = "Qualifying Sellers"
	SheetManagers  = "Indirect Managers"
)

// sheet is one worksheet: a header row followed by data rows. A nil cell is
// left empty.
type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]interface{}
}

// Workbook renders the report as an xlsx file, one sheet per computation.
func Workbook(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo renders the report as an xlsx file into w.
func WriteTo(w io.Writer, report *domain.Report) error {
	sheets, err := buildSheets(report)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := renderSheet(f, s, headerStyle); err != nil {
			return fmt.Errorf("render sheet %s: %w", s.name, err)
		}
	}

	return f.Write(w)
}

func renderSheet(f *excelize.File, s sheet, headerStyle int) error {
	for col, h := range s.headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(s.name, cell, h); err != nil {
			return err
		}
		colName, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(s.name, colName, colName, s.widths[col]); err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
		return err
	}

	for r, row := range s.rows {
		for col, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.name, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildSheets(report *domain.Report) ([]sheet, error) {
	standings := sheet{
		name:    SheetStandings,
		headers: []string{"Team ID", "Team", "Points"},
		widths:  []float64{10, 20, 10},
	}
	for _, s := range report.Standings {
		standings.rows = append(standings.rows, []interface{}{s.TeamID, s.TeamName, s.Points})
	}

	sellers := sheet{
		name:    SheetSellers,
		headers: []string{"Seller", "Transfers", "Total"},
		widths:  []float64{20, 12, 14},
	}
	for _, s := range report.QualifyingSellers {
		total, err := s.Total.Float64()
		if err != nil {
			return nil, fmt.Errorf("seller %s total %s: %w", s.Seller, s.Total.String(), err)
		}
		sellers.rows = append(sellers.rows, []interface{}{s.Seller, s.Transfers, total})
	}

	managers := sheet{
		name:    SheetManagers,
		headers: []string{"Employee ID", "Indirect Manager ID"},
		widths:  []float64{14, 22},
	}
	for _, m := range report.IndirectManagers {
		var manager interface{}
		if m.ManagerID != nil {
			manager = *m.ManagerID
		}
		managers.rows = append(managers.rows, []interface{}{m.EmployeeID, manager})
	}

	return []sheet{standings, sellers, managers}, nil
}
