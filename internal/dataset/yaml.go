package dataset

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// File is the YAML layout of a dataset file.
type File struct {
	Teams       []domain.Team     `yaml:"teams"`
	Matches     []domain.Match    `yaml:"matches"`
	Commissions []commissionEntry `yaml:"commissions"`
	Employees   []employeeEntry   `yaml:"employees"`
}

type commissionEntry struct {
	Buyer       string `yaml:"buyer"`
	Seller      string `yaml:"seller"`
	PaymentDate string `yaml:"payment_date"`
	Amount      string `yaml:"amount"`
}

type employeeEntry struct {
	ID        int     `yaml:"id"`
	Name      string  `yaml:"name"`
	Salary    float64 `yaml:"salary"`
	ManagerID *int    `yaml:"manager_id"`
}

// LoadYAML reads a dataset file from disk.
func LoadYAML(path string) (*Memory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	return DecodeYAML(f)
}

// DecodeYAML decodes a dataset from r. Absent sections yield empty relations.
func DecodeYAML(r io.Reader) (*Memory, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	commissions := make([]domain.Commission, 0, len(file.Commissions))
	for i, c := range file.Commissions {
		paid, err := time.Parse(dateLayout, c.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("commission %d: payment_date: %w", i, err)
		}
		amount, _, err := apd.NewFromString(c.Amount)
		if err != nil {
			return nil, fmt.Errorf("commission %d: amount %q: %w", i, c.Amount, err)
		}
		commissions = append(commissions, domain.Commission{
			Buyer:       c.Buyer,
			Seller:      c.Seller,
			PaymentDate: paid,
			Amount:      *amount,
		})
	}

	employees := make([]domain.Employee, 0, len(file.Employees))
	for _, e := range file.Employees {
		employees = append(employees, domain.Employee{
			ID:        e.ID,
			Name:      e.Name,
			Salary:    e.Salary,
			ManagerID: e.ManagerID,
		})
	}

	return NewMemory(file.Teams, file.Matches, commissions, employees), nil
}
