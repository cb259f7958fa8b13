package dataset

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
)

// SampleTeams is the times table of the championship exercise.
func SampleTeams() []domain.Team {
	return []domain.Team{
		{ID: 10, Name: "Financeiro"},
		{ID: 20, Name: "Marketing"},
		{ID: 30, Name: "Logística"},
		{ID: 40, Name: "TI"},
		{ID: 50, Name: "Dados"},
	}
}

// SampleMatches is the jogos table as it is loaded: match 4 ended 1x0.
func SampleMatches() []domain.Match {
	return []domain.Match{
		{ID: 1, HomeTeamID: 30, AwayTeamID: 20, HomeGoals: 1, AwayGoals: 0},
		{ID: 2, HomeTeamID: 10, AwayTeamID: 20, HomeGoals: 1, AwayGoals: 2},
		{ID: 3, HomeTeamID: 20, AwayTeamID: 50, HomeGoals: 2, AwayGoals: 2},
		{ID: 4, HomeTeamID: 10, AwayTeamID: 30, HomeGoals: 1, AwayGoals: 0},
		{ID: 5, HomeTeamID: 30, AwayTeamID: 50, HomeGoals: 0, AwayGoals: 1},
	}
}

// MarkdownMatches is the jogos table as printed in the exercise statement,
// where match 4 is a 1x1 draw.
func MarkdownMatches() []domain.Match {
	matches := SampleMatches()
	matches[3].AwayGoals = 1
	return matches
}

// SampleCommissions is the comissoes table.
func SampleCommissions() []domain.Commission {
	return []domain.Commission{
		commission("Leonardo", "Bruno", date(2000, 1, 1), "200.00"),
		commission("Leonardo", "Matheus", date(2003, 9, 27), "1024.00"),
		commission("Leonardo", "Lucas", date(2006, 6, 26), "512.00"),
		commission("Marcos", "Lucas", date(2020, 12, 17), "100.00"),
		commission("Marcos", "Lucas", date(2002, 3, 22), "10.00"),
		commission("Cinthia", "Lucas", date(2021, 3, 20), "500.00"),
		commission("Mateus", "Bruno", date(2007, 6, 2), "400.00"),
		commission("Mateus", "Bruno", date(2006, 6, 26), "400.00"),
		commission("Mateus", "Bruno", date(2015, 6, 26), "200.00"),
	}
}

// SampleEmployees is the colaboradores table, in the order it is loaded.
func SampleEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: 40, Name: "Helen", Salary: 1500, ManagerID: ref(50)},
		{ID: 50, Name: "Bruno", Salary: 3000, ManagerID: ref(10)},
		{ID: 10, Name: "Leonardo", Salary: 4500, ManagerID: ref(20)},
		{ID: 20, Name: "Marcos", Salary: 10000},
		{ID: 70, Name: "Mateus", Salary: 1500, ManagerID: ref(10)},
		{ID: 60, Name: "Cinthia", Salary: 2000, ManagerID: ref(70)},
		{ID: 30, Name: "Wilian", Salary: 1501, ManagerID: ref(50)},
	}
}

// Amount parses a decimal literal, panicking on malformed input. Intended for
// literal datasets and tests.
func Amount(s string) apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("dataset: bad amount %q: %v", s, err))
	}
	return *d
}

func commission(buyer, seller string, paid time.Time, amount string) domain.Commission {
	return domain.Commission{Buyer: buyer, Seller: seller, PaymentDate: paid, Amount: Amount(amount)}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ref(id int) *int {
	return &id
}
