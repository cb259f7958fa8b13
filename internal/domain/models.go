package domain

import (
	"time"

	"github.com/cockroachdb/apd/v3"
)

// ==================== CHAMPIONSHIP ====================

// Team represents the times table
type Team struct {
	ID   int    `json:"team_id" yaml:"team_id" db:"time_id"`
	Name string `json:"team_name" yaml:"team_name" db:"time_nome"`
}

// Match represents the jogos table
type Match struct {
	ID         int `json:"match_id" yaml:"match_id" db:"jogo_id"`
	HomeTeamID int `json:"home_team_id" yaml:"home_team_id" db:"mandante_time"`
	AwayTeamID int `json:"away_team_id" yaml:"away_team_id" db:"visitante_time"`
	HomeGoals  int `json:"home_goals" yaml:"home_goals" db:"mandante_gols"`
	AwayGoals  int `json:"away_goals" yaml:"away_goals" db:"visitante_gols"`
}

// TeamStanding is one row of the championship table
type TeamStanding struct {
	TeamID   int    `json:"team_id"`
	TeamName string `json:"team_name"`
	Points   int    `json:"num_pontos"`
}

// ==================== COMMISSIONS ====================

// Commission represents the comissoes table. Amount is an exact decimal so
// threshold comparisons never suffer float rounding.
type Commission struct {
	Buyer       string      `json:"buyer" db:"comprador"`
	Seller      string      `json:"seller" db:"vendedor"`
	PaymentDate time.Time   `json:"payment_date" db:"dataPgto"`
	Amount      apd.Decimal `json:"amount" db:"valor"`
}

// QualifyingSeller is a seller that passed the commission filter
type QualifyingSeller struct {
	Seller    string      `json:"seller"`
	Transfers int         `json:"transfers"`
	Total     apd.Decimal `json:"total"`
}

// ==================== ORGANIZATION ====================

// Employee represents the colaboradores table. ManagerID is nil for the root.
type Employee struct {
	ID        int     `json:"id" db:"id"`
	Name      string  `json:"name" db:"nome"`
	Salary    float64 `json:"salary" db:"salario"`
	ManagerID *int    `json:"manager_id" db:"lider_id"`
}

// IndirectManager pairs an employee with its indirect manager, nil meaning NULL
type IndirectManager struct {
	EmployeeID int  `json:"funcionario_id"`
	ManagerID  *int `json:"chefe_indireto_id"`
}

// ==================== REPORTS ====================

// Report aggregates the three analytics outputs for export
type Report struct {
	Standings         []TeamStanding     `json:"standings"`
	QualifyingSellers []QualifyingSeller `json:"qualifying_sellers"`
	IndirectManagers  []IndirectManager  `json:"indirect_managers"`
	SellerRule        SellerRule         `json:"seller_rule"`
	ManagerRule       ManagerRule        `json:"manager_rule"`
}
