package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/repository/builder"
)

// Table names as created by the assessment notebook.
const (
	TableTeams       = "times"
	TableMatches     = "jogos"
	TableCommissions = "comissoes"
	TableEmployees   = "colaboradores"
)

// PostgresSource reads the input relations from existing tables. It never writes.
type PostgresSource struct {
	db     *sql.DB
	schema string
}

// NewPostgresSource creates a source reading tables from schema (may be empty
// to rely on search_path).
func NewPostgresSource(db *sql.DB, schema string) *PostgresSource {
	return &PostgresSource{db: db, schema: schema}
}

var (
	_ domain.RelationSource   = (*PostgresSource)(nil)
	_ domain.ReferenceQuerier = (*PostgresSource)(nil)
)

func (r *PostgresSource) table(name string) string {
	return builder.QualifiedTable(r.schema, name)
}

// TeamsQuery returns the SELECT used by Teams.
func (r *PostgresSource) TeamsQuery() string {
	return builder.NewSQLBuilder().
		Select("time_id", "time_nome").
		From(r.table(TableTeams)).
		OrderBy("time_id ASC").
		Build()
}

// MatchesQuery returns the SELECT used by Matches.
func (r *PostgresSource) MatchesQuery() string {
	return builder.NewSQLBuilder().
		Select("jogo_id", "mandante_time", "visitante_time", "mandante_gols", "visitante_gols").
		From(r.table(TableMatches)).
		OrderBy("jogo_id ASC").
		Build()
}

// CommissionsQuery returns the SELECT used by Commissions. The amount is read
// as text so no precision is lost on the way to a decimal.
func (r *PostgresSource) CommissionsQuery() string {
	return builder.NewSQLBuilder().
		Select("comprador", "vendedor", "dataPgto", "CAST(valor AS TEXT)").
		From(r.table(TableCommissions)).
		Build()
}

// EmployeesQuery returns the SELECT used by Employees.
func (r *PostgresSource) EmployeesQuery() string {
	return builder.NewSQLBuilder().
		Select("id", "nome", "salario", "lider_id").
		From(r.table(TableEmployees)).
		OrderBy("id ASC").
		Build()
}

func (r *PostgresSource) Teams(ctx context.Context) ([]domain.Team, error) {
	query := r.TeamsQuery()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var t domain.Team
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return teams, nil
}

func (r *PostgresSource) Matches(ctx context.Context) ([]domain.Match, error) {
	query := r.MatchesQuery()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(&m.ID, &m.HomeTeamID, &m.AwayTeamID, &m.HomeGoals, &m.AwayGoals); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return matches, nil
}

func (r *PostgresSource) Commissions(ctx context.Context) ([]domain.Commission, error) {
	query := r.CommissionsQuery()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query commissions: %w", err)
	}
	defer rows.Close()

	var commissions []domain.Commission
	for rows.Next() {
		var (
			c      domain.Commission
			amount string
		)
		if err := rows.Scan(&c.Buyer, &c.Seller, &c.PaymentDate, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan commission: %w", err)
		}
		d, _, err := apd.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("commission amount %q: %w", amount, err)
		}
		c.Amount = *d
		commissions = append(commissions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return commissions, nil
}

func (r *PostgresSource) Employees(ctx context.Context) ([]domain.Employee, error) {
	query := r.EmployeesQuery()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var (
			e       domain.Employee
			manager sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Salary, &manager); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		e.ManagerID = nullableID(manager)
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return employees, nil
}

func nullableID(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	id := int(n.Int64)
	return &id
}
