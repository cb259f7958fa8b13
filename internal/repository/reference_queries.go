package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
)

// The assessment's declarative answers, adapted to Postgres. %[1]s, %[2]s
// and so on are replaced with qualified table names.
const (
	standingsSQL = `
WITH resultados_mandante AS (
    SELECT mandante_time AS time_id,
           CASE WHEN mandante_gols > visitante_gols THEN 3
                WHEN mandante_gols = visitante_gols THEN 1
                ELSE 0 END AS pontos
    FROM %[2]s
),
resultados_visitante AS (
    SELECT visitante_time AS time_id,
           CASE WHEN visitante_gols > mandante_gols THEN 3
                WHEN visitante_gols = mandante_gols THEN 1
                ELSE 0 END AS pontos
    FROM %[2]s
),
todos_resultados AS (
    SELECT * FROM resultados_mandante
    UNION ALL
    SELECT * FROM resultados_visitante
),
pontuacao_por_time AS (
    SELECT time_id, SUM(pontos) AS num_pontos
    FROM todos_resultados
    GROUP BY time_id
)
SELECT t.time_id, t.time_nome, COALESCE(p.num_pontos, 0) AS num_pontos
FROM %[1]s t
LEFT JOIN pontuacao_por_time p ON t.time_id = p.time_id
ORDER BY num_pontos DESC, t.time_id ASC`

	sellersSQL = `
WITH ranked_comissoes AS (
    SELECT vendedor, valor,
           ROW_NUMBER() OVER (PARTITION BY vendedor ORDER BY valor DESC) AS rn
    FROM %[1]s
),
top3_comissoes AS (
    SELECT vendedor, valor FROM ranked_comissoes WHERE rn <= 3
)
SELECT vendedor
FROM top3_comissoes
GROUP BY vendedor
HAVING COUNT(*) <= 3 AND SUM(valor) >= 1024
ORDER BY vendedor ASC`

	indirectManagersSQL = `
SELECT c.id AS id_funcionario, chefe.lider_id AS id_chefe_indireto
FROM %[1]s c
LEFT JOIN %[1]s chefe ON chefe.id = c.lider_id
ORDER BY 1`
)

// ReferenceStandings runs the championship query on the database.
func (r *PostgresSource) ReferenceStandings(ctx context.Context) ([]domain.TeamStanding, error) {
	query := fmt.Sprintf(standingsSQL, r.table(TableTeams), r.table(TableMatches))
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to run reference standings: %w", err)
	}
	defer rows.Close()

	var out []domain.TeamStanding
	for rows.Next() {
		var s domain.TeamStanding
		if err := rows.Scan(&s.TeamID, &s.TeamName, &s.Points); err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ReferenceSellers runs the qualifying sellers query on the database. It
// follows the top-three reading of the filter.
func (r *PostgresSource) ReferenceSellers(ctx context.Context) ([]string, error) {
	query := fmt.Sprintf(sellersSQL, r.table(TableCommissions))
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to run reference sellers: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var seller string
		if err := rows.Scan(&seller); err != nil {
			return nil, fmt.Errorf("failed to scan seller: %w", err)
		}
		out = append(out, seller)
	}
	return out, rows.Err()
}

// ReferenceIndirectManagers runs the organisation query on the database. It
// follows the two-hop reading of the resolver.
func (r *PostgresSource) ReferenceIndirectManagers(ctx context.Context) ([]domain.IndirectManager, error) {
	query := fmt.Sprintf(indirectManagersSQL, r.table(TableEmployees))
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to run reference indirect managers: %w", err)
	}
	defer rows.Close()

	var out []domain.IndirectManager
	for rows.Next() {
		var (
			im      domain.IndirectManager
			manager sql.NullInt64
		)
		if err := rows.Scan(&im.EmployeeID, &manager); err != nil {
			return nil, fmt.Errorf("failed to scan indirect manager: %w", err)
		}
		im.ManagerID = nullableID(manager)
		out = append(out, im)
	}
	return out, rows.Err()
}
