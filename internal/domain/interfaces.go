package domain

import "context"

// RelationSource provides the read-only input relations for the analytics
type RelationSource interface {
	Teams(ctx context.Context) ([]Team, error)
	Matches(ctx context.Context) ([]Match, error)
	Commissions(ctx context.Context) ([]Commission, error)
	Employees(ctx context.Context) ([]Employee, error)
}

// ReferenceQuerier runs the original declarative queries on the database side
type ReferenceQuerier interface {
	ReferenceStandings(ctx context.Context) ([]TeamStanding, error)
	ReferenceSellers(ctx context.Context) ([]string, error)
	ReferenceIndirectManagers(ctx context.Context) ([]IndirectManager, error)
}
