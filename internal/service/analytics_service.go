package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/analytics"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/logger"
	"github.com/edvaldo-gutierres/prova-equipe-dados/pkg/dataflow"
)

// Report names, used for logging and for RunAll jobs.
const (
	ReportStandings = "standings"
	ReportSellers   = "qualifying_sellers"
	ReportManagers  = "indirect_managers"
)

// AnalyticsService loads relations from a source and runs the computations.
type AnalyticsService struct {
	source      domain.RelationSource
	criteria    analytics.SellerCriteria
	managerRule domain.ManagerRule
}

// NewAnalyticsService creates a service whose default rules are sellerRule
// and managerRule. Per-call rules override them.
func NewAnalyticsService(source domain.RelationSource, sellerRule domain.SellerRule, managerRule domain.ManagerRule) *AnalyticsService {
	criteria := analytics.DefaultSellerCriteria()
	if sellerRule != "" {
		criteria.Rule = sellerRule
	}
	if managerRule == "" {
		managerRule = domain.ManagerRuleSalaryChain
	}
	return &AnalyticsService{source: source, criteria: criteria, managerRule: managerRule}
}

// SellerRule returns the default seller rule.
func (s *AnalyticsService) SellerRule() domain.SellerRule {
	return s.criteria.Rule
}

// ManagerRule returns the default manager rule.
func (s *AnalyticsService) ManagerRule() domain.ManagerRule {
	return s.managerRule
}

// Standings computes the championship table.
func (s *AnalyticsService) Standings(ctx context.Context) ([]domain.TeamStanding, error) {
	ctx = logger.WithLogger(ctx, map[string]interface{}{"report": ReportStandings})
	start := time.Now()

	teams, err := s.source.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}
	matches, err := s.source.Matches(ctx)
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}

	standings, err := analytics.ComputeStandings(teams, matches)
	if err != nil {
		logger.ErrorErr(ctx, err, "standings rejected input")
		return nil, err
	}

	logger.InfoLog(ctx, "computed %d standings from %d matches in %v", len(standings), len(matches), time.Since(start))
	return standings, nil
}

// QualifyingSellers runs the seller filter. An empty rule uses the default.
func (s *AnalyticsService) QualifyingSellers(ctx context.Context, rule domain.SellerRule) ([]domain.QualifyingSeller, error) {
	criteria := s.criteria
	if rule != "" {
		criteria.Rule = rule
	}
	ctx = logger.WithLogger(ctx, map[string]interface{}{"report": ReportSellers, "rule": criteria.Rule})
	start := time.Now()

	commissions, err := s.source.Commissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load commissions: %w", err)
	}

	sellers, err := analytics.QualifyingSellers(commissions, criteria)
	if err != nil {
		logger.ErrorErr(ctx, err, "seller filter rejected input")
		return nil, err
	}

	logger.InfoLog(ctx, "%d sellers qualified from %d commissions in %v", len(sellers), len(commissions), time.Since(start))
	return sellers, nil
}

// IndirectManagers resolves indirect managers. An empty rule uses the default.
func (s *AnalyticsService) IndirectManagers(ctx context.Context, rule domain.ManagerRule) ([]domain.IndirectManager, error) {
	if rule == "" {
		rule = s.managerRule
	}
	ctx = logger.WithLogger(ctx, map[string]interface{}{"report": ReportManagers, "rule": rule})
	start := time.Now()

	employees, err := s.source.Employees(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}

	managers, err := analytics.ResolveIndirectManagers(employees, rule)
	if err != nil {
		logger.ErrorErr(ctx, err, "manager resolver rejected input")
		return nil, err
	}

	logger.InfoLog(ctx, "resolved %d employees in %v", len(managers), time.Since(start))
	return managers, nil
}

// RunAll computes the three reports concurrently with the default rules.
func (s *AnalyticsService) RunAll(ctx context.Context) (*domain.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	report := &domain.Report{SellerRule: s.criteria.Rule, ManagerRule: s.managerRule}

	var (
		errOnce  sync.Once
		firstErr error
	)
	jobs := dataflow.From(ctx, ReportStandings, ReportSellers, ReportManagers)
	done := dataflow.Map(ctx, jobs, func(name string) (func(*domain.Report), error) {
		return s.run(ctx, name)
	},
		dataflow.WithWorkers(3),
		dataflow.WithBufferSize(3),
		dataflow.WithErrorHandler(func(err error) bool {
			errOnce.Do(func() {
				firstErr = err
				cancel()
			})
			return true
		}))

	// single collector, so report is only written from here
	err := dataflow.ForEach(ctx, done, func(apply func(*domain.Report)) error {
		apply(report)
		return nil
	})
	if firstErr != nil {
		return nil, firstErr
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (s *AnalyticsService) run(ctx context.Context, name string) (func(*domain.Report), error) {
	switch name {
	case ReportStandings:
		rows, err := s.Standings(ctx)
		return func(r *domain.Report) { r.Standings = rows }, err
	case ReportSellers:
		rows, err := s.QualifyingSellers(ctx, "")
		return func(r *domain.Report) { r.QualifyingSellers = rows }, err
	case ReportManagers:
		rows, err := s.IndirectManagers(ctx, "")
		return func(r *domain.Report) { r.IndirectManagers = rows }, err
	}
	return nil, fmt.Errorf("unknown report %q", name)
}
