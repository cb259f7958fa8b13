package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/bootstrap"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/config"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/export"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/logger"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/service"
)

// Report names accepted by -report.
const (
	reportAll       = "all"
	reportStandings = "standings"
	reportSellers   = "sellers"
	reportManagers  = "managers"
)

type options struct {
	report      string
	source      string
	file        string
	sellerRule  string
	managerRule string
	xlsx        string
	compare     bool
}

func main() {
	if err := config.LoadEnvConfig(); err != nil {
		log.Fatal(err)
	}
	env := config.DefaultEnvConfig

	// Define flags
	var opts options
	flag.StringVar(&opts.report, "report", reportAll, "Report to print: standings, sellers, managers, all")
	flag.StringVar(&opts.source, "source", env.DATA_SOURCE, "Relation source: sample, yaml, postgres")
	flag.StringVar(&opts.file, "file", env.DATASET_FILE, "Dataset file for the yaml source")
	flag.StringVar(&opts.sellerRule, "seller-rule", env.SELLER_RULE, "Seller rule: top3, total")
	flag.StringVar(&opts.managerRule, "manager-rule", env.MANAGER_RULE, "Manager rule: two-hop, salary-chain")
	flag.StringVar(&opts.xlsx, "xlsx", "", "Also write every report to this xlsx file")
	flag.BoolVar(&opts.compare, "compare", false, "Compare with the SQL reference queries (postgres source only)")

	flag.Parse()

	logger.InitLogging(logger.Config{FilePath: env.LOG_FILE_PATH, Level: env.LOG_LEVEL, Pretty: env.LOG_PRETTY})

	err := run(context.Background(), os.Stdout, opts)
	logger.Close()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func run(ctx context.Context, out io.Writer, opts options) error {
	sRule, err := domain.ParseSellerRule(opts.sellerRule)
	if err != nil {
		return err
	}
	mRule, err := domain.ParseManagerRule(opts.managerRule)
	if err != nil {
		return err
	}

	src, err := bootstrap.OpenSource(ctx, opts.source, opts.file, bootstrap.DatabaseConfig(), config.DefaultEnvConfig.DB_SCHEMA)
	if err != nil {
		return fmt.Errorf("failed to open %s source: %w", opts.source, err)
	}
	defer src.Close()

	svc := service.NewAnalyticsService(src.Relations, sRule, mRule)

	if err := printReports(ctx, out, svc, opts.report); err != nil {
		return err
	}

	if opts.xlsx != "" {
		if err := writeWorkbook(ctx, svc, opts.xlsx); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		fmt.Fprintf(out, "\n✅ Reports written to %s\n", opts.xlsx)
	}

	if opts.compare {
		if src.Ref == nil {
			return fmt.Errorf("-compare needs the postgres source")
		}
		cmp, err := svc.Compare(ctx, src.Ref)
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
		printComparison(out, cmp)
	}
	return nil
}

func printReports(ctx context.Context, out io.Writer, svc *service.AnalyticsService, report string) error {
	switch report {
	case reportAll:
		for _, name := range []string{reportStandings, reportSellers, reportManagers} {
			if err := printReports(ctx, out, svc, name); err != nil {
				return err
			}
		}
		return nil
	case reportStandings:
		rows, err := svc.Standings(ctx)
		if err != nil {
			return err
		}
		printStandings(out, rows)
	case reportSellers:
		rows, err := svc.QualifyingSellers(ctx, svc.SellerRule())
		if err != nil {
			return err
		}
		printSellers(out, svc.SellerRule(), rows)
	case reportManagers:
		rows, err := svc.IndirectManagers(ctx, svc.ManagerRule())
		if err != nil {
			return err
		}
		printManagers(out, svc.ManagerRule(), rows)
	default:
		return fmt.Errorf("unknown report %q", report)
	}
	return nil
}

func section(out io.Writer, title string) {
	fmt.Fprintf(out, "\n📊 %s\n%s\n", title, strings.Repeat("=", 50))
}

func printStandings(out io.Writer, rows []domain.TeamStanding) {
	section(out, "Standings")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "time_id\ttime_nome\tnum_pontos")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%s\t%d\n", r.TeamID, r.TeamName, r.Points)
	}
	w.Flush()
}

func printSellers(out io.Writer, rule domain.SellerRule, rows []domain.QualifyingSeller) {
	section(out, fmt.Sprintf("Qualifying sellers (%s)", rule))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "vendedor\ttransferencias\ttotal")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d\t%s\n", r.Seller, r.Transfers, r.Total.String())
	}
	w.Flush()
}

func printManagers(out io.Writer, rule domain.ManagerRule, rows []domain.IndirectManager) {
	section(out, fmt.Sprintf("Indirect managers (%s)", rule))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "id\tchefe_indireto_id")
	for _, r := range rows {
		manager := "NULL"
		if r.ManagerID != nil {
			manager = fmt.Sprint(*r.ManagerID)
		}
		fmt.Fprintf(w, "%d\t%s\n", r.EmployeeID, manager)
	}
	w.Flush()
}

func printComparison(out io.Writer, cmp *service.Comparison) {
	section(out, "Reference comparison")
	if cmp.OK() {
		fmt.Fprintln(out, "✅ All reports match the reference queries")
		return
	}
	for _, m := range cmp.Mismatches {
		fmt.Fprintf(out, "⚠️  %s\n", m)
	}
}

func writeWorkbook(ctx context.Context, svc *service.AnalyticsService, path string) error {
	report, err := svc.RunAll(ctx)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteTo(f, report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
