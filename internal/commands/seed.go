package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/contalibre-dev/contalibre/internal/chart"
	"github.com/contalibre-dev/contalibre/internal/config"
	"github.com/contalibre-dev/contalibre/internal/journal"
	"github.com/contalibre-dev/contalibre/internal/model"
	"github.com/contalibre-dev/contalibre/internal/platform/database"
	"github.com/contalibre-dev/contalibre/internal/statement"
	"github.com/contalibre-dev/contalibre/internal/storage"
	"github.com/contalibre-dev/contalibre/internal/subscription"
	"github.com/contalibre-dev/contalibre/internal/tenant"
)

func newSeedCommand() *cobra.Command {
	var configPath string
	var companyName string
	var taxID string
	var demo bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Install plans and a company with the default chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), configPath, companyName, taxID, demo)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "path to config file")
	cmd.Flags().StringVar(&companyName, "company", "Empresa Demo S.A.", "company name")
	cmd.Flags().StringVar(&taxID, "tax-id", "123456789", "company tax id")
	cmd.Flags().BoolVar(&demo, "demo", false, "post demo journal entries")
	return cmd
}

func runSeed(ctx context.Context, configPath, companyName, taxID string, demo bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.NewPostgres(database.Options{
		DSN:          cfg.Database.DSN,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return err
	}

	if err := storage.Migrate(db); err != nil {
		return err
	}

	subRepo := storage.NewSubscriptionRepo(db)
	for _, plan := range defaultPlans() {
		p := plan
		if err := subRepo.EnsurePlan(ctx, &p); err != nil {
			return err
		}
	}

	tpl := chart.DefaultTemplate()
	if cfg.Chart.TemplatePath != "" {
		tpl, err = chart.LoadTemplateFile(cfg.Chart.TemplatePath)
		if err != nil {
			return err
		}
	}

	chartStore := storage.NewChartStore(db)
	companySvc := tenant.NewService(storage.NewCompanyRepo(db), chart.NewInstaller(tpl, chartStore))

	company, err := companySvc.Create(ctx, companyName, taxID)
	if err != nil {
		return err
	}
	tc := tenant.Context{CompanyID: company.ID}

	subSvc := subscription.NewService(subRepo)
	if _, err := subSvc.Subscribe(ctx, tc, "premium", 12); err != nil {
		return err
	}

	fmt.Printf("seeded company %d (%s)\n", company.ID, company.Name)

	if !demo {
		return nil
	}
	if err := seedDemoEntries(ctx, db, chartStore, tc); err != nil {
		return err
	}
	fmt.Println("posted demo journal entries")
	return nil
}

func defaultPlans() []model.Plan {
	basic := 5
	premium := 50
	return []model.Plan{
		{Code: "basic", Name: "Basico", AIQueries: &basic},
		{Code: "premium", Name: "Premium", AIQueries: &premium},
		{Code: "unlimited", Name: "Ilimitado", AIQueries: nil},
	}
}

// seedDemoEntries posts a small trading cycle: capital contribution, a
// credit purchase, a cash sale and salaries.
func seedDemoEntries(ctx context.Context, db *gorm.DB, chartStore *storage.ChartStore, tc tenant.Context) error {
	journalSvc := journal.NewService(storage.NewJournalRepo(db))

	account := func(code string) (uint, error) {
		a, err := chartStore.AccountByCode(ctx, tc.CompanyID, code)
		if err != nil {
			return 0, err
		}
		return a.ID, nil
	}

	banco, err := account("11103")
	if err != nil {
		return err
	}
	caja, err := account("11102")
	if err != nil {
		return err
	}
	capital, err := account("31101")
	if err != nil {
		return err
	}
	proveedores, err := account("21201")
	if err != nil {
		return err
	}
	costoVentas, err := account("51101")
	if err != nil {
		return err
	}
	ventas, err := account("41101")
	if err != nil {
		return err
	}
	sueldos, err := account("52101")
	if err != nil {
		return err
	}

	type entry struct {
		date        string
		description string
		lines       []journal.Line
	}
	amount := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	entries := []entry{
		{
			date:        "2024-01-05",
			description: "Aporte de capital inicial",
			lines: []journal.Line{
				{AccountID: banco, Debit: amount("50000")},
				{AccountID: capital, Credit: amount("50000")},
			},
		},
		{
			date:        "2024-01-10",
			description: "Compra de mercaderia al credito",
			lines: []journal.Line{
				{AccountID: costoVentas, Debit: amount("12000")},
				{AccountID: proveedores, Credit: amount("12000")},
			},
		},
		{
			date:        "2024-01-20",
			description: "Venta de mercaderia al contado",
			lines: []journal.Line{
				{AccountID: caja, Debit: amount("18000")},
				{AccountID: ventas, Credit: amount("18000")},
			},
		},
		{
			date:        "2024-01-31",
			description: "Pago de sueldos",
			lines: []journal.Line{
				{AccountID: sueldos, Debit: amount("4500")},
				{AccountID: banco, Credit: amount("4500")},
			},
		},
	}

	for _, e := range entries {
		date, err := statement.ParseDate(e.date)
		if err != nil {
			return err
		}
		_, err = journalSvc.Post(ctx, tc, journal.PostParams{
			Date:        date,
			Description: e.description,
			Lines:       e.lines,
		})
		if err != nil {
			return fmt.Errorf("posting %q: %w", e.description, err)
		}
	}
	return nil
}
