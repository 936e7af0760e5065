// Command duitku is a small CLI over the persisted transaction store: it
// prints the overall summary and writes the report/CSV exports without
// running the API server.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"duitku/internal/config"
	"duitku/internal/kv"
	"duitku/internal/models"
	"duitku/internal/query"
	"duitku/internal/report"
	"duitku/internal/store"
)

var reportPeriod string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duitku",
	Short: "Inspect and export the Duitku transaction store",
	Long: `Duitku is a personal finance tracker. This CLI reads the same
persisted store as the API server and prints summaries or export payloads.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&reportPeriod, "period", string(query.PeriodAllTime),
		"report period (current-month, last-month, current-quarter, current-year, last-year, all-time)")
	rootCmd.AddCommand(summaryCmd, exportReportCmd, exportCSVCmd)
}

// openStore opens the record store on the configured backend.
func openStore() (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var binding kv.Binding
	switch cfg.StoreBackend {
	case config.StoreBackendFile:
		binding = kv.NewFile(cfg.StorePath)
	case config.StoreBackendSQLite:
		binding, err = kv.OpenSQLite(cfg.StorePath)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	return store.Open(binding, cfg.StoreNamespace)
}

// loadPeriod opens the store and returns its records restricted to the
// period selected with --period.
func loadPeriod() ([]models.Transaction, query.Period, error) {
	p := query.Period(reportPeriod)
	if !p.Valid() {
		return nil, "", fmt.Errorf("invalid period %q", reportPeriod)
	}
	s, err := openStore()
	if err != nil {
		return nil, "", err
	}
	return query.ByPeriod(s.List(), p, time.Now()), p, nil
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the report summary for the selected period",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, p, err := loadPeriod()
		if err != nil {
			return err
		}
		summary := report.Summarize(records, p, time.Now())

		fmt.Printf("Periode:           %s\n", summary.Period)
		fmt.Printf("Total Pemasukan:   %d\n", summary.Overview.TotalIncome)
		fmt.Printf("Total Pengeluaran: %d\n", summary.Overview.TotalExpense)
		fmt.Printf("Saldo:             %d\n", summary.Overview.Balance)
		fmt.Printf("Tingkat Menabung:  %.1f%%\n", summary.SavingRate)
		fmt.Printf("Skor Kesehatan:    %.0f\n", summary.HealthScore)
		fmt.Printf("Transaksi:         %d (%d pemasukan, %d pengeluaran)\n",
			summary.Overview.Count, summary.IncomeCount, summary.ExpenseCount)
		return nil
	},
}

var exportReportCmd = &cobra.Command{
	Use:   "export-report",
	Short: "Write the full-report JSON document to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, p, err := loadPeriod()
		if err != nil {
			return err
		}
		doc := report.BuildDocument(records, p, time.Now())
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	},
}

var exportCSVCmd = &cobra.Command{
	Use:   "export-csv",
	Short: "Write the tabular CSV export to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		records, _, err := loadPeriod()
		if err != nil {
			return err
		}
		data, err := report.CSV(records)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}
