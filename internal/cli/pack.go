package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ramonerose/ezgangsheets/internal/gang"
	"github.com/ramonerose/ezgangsheets/internal/model"
	"github.com/ramonerose/ezgangsheets/internal/pricing"
	"github.com/ramonerose/ezgangsheets/internal/project"
	"github.com/ramonerose/ezgangsheets/internal/render"
)

func newPackCmd() *cobra.Command {
	var (
		flags       settingsFlags
		orderPath   string
		pricingPath string
		profile     string
		outDir      string
		defaultQty  int
		withSummary bool
		withLabels  bool
	)

	cmd := &cobra.Command{
		Use:   "pack [file[=quantity]...]",
		Short: "Pack designs onto sheets and write print-ready PDFs",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := flags.settings(cmd)

			items, err := loadItems(args, orderPath, defaultQty, settings.DPI)
			if err != nil {
				return err
			}

			tables, err := loadTables(pricingPath, profile)
			if err != nil {
				return err
			}

			builder := gang.NewBuilder(settings, tables, render.NewPDFRenderer(), log)
			job, err := builder.Build(items)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			for _, sheet := range job.Sheets {
				name := filepath.Join(outDir, fmt.Sprintf("sheet-%02d.pdf", sheet.Index+1))
				if err := os.WriteFile(name, sheet.PDF, 0644); err != nil {
					return fmt.Errorf("write %s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "sheet %d: %gx%g in, $%.2f -> %s\n",
					sheet.Index+1, sheet.Width, sheet.Height, sheet.Cost, name)
			}

			if withSummary {
				data, err := render.SummaryPDF(job.Pack, settings)
				if err != nil {
					return fmt.Errorf("render summary: %w", err)
				}
				name := filepath.Join(outDir, "summary.pdf")
				if err := os.WriteFile(name, data, 0644); err != nil {
					return fmt.Errorf("write %s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "summary -> %s\n", name)
			}

			if withLabels {
				data, err := render.LabelsPDF(job.Pack)
				if err != nil {
					return fmt.Errorf("render labels: %w", err)
				}
				name := filepath.Join(outDir, "labels.pdf")
				if err := os.WriteFile(name, data, 0644); err != nil {
					return fmt.Errorf("write %s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "labels -> %s\n", name)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "total: %d sheets, $%.2f\n", len(job.Sheets), job.TotalCost)

			if orderPath != "" {
				rememberOrder(orderPath)
			}
			return nil
		},
	}

	addSettingsFlags(cmd, &flags)
	cmd.Flags().StringVar(&orderPath, "order", "", "CSV or XLSX order list")
	cmd.Flags().StringVar(&pricingPath, "pricing", "", "JSON tier table file (default: built-in rates)")
	cmd.Flags().StringVar(&profile, "profile", "", "saved pricing profile name")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for PDFs")
	cmd.Flags().IntVarP(&defaultQty, "quantity", "n", 1, "copies per file when not given inline")
	cmd.Flags().BoolVar(&withSummary, "summary", false, "also write a job summary PDF")
	cmd.Flags().BoolVar(&withLabels, "labels", false, "also write a QR label sheet PDF")

	return cmd
}

// loadTables resolves the tier tables from a file path or a named profile.
// A malformed config degrades to the built-in tables with a warning.
func loadTables(path, profile string) (pricing.Tables, error) {
	var (
		tables pricing.Tables
		err    error
	)
	switch {
	case path != "" && profile != "":
		return nil, fmt.Errorf("--pricing and --profile are mutually exclusive")
	case profile != "":
		tables, err = project.LoadPricingProfile(profile)
	default:
		tables, err = pricing.Load(path)
	}

	var malformed *pricing.MalformedConfigError
	if errors.As(err, &malformed) {
		log.Warn().Err(malformed).Msg("using built-in pricing tables")
		return tables, nil
	}
	return tables, err
}

// rememberOrder records an order file in the recent list, best effort.
func rememberOrder(path string) {
	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	project.RememberOrder(&config, path)
	if err := project.SaveAppConfig(configPath, config); err != nil {
		log.Debug().Err(err).Msg("could not save app config")
	}
}

// describeResult prints a one-line-per-sheet report shared by estimate and
// compare output.
func describeResult(cmd *cobra.Command, result model.PackResult) {
	for _, sheet := range result.Sheets {
		fmt.Fprintf(cmd.OutOrStdout(), "sheet %d: %gx%g in, %d items, %.1f%% used, $%.2f\n",
			sheet.Index+1, sheet.Width, sheet.Height, len(sheet.Placements), sheet.Efficiency(), sheet.Cost)
	}
}
