package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramonerose/ezgangsheets/internal/engine"
)

func newEstimateCmd() *cobra.Command {
	var (
		flags       settingsFlags
		orderPath   string
		pricingPath string
		profile     string
		defaultQty  int
	)

	cmd := &cobra.Command{
		Use:   "estimate [file[=quantity]...]",
		Short: "Compute sheet count and cost without rendering PDFs",
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

			result, err := engine.New(settings).Pack(items)
			if err != nil {
				return err
			}
			result.TotalCost = tables.Total(result.Sheets)

			describeResult(cmd, result)
			fmt.Fprintf(cmd.OutOrStdout(), "total: %d sheets, %.0f in of media, %.1f%% used, $%.2f\n",
				len(result.Sheets), result.TotalLength(), result.TotalEfficiency(), result.TotalCost)
			return nil
		},
	}

	addSettingsFlags(cmd, &flags)
	cmd.Flags().StringVar(&orderPath, "order", "", "CSV or XLSX order list")
	cmd.Flags().StringVar(&pricingPath, "pricing", "", "JSON tier table file (default: built-in rates)")
	cmd.Flags().StringVar(&profile, "profile", "", "saved pricing profile name")
	cmd.Flags().IntVarP(&defaultQty, "quantity", "n", 1, "copies per file when not given inline")

	return cmd
}
