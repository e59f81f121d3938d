package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramonerose/ezgangsheets/internal/engine"
	"github.com/ramonerose/ezgangsheets/internal/model"
)

func newCompareCmd() *cobra.Command {
	var (
		flags       settingsFlags
		orderPath   string
		pricingPath string
		profile     string
		defaultQty  int
	)

	cmd := &cobra.Command{
		Use:   "compare [file[=quantity]...]",
		Short: "Pack the same order against every roll width and compare cost",
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

			comparisons := engine.CompareWidths(settings, model.DefaultPresets(), items, tables.Cost)

			best := -1
			for i, c := range comparisons {
				if c.Err != nil {
					continue
				}
				if best < 0 || c.Cost < comparisons[best].Cost {
					best = i
				}
			}

			for i, c := range comparisons {
				if c.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%-12s does not fit: %v\n", c.Preset.Name, c.Err)
					continue
				}
				marker := " "
				if i == best {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-12s %d sheets, %.0f in, %.1f%% waste, $%.2f\n",
					marker, c.Preset.Name, c.SheetsUsed, c.TotalLength, c.WastePercent, c.Cost)
			}
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
