package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramonerose/ezgangsheets/internal/measure"
	"github.com/ramonerose/ezgangsheets/internal/model"
)

func newMeasureCmd() *cobra.Command {
	var dpi float64

	cmd := &cobra.Command{
		Use:   "measure <file>...",
		Short: "Report the physical size of design files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				_, w, h, ctype, err := measure.File(path, measure.Options{DPI: dpi})
				if err != nil {
					return fmt.Errorf("measure %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %.3f x %.3f in (%s)\n", path, w, h, ctype)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&dpi, "dpi", model.DefaultSettings().DPI, "resolution used to convert pixel sizes to inches")
	return cmd
}
