package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramonerose/ezgangsheets/internal/importer"
	"github.com/ramonerose/ezgangsheets/internal/measure"
	"github.com/ramonerose/ezgangsheets/internal/model"
	"github.com/ramonerose/ezgangsheets/internal/project"
)

// settingsFlags carries the layout flags shared by pack, estimate, and
// compare. Zero values mean "use the saved application defaults".
type settingsFlags struct {
	sheetWidth  float64
	maxLength   float64
	margin      float64
	spacing     float64
	dpi         float64
	smartFit    bool
	rotate      bool
	consolidate bool
}

func addSettingsFlags(cmd *cobra.Command, f *settingsFlags) {
	defaults := model.DefaultSettings()
	cmd.Flags().Float64Var(&f.sheetWidth, "width", defaults.SheetWidth, "sheet width in inches")
	cmd.Flags().Float64Var(&f.maxLength, "max-length", defaults.MaxLength, "maximum sheet length in inches")
	cmd.Flags().Float64Var(&f.margin, "margin", defaults.Margin, "edge margin in inches")
	cmd.Flags().Float64Var(&f.spacing, "spacing", defaults.Spacing, "spacing between items in inches")
	cmd.Flags().Float64Var(&f.dpi, "dpi", defaults.DPI, "resolution used to convert pixel sizes to inches")
	cmd.Flags().BoolVar(&f.smartFit, "smart-fit", defaults.SmartFit, "pick the orientation that fits more copies per sheet")
	cmd.Flags().BoolVar(&f.rotate, "rotate", false, "rotate all items 90 degrees (ignored with --smart-fit)")
	cmd.Flags().BoolVar(&f.consolidate, "consolidate", false, "pack all designs onto shared sheets")
}

// settings merges the saved application config with any flags the user set
// explicitly on this invocation.
func (f *settingsFlags) settings(cmd *cobra.Command) model.GangSettings {
	s := model.DefaultSettings()
	if config, err := project.LoadAppConfig(project.DefaultConfigPath()); err == nil {
		config.ApplyToSettings(&s)
	}
	if cmd.Flags().Changed("width") {
		s.SheetWidth = f.sheetWidth
	}
	if cmd.Flags().Changed("max-length") {
		s.MaxLength = f.maxLength
	}
	if cmd.Flags().Changed("margin") {
		s.Margin = f.margin
	}
	if cmd.Flags().Changed("spacing") {
		s.Spacing = f.spacing
	}
	if cmd.Flags().Changed("dpi") {
		s.DPI = f.dpi
	}
	if cmd.Flags().Changed("smart-fit") {
		s.SmartFit = f.smartFit
	}
	s.Rotate = f.rotate
	s.Consolidate = f.consolidate
	return s
}

// loadItems turns command arguments and an optional order list into measured
// items. Positional arguments take the form "path" or "path=quantity".
func loadItems(args []string, orderPath string, defaultQty int, dpi float64) ([]model.Item, error) {
	var items []model.Item

	for _, arg := range args {
		path := arg
		qty := defaultQty
		if idx := strings.LastIndex(arg, "="); idx > 0 {
			n, err := strconv.Atoi(arg[idx+1:])
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("invalid quantity in %q", arg)
			}
			path = arg[:idx]
			qty = n
		}
		it, err := itemFromFile(path, qty, dpi)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	if orderPath != "" {
		ordered, err := itemsFromOrder(orderPath, dpi)
		if err != nil {
			return nil, err
		}
		items = append(items, ordered...)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("no design files given: pass file paths or --order")
	}
	return items, nil
}

func itemFromFile(path string, qty int, dpi float64) (model.Item, error) {
	data, w, h, ctype, err := measure.File(path, measure.Options{DPI: dpi})
	if err != nil {
		return model.Item{}, fmt.Errorf("measure %s: %w", path, err)
	}
	it := model.NewItem(filepath.Base(path), w, h, qty)
	it.Content = data
	it.ContentType = ctype
	log.Debug().Str("file", path).Float64("width", w).Float64("height", h).
		Str("type", ctype).Int("quantity", qty).Msg("measured design")
	return it, nil
}

// itemsFromOrder reads a CSV or XLSX order list. File paths inside the order
// resolve relative to the order file's own directory.
func itemsFromOrder(orderPath string, dpi float64) ([]model.Item, error) {
	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(orderPath)) {
	case ".xlsx", ".xls":
		result = importer.ImportExcel(orderPath)
	default:
		result = importer.ImportCSV(orderPath)
	}

	for _, warning := range result.Warnings {
		log.Warn().Str("order", orderPath).Msg(warning)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("order %s: %s", orderPath, strings.Join(result.Errors, "; "))
	}

	baseDir := filepath.Dir(orderPath)
	var items []model.Item
	for _, line := range result.Lines {
		path := line.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		var it model.Item
		if line.HasSize {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			it = model.NewItem(filepath.Base(path), line.Width, line.Height, line.Quantity)
			it.Content = data
			it.ContentType = measure.Sniff(data)
		} else {
			var err error
			it, err = itemFromFile(path, line.Quantity, dpi)
			if err != nil {
				return nil, err
			}
		}

		// A per-line rotate override is expressed by swapping the stored
		// dimensions, since orientation is otherwise chosen globally.
		if line.Rotate {
			it.Width, it.Height = it.Height, it.Width
		}
		items = append(items, it)
	}
	return items, nil
}
