package engine

import "github.com/ramonerose/ezgangsheets/internal/model"

// ChooseOrientation resolves an item's rotation for the given settings.
//
// With SmartFit off, the fixed Rotate flag is applied as-is. With SmartFit
// on, both orientations are laid out and the one yielding strictly more
// items per sheet wins; ties keep the item upright so the decision is
// deterministic. Infeasible orientations (zero items per sheet in both
// directions) are still returned; the packer rejects them with full context.
func ChooseOrientation(it model.Item, s model.GangSettings) model.OrientedItem {
	if !s.SmartFit {
		return model.Orient(it, s.Rotate)
	}

	upright := ComputeLayout(it.Width, it.Height, s.SheetWidth, s.MaxLength, s.Margin, s.Spacing)
	rotated := ComputeLayout(it.Height, it.Width, s.SheetWidth, s.MaxLength, s.Margin, s.Spacing)

	if rotated.ItemsPerSheet > upright.ItemsPerSheet {
		return model.Orient(it, true)
	}
	return model.Orient(it, false)
}
