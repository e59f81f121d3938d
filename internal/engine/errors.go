package engine

import "fmt"

// InvalidInputError reports a job that was rejected before any layout
// computation: missing files, non-positive quantities or dimensions, or a
// file/quantity count mismatch.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// ItemTooLargeError reports an item whose footprint cannot fit on the sheet
// in any accepted orientation. No sheets are produced for the job.
type ItemTooLargeError struct {
	Label      string
	Width      float64
	Height     float64
	SheetWidth float64
	MaxLength  float64
}

func (e *ItemTooLargeError) Error() string {
	return fmt.Sprintf("item %q (%.2f x %.2f in) does not fit on a %.0f in wide sheet with max length %.0f in",
		e.Label, e.Width, e.Height, e.SheetWidth, e.MaxLength)
}
