package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout_UprightCapacity(t *testing.T) {
	// 4x2 item on a 22in sheet, 200in max length, 0.125 margin, 0.5 spacing.
	layout := ComputeLayout(4, 2, 22, 200, 0.125, 0.5)

	assert.Equal(t, 4, layout.ItemsPerRow)
	assert.Equal(t, 80, layout.RowsPerSheet)
	assert.Equal(t, 320, layout.ItemsPerSheet)
	assert.True(t, layout.Feasible())
}

func TestComputeLayout_RotatedCapacity(t *testing.T) {
	// The same item turned on its side packs tighter across the width.
	layout := ComputeLayout(2, 4, 22, 200, 0.125, 0.5)

	assert.Equal(t, 8, layout.ItemsPerRow)
	assert.Equal(t, 44, layout.RowsPerSheet)
	assert.Equal(t, 352, layout.ItemsPerSheet)
}

func TestComputeLayout_ItemWiderThanSheet(t *testing.T) {
	layout := ComputeLayout(25, 2, 22, 200, 0.125, 0.5)

	assert.Equal(t, 0, layout.ItemsPerRow)
	assert.Equal(t, 0, layout.ItemsPerSheet)
	assert.False(t, layout.Feasible())
}

func TestComputeLayout_ItemTallerThanSheet(t *testing.T) {
	layout := ComputeLayout(4, 250, 22, 200, 0.125, 0.5)

	assert.Equal(t, 4, layout.ItemsPerRow)
	assert.Equal(t, 0, layout.RowsPerSheet)
	assert.Equal(t, 0, layout.ItemsPerSheet)
}

func TestComputeLayout_ExactWidthFit(t *testing.T) {
	// An item exactly as wide as the printable area fits once per row: the
	// trailing spacing term cancels against the spacing added to the item.
	layout := ComputeLayout(21.75, 2, 22, 200, 0.125, 0.5)

	assert.Equal(t, 1, layout.ItemsPerRow)
}

func TestComputeLayout_CapacityIsProduct(t *testing.T) {
	for _, dims := range [][2]float64{{4, 2}, {2, 4}, {3.5, 7.25}, {11, 11}} {
		layout := ComputeLayout(dims[0], dims[1], 22, 200, 0.125, 0.5)
		assert.Equal(t, layout.ItemsPerRow*layout.RowsPerSheet, layout.ItemsPerSheet)
	}
}
