package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramonerose/ezgangsheets/internal/model"
)

func defaultTestSettings() model.GangSettings {
	s := model.DefaultSettings()
	s.SmartFit = false
	s.Rotate = false
	s.Consolidate = false
	return s
}

func TestChooseOrientation_FixedUpright(t *testing.T) {
	s := defaultTestSettings()
	it := model.NewItem("logo", 4, 2, 10)

	oriented := ChooseOrientation(it, s)

	assert.False(t, oriented.Rotated)
	assert.Equal(t, 4.0, oriented.LayoutWidth)
	assert.Equal(t, 2.0, oriented.LayoutHeight)
}

func TestChooseOrientation_FixedRotated(t *testing.T) {
	s := defaultTestSettings()
	s.Rotate = true
	it := model.NewItem("logo", 4, 2, 10)

	oriented := ChooseOrientation(it, s)

	assert.True(t, oriented.Rotated)
	assert.Equal(t, 2.0, oriented.LayoutWidth)
	assert.Equal(t, 4.0, oriented.LayoutHeight)
}

func TestChooseOrientation_SmartFitPicksDenserOrientation(t *testing.T) {
	// 4x2 on a 22in sheet: 4x80=320 upright vs 8x44=352 rotated.
	s := defaultTestSettings()
	s.SmartFit = true
	it := model.NewItem("logo", 4, 2, 100)

	oriented := ChooseOrientation(it, s)

	assert.True(t, oriented.Rotated)
}

func TestChooseOrientation_SmartFitTiePrefersUpright(t *testing.T) {
	s := defaultTestSettings()
	s.SmartFit = true
	it := model.NewItem("square", 4, 4, 10)

	oriented := ChooseOrientation(it, s)

	assert.False(t, oriented.Rotated)
}

func TestChooseOrientation_SmartFitIgnoresFixedRotate(t *testing.T) {
	// When both flags are set, smart fit wins. A 2x4 item packs denser
	// upright, so the fixed rotate request is overridden.
	s := defaultTestSettings()
	s.SmartFit = true
	s.Rotate = true
	it := model.NewItem("logo", 2, 4, 10)

	oriented := ChooseOrientation(it, s)

	assert.False(t, oriented.Rotated)
}
