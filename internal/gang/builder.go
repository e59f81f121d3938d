// Package gang orchestrates the full job pipeline: pack items onto sheets,
// price each sheet through the tier tables, and render the print artifacts.
package gang

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ramonerose/ezgangsheets/internal/engine"
	"github.com/ramonerose/ezgangsheets/internal/model"
	"github.com/ramonerose/ezgangsheets/internal/pricing"
	"github.com/ramonerose/ezgangsheets/internal/render"
)

// Renderer produces a finished page artifact for one packed sheet. The PDF
// backend lives in internal/render; anything honoring the placement
// coordinate convention can stand in.
type Renderer interface {
	RenderSheet(sheet model.SheetResult, contents render.ContentFunc) ([]byte, error)
}

// SheetArtifact is one finished output sheet with its rendered bytes.
type SheetArtifact struct {
	Index  int     `json:"index"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Cost   float64 `json:"cost"`
	PDF    []byte  `json:"-"`
}

// JobResult is the complete output of one gang sheet job.
type JobResult struct {
	Pack      model.PackResult `json:"pack"`
	Sheets    []SheetArtifact  `json:"sheets"`
	TotalCost float64          `json:"total_cost"`
}

// Builder runs gang sheet jobs. All state is per-invocation; a Builder is
// safe to reuse across independent jobs.
type Builder struct {
	engine   *engine.Engine
	tables   pricing.Tables
	renderer Renderer
	log      zerolog.Logger
}

func NewBuilder(settings model.GangSettings, tables pricing.Tables, renderer Renderer, log zerolog.Logger) *Builder {
	return &Builder{
		engine:   engine.New(settings),
		tables:   tables,
		renderer: renderer,
		log:      log,
	}
}

// Build packs, prices, and renders the given items. Validation and layout
// infeasibility abort the whole job with no partial output.
func (b *Builder) Build(items []model.Item) (JobResult, error) {
	result, err := b.engine.Pack(items)
	if err != nil {
		return JobResult{}, err
	}

	result.TotalCost = b.tables.Total(result.Sheets)

	contents := contentLookup(items)
	job := JobResult{Pack: result, TotalCost: result.TotalCost}

	for _, sheet := range result.Sheets {
		artifact := SheetArtifact{
			Index:  sheet.Index,
			Width:  sheet.Width,
			Height: sheet.Height,
			Cost:   sheet.Cost,
		}

		if b.renderer != nil {
			pdf, err := b.renderer.RenderSheet(sheet, contents)
			if err != nil {
				return JobResult{}, fmt.Errorf("render sheet %d: %w", sheet.Index, err)
			}
			artifact.PDF = pdf
		}

		b.log.Info().
			Int("sheet", sheet.Index).
			Float64("width", sheet.Width).
			Float64("height", sheet.Height).
			Int("items", len(sheet.Placements)).
			Float64("cost", sheet.Cost).
			Int("bytes", len(artifact.PDF)).
			Msg("sheet finished")

		job.Sheets = append(job.Sheets, artifact)
	}

	b.log.Info().
		Int("sheets", len(job.Sheets)).
		Int("items", result.TotalItems()).
		Float64("total_cost", job.TotalCost).
		Msg("job complete")

	return job, nil
}

// contentLookup builds the item-ID to payload resolver handed to renderers.
func contentLookup(items []model.Item) render.ContentFunc {
	byID := make(map[string]model.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return func(id string) ([]byte, string, error) {
		it, ok := byID[id]
		if !ok {
			return nil, "", fmt.Errorf("unknown item id %q", id)
		}
		return it.Content, it.ContentType, nil
	}
}
