package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/style"
	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
)

func TestRenderResults(t *testing.T) {
	r := style.NewPlainRenderer()

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "Nothing to organize", r.RenderResults(nil, false))
	})

	t.Run("moved", func(t *testing.T) {
		results := []types.TransferResult{{
			Plan: types.TransferPlan{
				Source:      "/src/photo.jpg",
				Destination: "/dst/images/photo.jpg",
				Action:      types.ActionMove,
			},
			Success: true,
		}}

		out := r.RenderResults(results, false)
		assert.Equal(t, "moved /src/photo.jpg -> /dst/images/photo.jpg", out)
	})

	t.Run("dry_run_uses_conditional_phrasing", func(t *testing.T) {
		results := []types.TransferResult{{
			Plan: types.TransferPlan{
				Source:      "/src/photo.jpg",
				Destination: "/dst/images/photo.jpg",
				Action:      types.ActionMove,
			},
			Success:   true,
			Simulated: true,
		}}

		out := r.RenderResults(results, true)
		assert.Equal(t, "would move /src/photo.jpg -> /dst/images/photo.jpg", out)
	})

	t.Run("skip_shows_reason", func(t *testing.T) {
		results := []types.TransferResult{{
			Plan: types.TransferPlan{
				Source:     "/src/photos",
				Action:     types.ActionSkip,
				SkipReason: types.SkipDirectory,
			},
			Success: true,
		}}

		out := r.RenderResults(results, false)
		assert.Equal(t, "skip /src/photos (directory)", out)
	})

	t.Run("failure_shows_error", func(t *testing.T) {
		results := []types.TransferResult{{
			Plan: types.TransferPlan{
				Source: "/src/locked.pdf",
				Action: types.ActionMove,
			},
			Error: assert.AnError,
		}}

		out := r.RenderResults(results, false)
		assert.Contains(t, out, "fail /src/locked.pdf")
		assert.Contains(t, out, assert.AnError.Error())
	})

	t.Run("one_line_per_result", func(t *testing.T) {
		results := []types.TransferResult{
			{Plan: types.TransferPlan{Source: "/src/a.jpg", Destination: "/dst/images/a.jpg", Action: types.ActionMove}, Success: true},
			{Plan: types.TransferPlan{Source: "/src/d", Action: types.ActionSkip, SkipReason: types.SkipDirectory}, Success: true},
		}

		out := r.RenderResults(results, false)
		assert.Equal(t,
			"moved /src/a.jpg -> /dst/images/a.jpg\nskip /src/d (directory)",
			out)
	})
}

func TestRenderError(t *testing.T) {
	r := style.NewPlainRenderer()
	assert.Equal(t, "Error: "+assert.AnError.Error(), r.RenderError(assert.AnError))
}

func TestRenderSummary(t *testing.T) {
	r := style.NewPlainRenderer()

	t.Run("live", func(t *testing.T) {
		out := r.RenderSummary(types.RunSummary{Moved: 3, Skipped: 1, Failed: 0}, false)
		assert.Equal(t, "Done: 3 moved, 1 skipped, 0 failed", out)
	})

	t.Run("dry_run", func(t *testing.T) {
		out := r.RenderSummary(types.RunSummary{Moved: 2}, true)
		assert.Equal(t, "Dry run: 2 moved, 0 skipped, 0 failed", out)
	})
}
