package style

import (
	"fmt"
	"strings"

	"github.com/RYZHAIEV-SERHII/TidyFiles/pkg/types"
)

// Renderer formats transfer results for terminal output
type Renderer struct {
	color bool
}

// NewRenderer creates a renderer, detecting terminal capabilities
func NewRenderer() *Renderer {
	return &Renderer{color: colorEnabled()}
}

// NewPlainRenderer creates a renderer with styling disabled
func NewPlainRenderer() *Renderer {
	return &Renderer{}
}

// RenderResults renders one line per transfer result
func (r *Renderer) RenderResults(results []types.TransferResult, dryRun bool) string {
	if len(results) == 0 {
		return r.muted("Nothing to organize")
	}

	var b strings.Builder
	for _, res := range results {
		b.WriteString(r.renderResult(res, dryRun))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderResult(res types.TransferResult, dryRun bool) string {
	switch {
	case res.Plan.Action == types.ActionSkip:
		return fmt.Sprintf("%s %s (%s)",
			r.warn("skip"), res.Plan.Source, res.Plan.SkipReason)
	case res.Error != nil:
		return fmt.Sprintf("%s %s: %v",
			r.err("fail"), res.Plan.Source, res.Error)
	case dryRun:
		return fmt.Sprintf("%s %s %s %s",
			r.muted("would move"), res.Plan.Source, r.arrow(), res.Plan.Destination)
	default:
		return fmt.Sprintf("%s %s %s %s",
			r.ok("moved"), res.Plan.Source, r.arrow(), res.Plan.Destination)
	}
}

// RenderError renders a fatal error line
func (r *Renderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.err("Error:"), err)
}

// RenderSummary renders the run totals
func (r *Renderer) RenderSummary(s types.RunSummary, dryRun bool) string {
	title := "Done"
	if dryRun {
		title = "Dry run"
	}
	return fmt.Sprintf("%s: %s moved, %s skipped, %s failed",
		r.title(title),
		r.ok(fmt.Sprintf("%d", s.Moved)),
		r.warn(fmt.Sprintf("%d", s.Skipped)),
		r.err(fmt.Sprintf("%d", s.Failed)))
}

func (r *Renderer) title(s string) string {
	if !r.color {
		return s
	}
	return TitleStyle.Render(s)
}

func (r *Renderer) ok(s string) string {
	if !r.color {
		return s
	}
	return SuccessStyle.Render(s)
}

func (r *Renderer) err(s string) string {
	if !r.color {
		return s
	}
	return ErrorStyle.Render(s)
}

func (r *Renderer) warn(s string) string {
	if !r.color {
		return s
	}
	return WarnStyle.Render(s)
}

func (r *Renderer) muted(s string) string {
	if !r.color {
		return s
	}
	return MutedStyle.Render(s)
}

func (r *Renderer) arrow() string {
	if !r.color {
		return "->"
	}
	return ArrowStyle.Render("->")
}
