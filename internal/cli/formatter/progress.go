package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for the share of life
// already lived. pct is a fraction in [0,1]; out-of-range values are clamped.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := StyleLived.Render(strings.Repeat(filledBlock, filled)) + StyleAhead.Render(strings.Repeat(emptyBlock, empty))
	return fmt.Sprintf("[%s] %3.0f%%", bar, pct*100)
}
