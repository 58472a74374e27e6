package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

const sparkGap = ' '

// Sparkline draws values as a row of block characters scaled to max.
// A max of zero or less scales to the largest value. NaN values are gaps.
func Sparkline(values []float64, max float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	if max <= 0 {
		for _, v := range values {
			if v > max {
				max = v
			}
		}
	}

	var b strings.Builder
	for _, v := range values {
		b.WriteRune(sparkRune(v, max))
	}

	if color == "" {
		return b.String()
	}
	return lipgloss.NewStyle().Foreground(color).Render(b.String())
}

func sparkRune(v, max float64) rune {
	if math.IsNaN(v) {
		return sparkGap
	}
	if max <= 0 || v <= 0 {
		return sparkRunes[0]
	}
	if v >= max {
		return sparkRunes[len(sparkRunes)-1]
	}
	return sparkRunes[int(v/max*float64(len(sparkRunes)-1)+0.5)]
}
