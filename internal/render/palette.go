package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dbmrq/fightsongs/internal/dataset"
)

var (
	fieldGreen   = drawing.ColorFromHex("376f32")
	fallbackGray = drawing.ColorFromHex("444444")

	tropeColors = map[dataset.Trope]drawing.Color{
		dataset.Men:           drawing.ColorFromHex("f08080"),
		dataset.VictoryWinWon: drawing.ColorFromHex("ffa500"),
		dataset.Fight:         drawing.ColorFromHex("87cefa"),
		dataset.Rah:           drawing.ColorFromHex("ffd700"),
		dataset.Nonsense:      drawing.ColorFromHex("40e0d0"),
		dataset.Colors:        drawing.ColorFromHex("9370db"),
		dataset.Opponents:     drawing.ColorFromHex("da70d6"),
	}

	conferenceColors = map[string]drawing.Color{
		"ACC":     drawing.ColorFromHex("a5a9ab"),
		"Big Ten": drawing.ColorFromHex("0088ce"),
		"Big 12":  drawing.ColorFromHex("c8102e"),
		"Pac-12":  drawing.ColorFromHex("092346"),
		"SEC":     drawing.ColorFromHex("fbce28"),
	}

	// Dark and light shades for the yes and no sides of a comparison.
	studentColors = [2]drawing.Color{drawing.ColorFromHex("228b22"), drawing.ColorFromHex("8fbc8b")}
	contestColors = [2]drawing.Color{drawing.ColorFromHex("ef6351"), drawing.ColorFromHex("fbc3bc")}
)

// TropeColor returns the line color of a trope series.
func TropeColor(t dataset.Trope) drawing.Color {
	if c, ok := tropeColors[t]; ok {
		return c
	}
	return fallbackGray
}

// ConferenceColor returns the color of a conference.
func ConferenceColor(name string) drawing.Color {
	if c, ok := conferenceColors[name]; ok {
		return c
	}
	return fallbackGray
}
