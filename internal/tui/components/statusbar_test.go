package components

import (
	"strings"
	"testing"
)

func TestNewStatusBar(t *testing.T) {
	sb := NewStatusBar()
	if sb == nil {
		t.Fatal("NewStatusBar returned nil")
	}
	if !sb.Data().ShowShortcuts {
		t.Error("shortcuts should be shown by default")
	}
}

func TestStatusBarView(t *testing.T) {
	tests := []struct {
		name     string
		data     StatusBarData
		contains []string
		absent   []string
	}{
		{
			name:     "unfiltered",
			data:     StatusBarData{Matched: 14, Total: 14},
			contains: []string{"14/14", "all songs"},
		},
		{
			name:     "filtered with message",
			data:     StatusBarData{Matched: 2, Total: 14, Filter: "school contains tech", Message: "2 schools"},
			contains: []string{"2/14", "school contains tech", "2 schools"},
			absent:   []string{"all songs"},
		},
		{
			name: "shortcuts",
			data: StatusBarData{
				Matched:       1,
				Total:         1,
				ShowShortcuts: true,
				Shortcuts:     []ShortcutDef{{"q", "quit"}},
			},
			contains: []string{"quit"},
		},
		{
			name: "shortcuts hidden",
			data: StatusBarData{
				ShowShortcuts: false,
				Shortcuts:     []ShortcutDef{{"q", "quit"}},
			},
			absent: []string{"quit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewStatusBar()
			sb.SetData(tt.data)
			view := sb.View()

			for _, want := range tt.contains {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q: %q", want, view)
				}
			}
			for _, unwanted := range tt.absent {
				if strings.Contains(view, unwanted) {
					t.Errorf("view should not contain %q: %q", unwanted, view)
				}
			}
		})
	}
}

func TestStatusBarSetters(t *testing.T) {
	sb := NewStatusBar()
	sb.SetCounts(3, 14)
	sb.SetFilter("conference is SEC")
	sb.SetError("no songs match")

	data := sb.Data()
	if data.Matched != 3 || data.Total != 14 {
		t.Errorf("counts = %d/%d, want 3/14", data.Matched, data.Total)
	}
	if data.Filter != "conference is SEC" {
		t.Errorf("Filter = %q", data.Filter)
	}
	if !data.Error || data.Message != "no songs match" {
		t.Errorf("SetError did not set an error message: %+v", data)
	}

	sb.SetMessage("ok")
	if sb.Data().Error {
		t.Error("SetMessage should clear the error flag")
	}
}

func TestStatusBarWidth(t *testing.T) {
	sb := NewStatusBar()
	sb.SetCounts(14, 14)
	sb.SetShortcuts(DecadeShortcuts)

	for _, width := range []int{0, 40, 160} {
		sb.SetWidth(width)
		if sb.View() == "" {
			t.Errorf("width %d: view should not be empty", width)
		}
	}
}

func TestShortcutBar(t *testing.T) {
	bar := NewShortcutBar()
	if bar.View() != "" {
		t.Error("empty shortcut bar should render nothing")
	}

	bar.SetShortcuts(ShortcutDef{"/", "search"}, ShortcutDef{"q", "quit"})
	view := bar.View()
	for _, want := range []string{"/", "search", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %q", want, view)
		}
	}

	bar.SetWidth(80)
	bar.SetCentered(true)
	if !strings.Contains(bar.View(), "search") {
		t.Error("centered view should still contain shortcuts")
	}
}
